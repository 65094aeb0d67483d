package tui

import (
	"fmt"
	"strings"

	table "github.com/charmbracelet/bubbles/table"

	"bodymap/internal/body"
	"bodymap/internal/svgpath"
)

// refreshPartsTable lists every pressable shape of the scene.
func (m *Model) refreshPartsTable() {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "slug", Width: 12},
		{Title: "shape", Width: 7},
		{Title: "fill", Width: 9},
		{Title: "level", Width: 5},
		{Title: "center", Width: 16},
	}
	intensity := map[body.Slug]int{}
	for _, d := range m.data {
		if _, ok := intensity[d.Slug]; !ok {
			intensity[d.Slug] = d.Intensity
		}
	}
	var rows []table.Row
	for _, s := range m.scene.Shapes {
		if !s.Pressable {
			continue
		}
		level := ""
		if v, ok := intensity[s.Part.Slug]; ok {
			level = fmt.Sprintf("%d", max(v, 1))
		}
		center := "-"
		if b := s.Bounds(); b.Valid() {
			c := b.Center()
			center = fmt.Sprintf("%.1f, %.1f", c.X, c.Y)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", len(rows)+1),
			string(s.Part.Slug),
			s.Kind.String(),
			s.Fill,
			level,
			center,
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

// inspectPath summarizes parsed path data for the popup.
func inspectPath(d string) string {
	cmds := svgpath.Parse(d)
	values := 0
	for _, c := range cmds {
		values += len(c.Values)
	}
	lines := []string{fmt.Sprintf("commands: %d  values: %d", len(cmds), values)}
	const maxShown = 8
	for i, c := range cmds {
		if i == maxShown {
			lines = append(lines, fmt.Sprintf("… %d more", len(cmds)-maxShown))
			break
		}
		nums := make([]string, len(c.Values))
		for j, v := range c.Values {
			nums[j] = fmt.Sprintf("%g", v)
		}
		lines = append(lines, fmt.Sprintf("%c %s", c.Code, strings.Join(nums, " ")))
	}
	b := svgpath.Bounds(cmds)
	if !b.Valid() {
		lines = append(lines, "bbox: none", "center: none")
		return strings.Join(lines, "\n")
	}
	c := b.Center()
	lines = append(lines,
		fmt.Sprintf("bbox: [%g, %g, %g, %g]", b.MinX, b.MinY, b.MaxX, b.MaxY),
		fmt.Sprintf("center: %g, %g", c.X, c.Y),
	)
	return strings.Join(lines, "\n")
}
