package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout is the screen geometry shared by View and mouse handling.
type layout struct {
	contentWidth  int
	contentHeight int
	mapOriginX    int
	mapOriginY    int
	mapWidth      int
	mapHeight     int
}

func (m Model) layout() layout {
	var lo layout
	lo.contentHeight = max(4, m.height-headerHeight-footerHeight)
	lo.contentWidth = max(10, m.width)
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth + 1
	}
	lo.mapOriginX = sw
	lo.mapOriginY = headerHeight
	lo.mapWidth = max(10, lo.contentWidth-sw)
	lo.mapHeight = lo.contentHeight
	return lo
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentHeight-2)
	}

	header := titleStyle.Render(fmt.Sprintf(" bodymap ─ %s %s ", m.gender, m.side))
	header = lipgloss.NewStyle().Width(lo.contentWidth).Render(header)

	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showParts:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lo.mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lo.mapHeight-2, 20))
		partsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(lo.mapWidth, lo.mapHeight, lipgloss.Center, lipgloss.Center, partsBox)
	case m.pasteMode:
		m.ta.SetWidth(lo.mapWidth)
		m.ta.SetHeight(min(lo.mapHeight, 12))
		mapView = lipgloss.NewStyle().Width(lo.mapWidth).Height(lo.mapHeight).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(lo.mapWidth).Height(lo.mapHeight).Render(m.renderDiagram(lo.mapWidth, lo.mapHeight))
	}

	popup := ""
	if m.inspectPopup != "" && !m.showParts && !m.pasteMode {
		maxPopupW := max(20, min(56, lo.contentWidth/2))
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1).MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(lo.contentWidth, lipgloss.Height(box), lipgloss.Left, lipgloss.Top, box)
	}

	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hovering {
		label := ""
		if m.hoverSlug != "" {
			label = " " + string(m.hoverSlug)
		}
		coords = dimStyle.Render(fmt.Sprintf("  x=%.1f y=%.1f%s  ", m.hoverX, m.hoverY, label))
	}
	left := lipgloss.JoinVertical(lipgloss.Left, status, help)
	spacerW := max(0, lo.contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Top, coords)
	footer := lipgloss.NewStyle().Width(lo.contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Top, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(lo.contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"click press",
		"↑↓←→ pan",
		"+/- zoom",
		"s side",
		"g gender",
		"Tab files",
		"Enter load",
		"p path",
		"a parts",
		"c clear",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
