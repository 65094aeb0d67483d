package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"bodymap/internal/body"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentHeight-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				d := strings.TrimSpace(m.ta.Value())
				if d == "" {
					m.status = "paste: empty"
					return m, nil
				}
				m.inspectPopup = inspectPath(d)
				m.status = "path inspected"
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showParts {
			switch msg.String() {
			case "ctrl+c", "q", "esc", "a":
			default:
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			}
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			m.inspectPopup = ""
			m.showParts = false
		case "+", "=":
			if m.zoom < 16 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.2 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "s":
			m.side = m.side.Opposite()
			m.status = "side: " + string(m.side)
			m.rebuild()
		case "g":
			m.gender = m.gender.Opposite()
			m.status = "gender: " + string(m.gender)
			m.rebuild()
		case "c":
			m.data = nil
			m.selPath = ""
			m.status = "data cleared"
			m.rebuild()
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.layout().contentHeight-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			cmd := m.ta.Focus()
			return m, cmd
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showParts = !m.showParts
			if m.showParts {
				m.refreshPartsTable()
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY--
		case "down":
			m.offsetY++
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m = m.handleMouse(msg)
	}
	// Pass messages to the visible widget
	var cmd tea.Cmd
	switch {
	case m.showParts:
		m.tbl, cmd = m.tbl.Update(msg)
	case m.showSidebar:
		m.l, cmd = m.l.Update(msg)
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.pasteMode || m.showParts {
		return m
	}
	lo := m.layout()
	cx, cy := msg.X-lo.mapOriginX, msg.Y-lo.mapOriginY
	if cx < 0 || cx >= lo.mapWidth || cy < 0 || cy >= lo.mapHeight {
		m.hovering = false
		return m
	}
	s, x, y, hit := m.hitAt(cx, cy, lo.mapWidth, lo.mapHeight)
	m.hovering = true
	m.hoverX, m.hoverY = x, y
	m.hoverSlug = ""
	if hit {
		m.hoverSlug = s.Part.Slug
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || !hit {
		return m
	}
	if m.presser.Press(s) {
		m.status = "pressed: " + m.describe(s.Part.Slug)
	} else {
		m.status = "press suppressed: " + string(s.Part.Slug)
	}
	return m
}

// describe names a slug with its data intensity, if any.
func (m Model) describe(slug body.Slug) string {
	for _, d := range m.data {
		if d.Slug == slug && d.Intensity != 0 {
			return fmt.Sprintf("%s (intensity %d)", slug, d.Intensity)
		}
	}
	return string(slug)
}
