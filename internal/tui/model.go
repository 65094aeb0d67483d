package tui

import (
	"fmt"
	"os"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"bodymap/internal/body"
	"bodymap/internal/config"
	"bodymap/internal/logging"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Diagram
	cfg     config.Config
	opts    body.Options
	gender  body.Gender
	side    body.Side
	data    []body.Part
	scene   body.Scene
	presser body.Presser
	onPress func(body.Part)

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// path inspect popup
	inspectPopup string

	// hover state
	hovering  bool
	hoverX    float64
	hoverY    float64
	hoverSlug body.Slug

	// parts table
	showParts bool
	tbl       table.Model
}

// New builds a viewer from cfg. onPress, when not nil, receives every press
// that passes the configured gate.
func New(cfg config.Config, onPress func(body.Part)) Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "bodymap ready",
		cfg:         cfg,
		onPress:     onPress,
	}
	m.cwd, _ = os.Getwd()
	var err error
	if m.side, err = body.ParseSide(cfg.Side); err != nil {
		m.side = body.Front
	}
	if m.gender, err = body.ParseGender(cfg.Gender); err != nil {
		m.gender = body.Male
	}
	if m.opts, err = cfg.Options(); err != nil {
		m.opts = body.DefaultOptions()
		m.status = "palette error: " + err.Error()
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Data files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste SVG path data here. Press Enter to inspect; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.rebuild()
	m.refreshDir()
	return m
}

// NewWithPath preloads a data file at launch.
func NewWithPath(cfg config.Config, onPress func(body.Part), path string) Model {
	m := New(cfg, onPress)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// rebuild reloads the atlas for the current figure and side and merges the
// current data into it.
func (m *Model) rebuild() {
	log := logging.Logger()
	a, err := body.LoadAtlas(m.gender, m.side)
	if err != nil {
		m.status = "atlas error: " + err.Error()
		log.Error("load atlas", "gender", m.gender, "side", m.side, "err", err)
		return
	}
	m.scene = body.Build(a, m.data, m.opts)
	gate, err := body.GateByName(m.cfg.PressGate, a.ViewBox[0]+a.ViewBox[2])
	if err != nil {
		m.status = "gate error: " + err.Error()
		gate = body.AllowAll
	}
	m.presser = body.Presser{Gate: gate, OnPress: m.onPress}

	var notes []string
	names := a.SlugNames()
	for _, slug := range body.Unknown(a, m.data) {
		note := fmt.Sprintf("%s not on %s %s", slug, m.gender, m.side)
		if s, ok := body.Suggest(slug, names); ok {
			note += fmt.Sprintf(" (did you mean %s?)", s)
		}
		notes = append(notes, note)
		log.Warn("unknown slug", "slug", slug, "gender", m.gender, "side", m.side)
	}
	if len(notes) > 0 {
		m.status = strings.Join(notes, "; ")
	}
	if m.showParts {
		m.refreshPartsTable()
	}
}
