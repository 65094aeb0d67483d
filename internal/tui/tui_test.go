package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodymap/internal/body"
	"bodymap/internal/config"
	"bodymap/internal/svgpath"
)

func sized(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewBuildsScene(t *testing.T) {
	m := New(config.Default(), nil)
	assert.Equal(t, body.Male, m.gender)
	assert.Equal(t, body.Front, m.side)
	assert.NotEmpty(t, m.scene.Shapes)
}

func TestToggleSideAndGender(t *testing.T) {
	m := sized(t, New(config.Default(), nil))
	next, _ := m.Update(key("s"))
	m = next.(Model)
	assert.Equal(t, body.Back, m.side)
	assert.Equal(t, body.Back, m.scene.Side)

	next, _ = m.Update(key("g"))
	m = next.(Model)
	assert.Equal(t, body.Female, m.gender)
	assert.Equal(t, body.Female, m.scene.Gender)
}

func TestProjectionRoundTrip(t *testing.T) {
	m := New(config.Default(), nil)
	m.zoom = 1.5
	m.offsetX, m.offsetY = 3, -2
	for _, p := range [][2]int{{0, 0}, {40, 60}, {159, 159}} {
		x, y, ok := m.microToViewBox(p[0], p[1], 80, 40)
		require.True(t, ok)
		mx, my, ok := m.screenXYMicro(x, y, 80, 40)
		require.True(t, ok)
		assert.Equal(t, p, [2]int{mx, my})
	}
}

func TestMousePressDispatches(t *testing.T) {
	var pressed []body.Part
	m := sized(t, New(config.Default(), func(p body.Part) { pressed = append(pressed, p) }))
	lo := m.layout()

	var target body.Shape
	cx, cy, found := 0, 0, false
	for y := 0; y < lo.mapHeight && !found; y++ {
		for x := 0; x < lo.mapWidth && !found; x++ {
			if s, _, _, ok := m.hitAt(x, y, lo.mapWidth, lo.mapHeight); ok {
				target, cx, cy, found = s, x, y, true
			}
		}
	}
	require.True(t, found, "no pressable cell")

	next, _ := m.Update(tea.MouseMsg{
		X:      cx + lo.mapOriginX,
		Y:      cy + lo.mapOriginY,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m = next.(Model)
	require.Len(t, pressed, 1)
	assert.Equal(t, target.Part.Slug, pressed[0].Slug)
	assert.True(t, strings.HasPrefix(m.status, "pressed: "))
	assert.Equal(t, target.Part.Slug, m.hoverSlug)
}

func TestMouseMotionDoesNotPress(t *testing.T) {
	calls := 0
	m := sized(t, New(config.Default(), func(body.Part) { calls++ }))
	lo := m.layout()
	next, _ := m.Update(tea.MouseMsg{X: lo.mapOriginX + lo.mapWidth/2, Y: lo.mapOriginY + lo.mapHeight/2, Action: tea.MouseActionMotion})
	m = next.(Model)
	assert.Zero(t, calls)
	assert.True(t, m.hovering)
}

func TestViewRenders(t *testing.T) {
	m := sized(t, New(config.Default(), nil))
	out := m.View()
	assert.Contains(t, out, "bodymap")
	assert.Contains(t, out, "male front")
}

func TestInspectPath(t *testing.T) {
	out := inspectPath("M0 0L10 0L10 10L0 10Z")
	assert.Contains(t, out, "commands: 5  values: 8")
	assert.Contains(t, out, "bbox: [0, 0, 10, 10]")
	assert.Contains(t, out, "center: 5, 5")

	out = inspectPath("Z")
	assert.Contains(t, out, "center: none")
}

func TestRings(t *testing.T) {
	got := rings(svgpath.Parse("M0 0L1 0L1 1ZM5 5L6 5 7"))
	assert.Equal(t, [][][2]float64{
		{{0, 0}, {1, 0}, {1, 1}},
		{{5, 5}, {6, 5}},
	}, got)
}

func TestBrailleBuf(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0, "")
	b.setPixel(1, 3, "")
	b.setPixel(-1, 0, "")
	b.setPixel(10, 10, "")
	lines := b.toLines()
	require.Len(t, lines, 1)
	assert.Equal(t, string(rune(0x2800+0x01|0x80))+" ", lines[0])
}
