package body

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sceneAtlas() *Atlas {
	return &Atlas{
		Gender:  Male,
		Side:    Front,
		ViewBox: [4]float64{0, 0, 100, 100},
		Parts: []Part{
			{Slug: Chest, Color: "#111111", Paths: []string{"M0 0L10 0L10 10L0 10Z", "M50 0L60 0L60 10Z"}},
			{Slug: Hip, Color: "#222222", Type: TypeCircle, CX: 30, CY: 30},
			{Slug: Clavicle, Color: "#333333", Type: TypeLine, X1: 0, Y1: 50, X2: 40, Y2: 50},
			{Slug: Abs, Color: "#444444", Type: TypeRect, X: 70, Y: 70, Width: 10, Height: 20},
			{Slug: Neck, Type: "blob"},
		},
	}
}

func TestBuild(t *testing.T) {
	sc := Build(sceneAtlas(), nil, Options{Colors: palette, Scale: 2})
	assert.Equal(t, 400.0, sc.Width)
	assert.Equal(t, 800.0, sc.Height)
	require.Len(t, sc.Shapes, 7)

	kinds := make([]ShapeKind, len(sc.Shapes))
	for i, s := range sc.Shapes {
		kinds[i] = s.Kind
	}
	assert.Equal(t, []ShapeKind{ShapePath, ShapePath, ShapeCircle, ShapeLine, ShapeCircle, ShapeCircle, ShapeRect}, kinds)

	assert.Equal(t, MarkerRadius, sc.Shapes[2].R)
	assert.True(t, sc.Shapes[2].Pressable)
	assert.Equal(t, LineStrokeWidth, sc.Shapes[3].StrokeWidth)
	assert.Equal(t, LineCapRadius, sc.Shapes[4].R)
	assert.False(t, sc.Shapes[4].Pressable)
	assert.False(t, sc.Shapes[5].Pressable)
	assert.Equal(t, 40.0, sc.Shapes[5].CX)
	assert.Equal(t, "#111111", sc.Shapes[0].Fill)
}

func TestBuildDefaultsScale(t *testing.T) {
	sc := Build(sceneAtlas(), nil, Options{})
	assert.Equal(t, 200.0, sc.Width)
	assert.Equal(t, 400.0, sc.Height)
}

func TestBuildColorsData(t *testing.T) {
	sc := Build(sceneAtlas(), []Part{{Slug: Chest, Intensity: 2}}, Options{Colors: palette, Scale: 1})
	last := sc.Shapes[len(sc.Shapes)-1]
	assert.Equal(t, Chest, last.Part.Slug)
	assert.Equal(t, "#74b9ff", last.Fill)
	assert.Equal(t, Hip, sc.Shapes[0].Part.Slug)
}

func TestHitTest(t *testing.T) {
	sc := Build(sceneAtlas(), nil, Options{Colors: palette, Scale: 1})
	tests := []struct {
		x, y float64
		slug Slug
		ok   bool
	}{
		{5, 5, Chest, true},
		{55, 5, Chest, true},
		{30, 25, Hip, true},
		{30, 45, Clavicle, true},
		{0, 50, Clavicle, true},
		{75, 85, Abs, true},
		{95, 5, "", false},
	}
	for _, tt := range tests {
		s, ok := sc.HitTest(tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "%v,%v", tt.x, tt.y)
		assert.Equal(t, tt.slug, s.Part.Slug, "%v,%v", tt.x, tt.y)
	}
}

func TestSceneBounds(t *testing.T) {
	sc := Build(sceneAtlas(), nil, Options{Scale: 1})
	b := sc.Bounds()
	assert.Equal(t, -10.0, b.MinX)
	assert.Equal(t, 0.0, b.MinY)
	assert.Equal(t, 80.0, b.MaxX)
	assert.Equal(t, 90.0, b.MaxY)
}

func TestRender(t *testing.T) {
	sc, err := Render(Female, Back, []Part{{Slug: Gluteal, Intensity: 1}}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, Female, sc.Gender)
	assert.NotEmpty(t, sc.Shapes)

	_, err = Render(Male, "top", nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrUnknownAtlas)
}

func TestWriteSVG(t *testing.T) {
	sc := Build(sceneAtlas(), nil, Options{Colors: palette, Scale: 1})
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, sc))
	out := buf.String()
	assert.Contains(t, out, `viewBox="0 0 100 100"`)
	assert.Contains(t, out, `<path id="chest" fill="#111111" d="M0 0L10 0L10 10L0 10Z"/>`)
	assert.Contains(t, out, `<circle id="hip" fill="#222222" cx="30" cy="30" r="20"/>`)
	assert.Contains(t, out, `<line id="clavicle" stroke="#333333" stroke-width="20" x1="0" y1="50" x2="40" y2="50"/>`)
	assert.Contains(t, out, `<rect id="abs" fill="#444444" x="70" y="70" width="10" height="20"/>`)
	assert.NotContains(t, out, "neck")
}
