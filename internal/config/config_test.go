package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodymap/internal/body"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "bodymap.toml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, []string{"#0984e3", "#74b9ff"}, c.Colors)
	assert.Equal(t, 1.0, c.Scale)
	assert.Equal(t, "front", c.Side)
	assert.Equal(t, "male", c.Gender)
	assert.Equal(t, body.GateNone, c.PressGate)

	c.Colors[0] = "#000000"
	assert.Equal(t, "#0984e3", body.DefaultColors[0], "defaults are copied")
}

func TestLoad(t *testing.T) {
	p := writeConfig(t, `
colors = ["#FF0000", "#0f0"]
scale = 1.5
side = "back"
gender = "female"
press_gate = "right-half"
log_level = "debug"
`)
	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"#ff0000", "#00ff00"}, c.Colors)
	assert.Equal(t, 1.5, c.Scale)
	assert.Equal(t, "back", c.Side)
	assert.Equal(t, "female", c.Gender)
	assert.Equal(t, body.GateRightHalf, c.PressGate)
	assert.Equal(t, "bodymap.log", c.LogFile, "unset keys keep defaults")
}

func TestLoadMissing(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	c, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":  `scale = `,
		"side":    `side = "top"`,
		"gender":  `gender = "robot"`,
		"gate":    `press_gate = "left-half"`,
		"scale":   `scale = 0.0`,
		"color":   `colors = ["blue"]`,
		"empty":   `colors = []`,
		"levels":  `levels = -1`,
		"loglevl": `log_level = "loud"`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestPalette(t *testing.T) {
	c := Default()
	p, err := c.Palette()
	require.NoError(t, err)
	assert.Equal(t, c.Colors, p)

	c.Levels = 4
	p, err = c.Palette()
	require.NoError(t, err)
	assert.Len(t, p, 4)
	assert.Equal(t, "#0984e3", p[0])
	assert.Equal(t, "#74b9ff", p[3])

	opts, err := c.Options()
	require.NoError(t, err)
	assert.Equal(t, 1.0, opts.Scale)
	assert.Len(t, opts.Colors, 4)
}

func TestEncodeRoundTrip(t *testing.T) {
	c := Default()
	c.Side = "back"
	b, err := c.Encode()
	require.NoError(t, err)

	got, err := Load(writeConfig(t, string(b)))
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
