package body

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeColor(t *testing.T) {
	c, err := NormalizeColor("#ABC")
	require.NoError(t, err)
	assert.Equal(t, "#aabbcc", c)

	c, err = NormalizeColor("#0984E3")
	require.NoError(t, err)
	assert.Equal(t, "#0984e3", c)

	_, err = NormalizeColor("blue")
	assert.Error(t, err)
}

func TestRamp(t *testing.T) {
	got, err := Ramp(DefaultColors, 2)
	require.NoError(t, err)
	assert.Equal(t, DefaultColors, got)

	got, err = Ramp(DefaultColors, 5)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, "#0984e3", got[0])
	assert.Equal(t, "#74b9ff", got[4])
	for _, c := range got[1:4] {
		assert.NotEqual(t, got[0], c)
		assert.NotEqual(t, got[4], c)
	}

	got, err = Ramp([]string{"#ffffff"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"#ffffff", "#ffffff", "#ffffff"}, got)

	got, err = Ramp([]string{"#000000", "#ffffff", "#ff0000"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"#000000", "#ffffff", "#ff0000"}, got)

	_, err = Ramp(nil, 3)
	assert.Error(t, err)
	_, err = Ramp(DefaultColors, 0)
	assert.Error(t, err)
	_, err = Ramp([]string{"nope"}, 2)
	assert.Error(t, err)
}
