package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodymap/internal/config"
)

func TestCenter(t *testing.T) {
	var buf bytes.Buffer
	code := center(&buf, []string{"M0 0L10 0L10 10L0 10Z", "Z", "M1e1 2L3 4"})
	assert.Equal(t, 0, code)
	assert.Equal(t, "5 5\nnone\n6.5 3\n", buf.String())

	assert.Equal(t, 2, center(&buf, nil))
}

func TestWriteSVG(t *testing.T) {
	data := filepath.Join(t.TempDir(), "d.csv")
	require.NoError(t, os.WriteFile(data, []byte("slug,intensity\nchest,2\n"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, writeSVG(&buf, config.Default(), []string{data}))
	assert.Contains(t, buf.String(), `<path id="chest" fill="#74b9ff"`)

	assert.Error(t, writeSVG(&buf, config.Default(), []string{filepath.Join(t.TempDir(), "missing.csv")}))
}
