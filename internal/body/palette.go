package body

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultColors is the two-level palette used when none is configured.
var DefaultColors = []string{"#0984e3", "#74b9ff"}

// NormalizeColor validates a hex color and returns it in lowercase #rrggbb
// form. Short #rgb colors are expanded.
func NormalizeColor(s string) (string, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("color %q: %w", s, err)
	}
	return c.Hex(), nil
}

// Ramp expands a palette to n intensity levels by blending between
// consecutive stops in Lab space. The first and last stops are kept exactly.
func Ramp(stops []string, n int) ([]string, error) {
	if len(stops) == 0 {
		return nil, errors.New("ramp: no colors")
	}
	if n <= 0 {
		return nil, fmt.Errorf("ramp: invalid level count %d", n)
	}
	cs := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("ramp: color %q: %w", s, err)
		}
		cs[i] = c
	}
	out := make([]string, n)
	if n == 1 || len(cs) == 1 {
		for i := range out {
			out[i] = cs[0].Hex()
		}
		return out, nil
	}
	segs := float64(len(cs) - 1)
	for i := range out {
		t := float64(i) / float64(n-1) * segs
		k := int(t)
		if k >= len(cs)-1 {
			out[i] = cs[len(cs)-1].Hex()
			continue
		}
		f := t - float64(k)
		if f == 0 {
			out[i] = cs[k].Hex()
			continue
		}
		out[i] = cs[k].BlendLab(cs[k+1], f).Clamped().Hex()
	}
	return out, nil
}
