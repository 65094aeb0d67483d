package body

import (
	"embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed atlas/*.yaml
var atlasFS embed.FS

// ErrUnknownAtlas is returned for a gender/side pair without a dataset.
var ErrUnknownAtlas = errors.New("unknown atlas")

// LoadAtlas decodes the embedded dataset for a figure and side. Every call
// returns a fresh copy that the caller may modify.
func LoadAtlas(g Gender, s Side) (*Atlas, error) {
	name := fmt.Sprintf("atlas/%s_%s.yaml", g, s)
	b, err := atlasFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownAtlas, g, s)
	}
	return DecodeAtlas(b)
}

// DecodeAtlas parses an atlas document.
func DecodeAtlas(b []byte) (*Atlas, error) {
	var a Atlas
	if err := yaml.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("decode atlas: %w", err)
	}
	if a.ViewBox[2] <= 0 || a.ViewBox[3] <= 0 {
		return nil, fmt.Errorf("decode atlas %s/%s: empty view box", a.Gender, a.Side)
	}
	return &a, nil
}
