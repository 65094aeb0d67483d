package body

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for data files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported data format")

// DataExtensions are the file extensions LoadData understands.
var DataExtensions = []string{".json", ".yaml", ".yml", ".csv"}

// IsDataFile reports whether the path has a supported data extension.
func IsDataFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range DataExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadData reads caller intensity data. JSON and YAML files hold a list of
// parts; CSV files have a header naming a slug column and an intensity column,
// optionally a color column.
func LoadData(path string) ([]Part, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var parts []Part
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(b, &parts)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &parts)
	case ".csv":
		parts, err = decodeCSV(b)
	default:
		return nil, fmt.Errorf("%s: %w: %q", path, ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i, p := range parts {
		if p.Slug == "" {
			return nil, fmt.Errorf("%s: entry %d: missing slug", path, i+1)
		}
	}
	return parts, nil
}

// decodeCSV detects columns case-insensitively: slug|part|name,
// intensity|level and color|colour.
func decodeCSV(b []byte) ([]Part, error) {
	r := csv.NewReader(bytes.NewReader(b))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idxSlug, idxIntensity, idxColor := -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "slug", "part", "name":
			if idxSlug == -1 {
				idxSlug = i
			}
		case "intensity", "level":
			if idxIntensity == -1 {
				idxIntensity = i
			}
		case "color", "colour":
			if idxColor == -1 {
				idxColor = i
			}
		}
	}
	if idxSlug == -1 {
		return nil, errors.New("csv: slug column not found")
	}
	var parts []Part
	for n, row := range recs[1:] {
		if idxSlug >= len(row) || strings.TrimSpace(row[idxSlug]) == "" {
			continue
		}
		p := Part{Slug: Slug(strings.TrimSpace(row[idxSlug]))}
		if idxIntensity >= 0 && idxIntensity < len(row) {
			if s := strings.TrimSpace(row[idxIntensity]); s != "" {
				v, err := strconv.Atoi(s)
				if err != nil {
					return nil, fmt.Errorf("csv: row %d: intensity: %w", n+2, err)
				}
				p.Intensity = v
			}
		}
		if idxColor >= 0 && idxColor < len(row) {
			p.Color = strings.TrimSpace(row[idxColor])
		}
		parts = append(parts, p)
	}
	return parts, nil
}
