// Package config holds the rendering defaults and their TOML overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"bodymap/internal/body"
	"bodymap/internal/logging"
)

// Config is the full set of tunables for a bodymap session.
type Config struct {
	Colors    []string `toml:"colors"`
	Levels    int      `toml:"levels"`
	Scale     float64  `toml:"scale"`
	Side      string   `toml:"side"`
	Gender    string   `toml:"gender"`
	PressGate string   `toml:"press_gate"`
	LogFile   string   `toml:"log_file"`
	LogLevel  string   `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Colors:    append([]string(nil), body.DefaultColors...),
		Scale:     1,
		Side:      string(body.Front),
		Gender:    string(body.Male),
		PressGate: body.GateNone,
		LogFile:   "bodymap.log",
		LogLevel:  "info",
	}
}

// Load reads a TOML file over the defaults. An empty path or a missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and normalizes the palette.
func (c *Config) Validate() error {
	if len(c.Colors) == 0 {
		return errors.New("colors: at least one color required")
	}
	for i, s := range c.Colors {
		n, err := body.NormalizeColor(s)
		if err != nil {
			return fmt.Errorf("colors[%d]: %w", i, err)
		}
		c.Colors[i] = n
	}
	if c.Levels < 0 {
		return fmt.Errorf("levels: must not be negative, got %d", c.Levels)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale: must be positive, got %v", c.Scale)
	}
	if _, err := body.ParseSide(c.Side); err != nil {
		return err
	}
	if _, err := body.ParseGender(c.Gender); err != nil {
		return err
	}
	if _, err := body.GateByName(c.PressGate, 0); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Palette returns the configured colors, expanded to Levels when set.
func (c Config) Palette() ([]string, error) {
	if c.Levels == 0 || c.Levels == len(c.Colors) {
		return append([]string(nil), c.Colors...), nil
	}
	return body.Ramp(c.Colors, c.Levels)
}

// Options converts the configuration into scene options.
func (c Config) Options() (body.Options, error) {
	colors, err := c.Palette()
	if err != nil {
		return body.Options{}, err
	}
	return body.Options{Colors: colors, Scale: c.Scale}, nil
}

// Encode renders the configuration as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
