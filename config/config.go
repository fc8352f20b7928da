// Package config loads the YAML theme file: canvas defaults plus per-kind
// style overrides that layer between a tool's own style and the built-in
// defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ayoubsiyari/full-talaria-log--sub003/tools"
)

// CanvasConfig sets the default output surface.
type CanvasConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"`
}

// Config is the theme file contents.
type Config struct {
	Canvas CanvasConfig           `yaml:"canvas"`
	Styles map[string]tools.Style `yaml:"styles"`
}

// Default returns the configuration used when no theme file is given.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{Width: 800, Height: 600, Background: "#ffffff"},
	}
}

// Load reads and validates a theme file. Missing fields fall back to the
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks dimensions and that every styled kind exists.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %gx%g",
			c.Canvas.Width, c.Canvas.Height)
	}
	for kind := range c.Styles {
		if !tools.Kind(kind).Valid() {
			return fmt.Errorf("style for unknown tool kind %q", kind)
		}
	}
	return nil
}

// ThemeFor returns the theme style layer for a tool kind.
func (c *Config) ThemeFor(kind tools.Kind) (tools.Style, bool) {
	st, ok := c.Styles[string(kind)]
	return st, ok
}

// Apply installs the theme layer on every tool that has one configured.
func (c *Config) Apply(ts []tools.Tool) {
	for _, t := range ts {
		if st, ok := c.ThemeFor(t.Kind()); ok {
			if themed, ok := t.(interface{ SetTheme(tools.Style) }); ok {
				themed.SetTheme(st)
			}
		}
	}
}
