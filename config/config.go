// Package config loads the linkscroll demo configuration from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config drives the demo binary
type Config struct {
	Panes        int     `toml:"panes"`         // Number of linked panes
	PaneWidth    int     `toml:"pane_width"`    // Cells per pane, scrollbar included
	ContentLines int     `toml:"content_lines"` // Generated content rows per pane
	Friction     float64 `toml:"friction"`      // Fling decay coefficient per second
	Debug        bool    `toml:"debug"`         // Enable file logging
	LogDir       string  `toml:"log_dir"`       // Log directory when debug is set
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Panes:        3,
		PaneWidth:    24,
		ContentLines: 200,
		Friction:     4.0,
		LogDir:       "logs",
	}
}

// Load reads path and fills unset fields with defaults
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Panes == 0 {
		c.Panes = def.Panes
	}
	if c.PaneWidth == 0 {
		c.PaneWidth = def.PaneWidth
	}
	if c.ContentLines == 0 {
		c.ContentLines = def.ContentLines
	}
	if c.Friction == 0 {
		c.Friction = def.Friction
	}
	if c.LogDir == "" {
		c.LogDir = def.LogDir
	}
}

// Validate rejects configurations the demo cannot render
func (c Config) Validate() error {
	if c.Panes < 1 {
		return fmt.Errorf("panes must be at least 1, got %d", c.Panes)
	}
	if c.PaneWidth < 3 {
		return fmt.Errorf("pane_width must be at least 3, got %d", c.PaneWidth)
	}
	if c.ContentLines < 1 {
		return fmt.Errorf("content_lines must be at least 1, got %d", c.ContentLines)
	}
	if c.Friction <= 0 {
		return fmt.Errorf("friction must be positive, got %g", c.Friction)
	}
	return nil
}
