package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the tunable parameters of a run
type Config struct {
	Count                int      `json:"count"`
	Radius               float64  `json:"radius"`
	Mass                 float64  `json:"mass"`
	Palette              []string `json:"palette"`
	MaxPlacementAttempts int      `json:"max_placement_attempts"` // 0 = unbounded
	Seed                 int64    `json:"seed"`                   // 0 = time based
	Width                int      `json:"width"`
	Height               int      `json:"height"`
	Backdrop             bool     `json:"backdrop"`
}

// DefaultConfig returns the stock settings
func DefaultConfig() Config {
	return Config{
		Count:   250,
		Radius:  15,
		Mass:    1,
		Palette: append([]string(nil), DefaultPalette...),
		Width:   1024,
		Height:  768,
	}
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Count < 0:
		return fmt.Errorf("count must be >= 0, got %d", c.Count)
	case c.Radius <= 0:
		return fmt.Errorf("radius must be > 0, got %g", c.Radius)
	case c.Mass <= 0:
		return fmt.Errorf("mass must be > 0, got %g", c.Mass)
	case c.MaxPlacementAttempts < 0:
		return fmt.Errorf("max_placement_attempts must be >= 0, got %d", c.MaxPlacementAttempts)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if _, err := ParsePalette(c.Palette); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads a JSON config. Keys missing from the file keep their
// default values.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", filename, err)
	}
	return cfg, nil
}

// Save writes the config as indented JSON
func (c Config) Save(filename string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
