// Package config holds the array builder settings and loads them from JSON.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultMaxDepth is the default limit on input nesting.
const DefaultMaxDepth = 32

// Config controls how nested host input becomes an array.
type Config struct {
	// MaxDepth limits nesting, and so array rank.
	MaxDepth int
	// StrictShape rejects input whose sibling sequences differ in length.
	// When false, only the first element at each level sets the shape.
	StrictShape bool
}

// File is the on-disk form. Unset fields keep their defaults.
type File struct {
	MaxDepth    *int  `json:"max_depth,omitempty"`
	StrictShape *bool `json:"strict_shape,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MaxDepth:    DefaultMaxDepth,
		StrictShape: true,
	}
}

// Validate checks the settings.
func (c Config) Validate() error {
	if c.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be >= 1, got %d", c.MaxDepth)
	}
	return nil
}

// Apply overlays the fields set in f onto c.
func (c Config) Apply(f File) Config {
	if f.MaxDepth != nil {
		c.MaxDepth = *f.MaxDepth
	}
	if f.StrictShape != nil {
		c.StrictShape = *f.StrictShape
	}
	return c
}

// Parse decodes JSON settings over the defaults.
func Parse(data []byte) (Config, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	cfg := Default().Apply(f)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load reads settings from a JSON file over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
