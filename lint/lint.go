// Package lint ties the parser, lint engine, and formatter together into
// per-invocation sessions.
package lint

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

const defaultDebounce = 500 * time.Millisecond

// Config carries presentation and runtime options. The lint rule set itself
// is fixed and not configurable.
type Config struct {
	Name string `yaml:"name"`

	// Color selects terminal color usage: "auto" (default), "always", "never".
	Color string `yaml:"color"`

	// DebounceMS is the watch-mode debounce interval in milliseconds.
	DebounceMS int `yaml:"debounce_ms"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Color:      "auto",
		DebounceMS: int(defaultDebounce / time.Millisecond),
	}
}

// LoadConfig reads a yaml configuration file. An empty path yields the
// default configuration.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return config, fmt.Errorf("error opening configuration: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing configuration: %w", err)
	}
	if config.DebounceMS <= 0 {
		config.DebounceMS = int(defaultDebounce / time.Millisecond)
	}
	return config, nil
}

// Debounce returns the watch-mode debounce interval.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

func (c Config) applyColorMode() {
	switch c.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}
