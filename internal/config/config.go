// Package config provides configuration types, defaults, and persistence for curios.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/curios/internal/log"
)

// Demo names accepted by default_demo and the demo subcommands.
const (
	DemoLibrary = "library"
	DemoShelter = "shelter"
)

// Config holds all configuration options for curios.
type Config struct {
	// DefaultDemo opens a demo directly instead of the picker.
	// Valid values: "library", "shelter", or "" for the picker.
	DefaultDemo string      `mapstructure:"default_demo"`
	UI          UIConfig    `mapstructure:"ui"`
	Theme       ThemeConfig `mapstructure:"theme"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowHelpHint bool `mapstructure:"show_help_hint"` // Show the "? help" hint in the status line
}

// ThemeConfig holds color overrides as hex strings.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"`
	Subtle    string `mapstructure:"subtle"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		DefaultDemo: "",
		UI: UIConfig{
			ShowHelpHint: true,
		},
		Theme: ThemeConfig{
			Highlight: "#54A0FF",
			Subtle:    "#696969",
			Error:     "#FF8787",
			Success:   "#73F59F",
		},
	}
}

// ValidateDemo checks that name is a known demo or empty.
func ValidateDemo(name string) error {
	switch name {
	case "", DemoLibrary, DemoShelter:
		return nil
	default:
		return fmt.Errorf("unknown demo %q (valid: %s, %s)", name, DemoLibrary, DemoShelter)
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Curios Configuration

# Open a demo directly instead of the picker
# Valid values: library, shelter
# default_demo: shelter

# UI settings
ui:
  show_help_hint: true   # Show the "? help" hint in the status line

# Theme colors (hex)
theme:
  highlight: "#54A0FF"
  subtle: "#696969"
  error: "#FF8787"
  success: "#73F59F"
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
