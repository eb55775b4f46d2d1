package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.Empty(t, cfg.DefaultDemo)
	require.True(t, cfg.UI.ShowHelpHint)
	require.Equal(t, "#54A0FF", cfg.Theme.Highlight)
	require.Equal(t, "#FF8787", cfg.Theme.Error)
}

func TestValidateDemo(t *testing.T) {
	require.NoError(t, ValidateDemo(""))
	require.NoError(t, ValidateDemo(DemoLibrary))
	require.NoError(t, ValidateDemo(DemoShelter))

	err := ValidateDemo("aquarium")
	require.Error(t, err)
	require.Contains(t, err.Error(), "aquarium")
}

func TestDefaultConfigTemplate_ParsesAsYAML(t *testing.T) {
	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(DefaultConfigTemplate()), &parsed))
	require.Contains(t, parsed, "ui")
	require.Contains(t, parsed, "theme")
}

func TestWriteDefaultConfig_CreatesFileAndDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(configPath))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "show_help_hint")
}
