package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSaveDefaultDemo_CreatesNewFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveDefaultDemo(configPath, DemoShelter))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	require.Equal(t, "shelter", parsed["default_demo"])
}

func TestSaveDefaultDemo_ReplacesExistingKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("default_demo: library\n"), 0o600))

	require.NoError(t, SaveDefaultDemo(configPath, DemoShelter))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	require.Equal(t, "shelter", parsed["default_demo"])
}

func TestSaveDefaultDemo_PreservesCommentsAndOtherKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	original := "# my settings\nui:\n  show_help_hint: false # keep hidden\n"
	require.NoError(t, os.WriteFile(configPath, []byte(original), 0o600))

	require.NoError(t, SaveDefaultDemo(configPath, DemoLibrary))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "# my settings")
	require.Contains(t, string(data), "# keep hidden")
	require.Contains(t, string(data), "default_demo: library")
}

func TestSaveDefaultDemo_RejectsUnknownDemo(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	err := SaveDefaultDemo(configPath, "zoo")
	require.Error(t, err)

	_, statErr := os.Stat(configPath)
	require.True(t, os.IsNotExist(statErr), "invalid demo must not create a file")
}
