package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/curios/internal/config"
)

// resetViper clears global viper state between config tests.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

// === Config loading ===

func TestInitConfig_NoFile_UsesDefaults(t *testing.T) {
	resetViper(t)
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	cfgFile = ""
	initConfig()

	require.Equal(t, "", cfg.DefaultDemo)
	require.True(t, cfg.UI.ShowHelpHint)
	require.Equal(t, config.Defaults().Theme.Highlight, cfg.Theme.Highlight)
}

func TestInitConfig_NoFile_WritesDefaultConfig(t *testing.T) {
	resetViper(t)
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	cfgFile = ""
	initConfig()

	_, err := os.Stat(filepath.Join(tmpDir, ".curios", "config.yaml"))
	require.NoError(t, err, "expected a default config file to be created")
}

func TestInitConfig_ExplicitFile_Loads(t *testing.T) {
	resetViper(t)
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_demo: shelter\ntheme:\n  highlight: \"#FF0000\"\n"), 0644))

	cfgFile = path
	t.Cleanup(func() { cfgFile = "" })
	initConfig()

	require.Equal(t, config.DemoShelter, cfg.DefaultDemo)
	require.Equal(t, "#FF0000", cfg.Theme.Highlight)
}

func TestInitConfig_LocalDirTakesPrecedence(t *testing.T) {
	resetViper(t)
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	require.NoError(t, os.MkdirAll(".curios", 0755))
	require.NoError(t, os.WriteFile(filepath.Join(".curios", "config.yaml"),
		[]byte("default_demo: library\n"), 0644))

	cfgFile = ""
	initConfig()

	require.Equal(t, config.DemoLibrary, cfg.DefaultDemo)
}

// === Commands ===

func TestRootCmd_HasDemoSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	require.True(t, names["library"], "expected a library subcommand")
	require.True(t, names["shelter"], "expected a shelter subcommand")
}

func TestRunApp_InvalidDefaultDemo_Errors(t *testing.T) {
	old := cfg
	t.Cleanup(func() { cfg = old })

	cfg.DefaultDemo = "zoo"
	err := runApp(rootCmd, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown demo")
}

func TestSetVersion(t *testing.T) {
	old := version
	t.Cleanup(func() { SetVersion(old) })

	SetVersion("1.2.3")
	require.Equal(t, "1.2.3", rootCmd.Version)
}
