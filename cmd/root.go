package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/curios/internal/app"
	"github.com/zjrosen/curios/internal/config"
	"github.com/zjrosen/curios/internal/log"
	"github.com/zjrosen/curios/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "curios",
	Short:   "A terminal ui of small design-pattern demos",
	Long:    `A terminal user interface hosting two interactive demos: a library catalog and an animal shelter registry.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/curios/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write a debug log to .curios/debug.log")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("default_demo", defaults.DefaultDemo)
	viper.SetDefault("ui.show_help_hint", defaults.UI.ShowHelpHint)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)
	viper.SetDefault("theme.success", defaults.Theme.Success)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .curios/config.yaml (current directory)
		// 2. ~/.config/curios/config.yaml (user config)
		if _, err := os.Stat(".curios/config.yaml"); err == nil {
			viper.SetConfigFile(".curios/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "curios"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .curios/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".curios/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
	styles.Apply(cfg.Theme)
}

// setupLogging enables the debug log when requested via --debug or CURIOS_DEBUG.
// The returned cleanup is a no-op when logging stays disabled.
func setupLogging() func() {
	if !debug && os.Getenv("CURIOS_DEBUG") == "" {
		return func() {}
	}
	closeLog, err := log.Init(filepath.Join(".curios", "debug.log"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "debug log disabled: %v\n", err)
		return func() {}
	}
	log.SetEnabled(true)
	return closeLog
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := config.ValidateDemo(cfg.DefaultDemo); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	closeLog := setupLogging()
	defer closeLog()

	model := app.New(cfg)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
