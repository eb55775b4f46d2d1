package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/curios/internal/catalog"
	"github.com/zjrosen/curios/internal/config"
	librarymode "github.com/zjrosen/curios/internal/mode/library"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Open the library catalog demo",
	Long:  `Launch the library catalog demo directly, skipping the demo picker.`,
	RunE:  runLibrary,
}

func init() {
	libraryCmd.Flags().Bool("set-default", false,
		"persist this demo as default_demo in the config file")
	rootCmd.AddCommand(libraryCmd)
}

func runLibrary(cmd *cobra.Command, args []string) error {
	if err := maybeSaveDefault(cmd, config.DemoLibrary); err != nil {
		return err
	}

	closeLog := setupLogging()
	defer closeLog()

	model := librarymode.New(catalog.New(), cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running library demo: %w", err)
	}
	return nil
}

// maybeSaveDefault persists demo as default_demo when --set-default was given.
func maybeSaveDefault(cmd *cobra.Command, demo string) error {
	setDefault, _ := cmd.Flags().GetBool("set-default")
	if !setDefault {
		return nil
	}
	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		configPath = ".curios/config.yaml"
	}
	if err := config.SaveDefaultDemo(configPath, demo); err != nil {
		return fmt.Errorf("saving default demo: %w", err)
	}
	return nil
}
