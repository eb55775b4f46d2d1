package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zjrosen/curios/internal/config"
	sheltermode "github.com/zjrosen/curios/internal/mode/shelter"
	"github.com/zjrosen/curios/internal/shelter"
)

var shelterCmd = &cobra.Command{
	Use:   "shelter",
	Short: "Open the animal shelter demo",
	Long:  `Launch the animal shelter registry demo directly, skipping the demo picker.`,
	RunE:  runShelter,
}

func init() {
	shelterCmd.Flags().Bool("set-default", false,
		"persist this demo as default_demo in the config file")
	rootCmd.AddCommand(shelterCmd)
}

func runShelter(cmd *cobra.Command, args []string) error {
	if err := maybeSaveDefault(cmd, config.DemoShelter); err != nil {
		return err
	}

	closeLog := setupLogging()
	defer closeLog()

	container := shelter.NewContainer()
	defer container.Close()

	model := sheltermode.New(container, cfg)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running shelter demo: %w", err)
	}
	return nil
}
