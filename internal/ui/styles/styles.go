// Package styles contains Lip Gloss style definitions shared by the demos.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/curios/internal/config"
)

var (
	// Semantic colors. Apply overrides these from the theme config.
	HighlightColor = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#54A0FF"}
	SubtleColor    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	ErrorColor     = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	SuccessColor   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	// TitleStyle renders pane and menu titles.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor).PaddingLeft(1)

	// SelectionIndicatorStyle renders the ">" prefix in menus.
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"})

	// MutedStyle renders hints and footers.
	MutedStyle = lipgloss.NewStyle().Foreground(SubtleColor)

	// StatusErrorStyle renders recoverable error messages in the status line.
	StatusErrorStyle = lipgloss.NewStyle().Foreground(ErrorColor)

	// StatusSuccessStyle renders confirmations in the status line.
	StatusSuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)

	// PaneBorderStyle frames the output pane.
	PaneBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(SubtleColor).Padding(0, 1)
)

// Apply overrides the semantic colors from the theme config. Empty fields
// keep their defaults.
func Apply(theme config.ThemeConfig) {
	if theme.Highlight != "" {
		HighlightColor = adaptive(theme.Highlight)
	}
	if theme.Subtle != "" {
		SubtleColor = adaptive(theme.Subtle)
	}
	if theme.Error != "" {
		ErrorColor = adaptive(theme.Error)
	}
	if theme.Success != "" {
		SuccessColor = adaptive(theme.Success)
	}

	TitleStyle = TitleStyle.Foreground(HighlightColor)
	MutedStyle = MutedStyle.Foreground(SubtleColor)
	StatusErrorStyle = StatusErrorStyle.Foreground(ErrorColor)
	StatusSuccessStyle = StatusSuccessStyle.Foreground(SuccessColor)
	PaneBorderStyle = PaneBorderStyle.BorderForeground(SubtleColor)
}

func adaptive(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
}
