// Package menu provides the numbered menu component the demos are built on.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/curios/internal/ui/styles"
)

// SelectMsg is sent when an option is chosen.
type SelectMsg struct {
	Index int
	Label string
}

// CancelMsg is sent when the menu is cancelled.
type CancelMsg struct{}

// Model holds the menu state.
type Model struct {
	title    string
	options  []string
	selected int
	width    int
}

// New creates a menu with the given title and options.
func New(title string, options ...string) Model {
	width := lipgloss.Width(title)
	for _, opt := range options {
		// "N. " prefix plus selection indicator.
		if w := lipgloss.Width(opt) + 4; w > width {
			width = w
		}
	}
	return Model{
		title:   title,
		options: options,
		width:   width + 2,
	}
}

// Selected returns the currently highlighted option index.
func (m Model) Selected() int {
	return m.selected
}

// Update handles key messages. Digits 1..9 select an option directly; j/k and
// the arrow keys move the highlight; enter confirms; esc cancels.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "j", "down", "ctrl+n":
		if m.selected < len(m.options)-1 {
			m.selected++
		}
	case "k", "up", "ctrl+p":
		if m.selected > 0 {
			m.selected--
		}
	case "enter":
		return m, m.selectCmd(m.selected)
	case "esc":
		return m, func() tea.Msg { return CancelMsg{} }
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(m.options) {
				m.selected = idx
				return m, m.selectCmd(idx)
			}
		}
	}
	return m, nil
}

func (m Model) selectCmd(idx int) tea.Cmd {
	return func() tea.Msg {
		return SelectMsg{Index: idx, Label: m.options[idx]}
	}
}

// View renders the menu box.
func (m Model) View() string {
	var options strings.Builder
	for i, opt := range m.options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		if i == m.selected {
			line = styles.SelectionIndicatorStyle.Render(">") + lipgloss.NewStyle().Bold(true).Render(line)
		} else {
			line = " " + line
		}
		options.WriteString(line)
		if i < len(m.options)-1 {
			options.WriteString("\n")
		}
	}

	divider := styles.MutedStyle.Render(strings.Repeat("─", m.width))
	content := styles.TitleStyle.Render(m.title) + "\n" + divider + "\n" + options.String()

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.SubtleColor).
		Width(m.width).
		Render(content)
}
