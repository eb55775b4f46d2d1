// Package library provides the library catalog demo mode.
package library

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/curios/internal/catalog"
	"github.com/zjrosen/curios/internal/config"
	"github.com/zjrosen/curios/internal/log"
	"github.com/zjrosen/curios/internal/ui/markdown"
	"github.com/zjrosen/curios/internal/ui/menu"
	"github.com/zjrosen/curios/internal/ui/styles"
)

const helpContent = `# Library Catalog

An in-memory catalog of books, magazines, and members.

## Keys

- **1-6** or **j/k + enter**: choose a menu option
- **esc**: cancel a prompt and return to the menu
- **?**: toggle this help
- **q**: quit

Items and members are kept in insertion order and displayed one line each.
Nothing is persisted; quitting discards the catalog.
`

// state describes what the demo is currently showing.
type state int

const (
	stateMenu state = iota
	statePrompt
	stateHelp
)

// action is a pending menu action that collects prompt input.
type action int

const (
	actionAddBook action = iota
	actionAddMagazine
	actionAddMember
)

// Menu option indices, matching the order passed to menu.New.
const (
	optAddBook = iota
	optAddMagazine
	optAddMember
	optDisplayItems
	optDisplayMembers
	optExit
)

// Model holds the library demo state.
type Model struct {
	catalog *catalog.Catalog
	menu    menu.Model
	input   textinput.Model

	state     state
	action    action
	prompts   []string
	fields    []string
	promptIdx int

	outputTitle string
	output      []string
	status      string
	statusIsErr bool

	showHelpHint bool
	help         string

	width  int
	height int
}

// New creates the library demo around an explicitly constructed catalog.
func New(cat *catalog.Catalog, cfg config.Config) Model {
	input := textinput.New()
	input.CharLimit = 64
	input.Width = 40

	return Model{
		catalog: cat,
		menu: menu.New("Library Catalog",
			"Add Book",
			"Add Magazine",
			"Add Member",
			"Display Items",
			"Display Members",
			"Exit",
		),
		input:        input,
		showHelpHint: cfg.UI.ShowHelpHint,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case menu.SelectMsg:
		return m.handleSelect(msg.Index)

	case menu.CancelMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleSelect(index int) (tea.Model, tea.Cmd) {
	switch index {
	case optAddBook:
		return m.beginPrompt(actionAddBook, "Enter book title:", "Enter book author:"), nil
	case optAddMagazine:
		return m.beginPrompt(actionAddMagazine, "Enter magazine title:", "Enter magazine issue number:"), nil
	case optAddMember:
		return m.beginPrompt(actionAddMember, "Enter member name:"), nil
	case optDisplayItems:
		m.outputTitle = "Items"
		m.output = m.catalog.ItemLines()
		return m, nil
	case optDisplayMembers:
		m.outputTitle = "Members"
		m.output = m.catalog.MemberLines()
		return m, nil
	case optExit:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateHelp:
		m.state = stateMenu
		return m, nil

	case statePrompt:
		switch msg.String() {
		case "esc":
			m.state = stateMenu
			return m, nil
		case "enter":
			return m.capturePrompt()
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	default: // stateMenu
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.state = stateHelp
			return m, nil
		}
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
}

// beginPrompt switches into prompt mode collecting one field per prompt line.
func (m Model) beginPrompt(act action, prompts ...string) Model {
	m.state = statePrompt
	m.action = act
	m.prompts = prompts
	m.fields = make([]string, 0, len(prompts))
	m.promptIdx = 0
	m.status = ""
	m.input.SetValue("")
	m.input.Focus()
	return m
}

func (m Model) capturePrompt() (tea.Model, tea.Cmd) {
	m.fields = append(m.fields, m.input.Value())
	m.promptIdx++
	m.input.SetValue("")

	if m.promptIdx < len(m.prompts) {
		return m, nil
	}

	m.state = stateMenu
	return m.commit(), nil
}

// commit applies the collected fields for the pending action.
func (m Model) commit() Model {
	switch m.action {
	case actionAddBook, actionAddMagazine:
		tag := catalog.TagBook
		if m.action == actionAddMagazine {
			tag = catalog.TagMagazine
		}
		item, err := catalog.NewItem(tag, m.fields[0], m.fields[1])
		if err != nil {
			log.ErrorErr(log.CatCatalog, "item rejected", err, "tag", tag)
			return m.withStatus(err.Error(), true)
		}
		m.catalog.AddItem(item)
		log.Info(log.CatCatalog, "item added", "type", item.Type())
		return m.withStatus("Added "+item.Display(), false)

	case actionAddMember:
		member := catalog.NewMember(m.fields[0])
		m.catalog.AddMember(member)
		log.Info(log.CatCatalog, "member added", "name", member.Name())
		return m.withStatus("Added "+member.Display(), false)
	}
	return m
}

func (m Model) withStatus(status string, isErr bool) Model {
	m.status = status
	m.statusIsErr = isErr
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.state == stateHelp {
		return m.helpView()
	}

	var b strings.Builder

	if m.state == statePrompt {
		b.WriteString(styles.TitleStyle.Render("Library Catalog"))
		b.WriteString("\n\n")
		b.WriteString(" " + m.prompts[m.promptIdx])
		b.WriteString("\n ")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(styles.MutedStyle.Render(" enter confirm · esc cancel"))
	} else {
		b.WriteString(m.menu.View())
	}

	if m.outputTitle != "" {
		b.WriteString("\n")
		b.WriteString(m.outputPane())
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusIsErr {
			b.WriteString(styles.StatusErrorStyle.Render(" " + m.status))
		} else {
			b.WriteString(styles.StatusSuccessStyle.Render(" " + m.status))
		}
	}

	if m.showHelpHint && m.state == stateMenu {
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render(" ? help · q quit"))
	}

	return b.String()
}

func (m Model) outputPane() string {
	lines := m.output
	if len(lines) == 0 {
		lines = []string{styles.MutedStyle.Render("(empty)")}
	}
	content := styles.TitleStyle.Render(m.outputTitle) + "\n" + strings.Join(lines, "\n")
	return styles.PaneBorderStyle.Render(content)
}

func (m Model) helpView() string {
	if m.help == "" {
		m.help = renderHelp(m.width)
	}
	return m.help + "\n" + styles.MutedStyle.Render(" press any key to close")
}

func renderHelp(width int) string {
	wrap := min(width-4, 72)
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := markdown.New(wrap)
	if err != nil {
		return markdown.Plain(helpContent, wrap)
	}
	out, err := renderer.Render(helpContent)
	if err != nil {
		return markdown.Plain(helpContent, wrap)
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(out)
}
