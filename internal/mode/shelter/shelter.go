// Package shelter provides the animal registry demo mode.
package shelter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/curios/internal/collection"
	"github.com/zjrosen/curios/internal/config"
	"github.com/zjrosen/curios/internal/log"
	"github.com/zjrosen/curios/internal/notify"
	"github.com/zjrosen/curios/internal/pubsub"
	"github.com/zjrosen/curios/internal/shelter"
	"github.com/zjrosen/curios/internal/ui/markdown"
	"github.com/zjrosen/curios/internal/ui/menu"
	"github.com/zjrosen/curios/internal/ui/styles"
)

const helpContent = `# Animal Shelter

An in-memory registry of dogs and cats with observer notifications.

## Keys

- **1-7** or **j/k + enter**: choose a menu option
- **esc**: cancel a prompt and return to the menu
- **?**: toggle this help
- **q**: quit

Adding an animal notifies every registered observer in order. The registry
pane refreshes one second after each action, from a read-only snapshot.
Remove and info lookups match the exact variant tag (Dog, Cat).
`

// snapshotDelay is how long the display worker waits before reading the
// registry, mirroring the demo's deliberately slow refresh.
const snapshotDelay = time.Second

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
	actionAddDog action = iota
	actionAddCat
	actionRemoveByType
	actionInfoByType
)

// Menu option indices, matching the order passed to menu.New.
const (
	optAddDog = iota
	optAddCat
	optRemoveByType
	optInfoByType
	optSortByType
	optDisplayAll
	optExit
)

// snapshotMsg carries a read-only snapshot of the registry display lines.
type snapshotMsg struct {
	lines []string
}

// logWriter forwards observer output into the structured log.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	log.Info(log.CatNotify, strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// Model holds the shelter demo state.
type Model struct {
	container *shelter.Container
	notifier  *notify.Notifier
	broker    *pubsub.Broker[shelter.Animal]
	listener  *pubsub.ContinuousListener[shelter.Animal]
	ctx       context.Context
	cancel    context.CancelFunc

	menu  menu.Model
	input textinput.Model

	state     state
	action    action
	prompts   []string
	fields    []string
	promptIdx int

	outputTitle string
	output      []string
	notices     *collection.Container[string]
	status      string
	statusIsErr bool

	showHelpHint bool
	help         string

	width  int
	height int
}

// New creates the shelter demo around an explicitly constructed container.
// The caller owns the container and its Close.
func New(container *shelter.Container, cfg config.Config) Model {
	input := textinput.New()
	input.CharLimit = 64
	input.Width = 40

	ctx, cancel := context.WithCancel(context.Background())
	broker := pubsub.NewBroker[shelter.Animal]()

	notifier := notify.NewNotifier()
	notifier.AddObserver(notify.NewWriterObserver(logWriter{}))
	notifier.AddObserver(notify.NewBrokerObserver(broker))

	return Model{
		container: container,
		notices:   collection.New[string](),
		notifier:  notifier,
		broker:    broker,
		listener:  pubsub.NewContinuousListener(ctx, broker),
		ctx:       ctx,
		cancel:    cancel,
		menu: menu.New("Animal Shelter",
			"Add Dog",
			"Add Cat",
			"Remove By Type",
			"Display Info By Type",
			"Sort By Type",
			"Display All",
			"Exit",
		),
		input:        input,
		showHelpHint: cfg.UI.ShowHelpHint,
	}
}

// Close releases the notification plumbing.
func (m Model) Close() {
	m.cancel()
	m.broker.Close()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listener.Listen())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case pubsub.Event[shelter.Animal]:
		m.notices.Add(msg.Payload.Info())
		return m, m.listener.Listen()

	case snapshotMsg:
		m.outputTitle = "Registry"
		m.output = msg.lines
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
	case optAddDog:
		return m.beginPrompt(actionAddDog, "Enter dog name:"), nil
	case optAddCat:
		return m.beginPrompt(actionAddCat, "Enter cat name:"), nil
	case optRemoveByType:
		return m.beginPrompt(actionRemoveByType, "Enter type to remove (Dog/Cat):"), nil
	case optInfoByType:
		return m.beginPrompt(actionInfoByType, "Enter type to inspect (Dog/Cat):"), nil
	case optSortByType:
		m.container.SortByType()
		log.Info(log.CatShelter, "registry sorted")
		return m.withStatus("Sorted by type", false), m.snapshotCmd()
	case optDisplayAll:
		return m, m.snapshotCmd()
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
	return m.commit()
}

// commit applies the collected fields for the pending action.
func (m Model) commit() (tea.Model, tea.Cmd) {
	switch m.action {
	case actionAddDog, actionAddCat:
		tag := shelter.TagDog
		if m.action == actionAddCat {
			tag = shelter.TagCat
		}
		animal, err := shelter.NewAnimal(tag, m.fields[0])
		if err != nil {
			log.ErrorErr(log.CatShelter, "animal rejected", err, "tag", tag)
			return m.withStatus(err.Error(), true), nil
		}
		m.container.Add(animal)
		m.notifier.Notify(animal)
		log.Info(log.CatShelter, "animal added", "type", animal.Type(), "id", animal.ID())
		return m.withStatus("Added "+animal.Display(), false), m.snapshotCmd()

	case actionRemoveByType:
		tag := m.fields[0]
		before := m.container.Len()
		m.container.RemoveByType(tag)
		removed := before - m.container.Len()
		log.Info(log.CatShelter, "removed by type", "tag", tag, "count", removed)
		return m.withStatus(fmt.Sprintf("Removed %d of type %s", removed, tag), false), m.snapshotCmd()

	case actionInfoByType:
		tag := m.fields[0]
		m.outputTitle = "Info: " + tag
		m.output = m.container.InfoByType(tag)
		return m, nil
	}
	return m, nil
}

// snapshotCmd schedules the delayed read-only registry display. The timer
// goroutine only reads; all mutation stays on the update loop.
func (m Model) snapshotCmd() tea.Cmd {
	container := m.container
	return tea.Tick(snapshotDelay, func(time.Time) tea.Msg {
		return snapshotMsg{lines: container.Lines()}
	})
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
		b.WriteString(styles.TitleStyle.Render("Animal Shelter"))
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
		b.WriteString(m.pane(m.outputTitle, m.output))
	}

	if m.notices.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(m.pane("Notifications", m.notices.Lines()))
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusIsErr {
			b.WriteString(styles.StatusErrorStyle.Render(" " + m.status))
		} else {
			b.WriteString(styles.StatusSuccessStyle.Render(" " + m.status))
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render(fmt.Sprintf(" live registries: %d", shelter.InstanceCount())))
	if m.showHelpHint && m.state == stateMenu {
		b.WriteString(styles.MutedStyle.Render(" · ? help · q quit"))
	}

	return b.String()
}

func (m Model) pane(title string, lines []string) string {
	if len(lines) == 0 {
		lines = []string{styles.MutedStyle.Render("(empty)")}
	}
	content := styles.TitleStyle.Render(title) + "\n" + strings.Join(lines, "\n")
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
