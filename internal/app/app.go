// Package app provides the top-level model: a picker that launches one of the
// two demos, or the demo itself when one was preselected.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/curios/internal/catalog"
	"github.com/zjrosen/curios/internal/config"
	"github.com/zjrosen/curios/internal/log"
	librarymode "github.com/zjrosen/curios/internal/mode/library"
	sheltermode "github.com/zjrosen/curios/internal/mode/shelter"
	"github.com/zjrosen/curios/internal/shelter"
	"github.com/zjrosen/curios/internal/ui/menu"
)

// Picker option indices, matching the order passed to menu.New.
const (
	optLibrary = iota
	optShelter
	optQuit
)

// Model is the top-level application model.
type Model struct {
	cfg    config.Config
	picker menu.Model

	child     tea.Model
	hasChild  bool
	lastWidth tea.WindowSizeMsg

	// closers tear down resources owned by launched demos.
	closers []func()
}

// New creates the top-level model. When cfg.DefaultDemo names a demo it is
// launched directly; otherwise the picker is shown.
func New(cfg config.Config) Model {
	m := Model{
		cfg: cfg,
		picker: menu.New("Curios",
			"Library Catalog",
			"Animal Shelter",
			"Quit",
		),
	}

	switch cfg.DefaultDemo {
	case config.DemoLibrary:
		m = m.launchLibrary()
	case config.DemoShelter:
		m = m.launchShelter()
	}

	return m
}

// Close releases resources owned by launched demos.
func (m Model) Close() {
	for _, closer := range m.closers {
		closer()
	}
}

func (m Model) launchLibrary() Model {
	log.Info(log.CatUI, "launching demo", "demo", config.DemoLibrary)
	m.child = librarymode.New(catalog.New(), m.cfg)
	m.hasChild = true
	return m
}

func (m Model) launchShelter() Model {
	log.Info(log.CatUI, "launching demo", "demo", config.DemoShelter)
	container := shelter.NewContainer()
	demo := sheltermode.New(container, m.cfg)
	m.closers = append(m.closers, demo.Close, container.Close)
	m.child = demo
	m.hasChild = true
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.hasChild {
		return m.child.Init()
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.lastWidth = sizeMsg
	}

	if m.hasChild {
		var cmd tea.Cmd
		m.child, cmd = m.child.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case menu.SelectMsg:
		switch msg.Index {
		case optLibrary:
			m = m.launchLibrary()
		case optShelter:
			m = m.launchShelter()
		case optQuit:
			return m, tea.Quit
		}
		// Replay the terminal size so the demo lays out immediately.
		initCmd := m.child.Init()
		m.child, _ = m.child.Update(m.lastWidth)
		return m, initCmd

	case menu.CancelMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.hasChild {
		return m.child.View()
	}
	return m.picker.View()
}
