package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/curios/internal/config"
	"github.com/zjrosen/curios/internal/ui/menu"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// === Picker ===

func TestNew_ShowsPicker(t *testing.T) {
	m := New(config.Defaults())

	view := ansi.Strip(m.View())
	require.Contains(t, view, "Curios")
	require.Contains(t, view, "Library Catalog")
	require.Contains(t, view, "Animal Shelter")
}

func TestSelectLibrary_LaunchesLibraryDemo(t *testing.T) {
	m := New(config.Defaults())
	t.Cleanup(m.Close)

	next, _ := m.Update(menu.SelectMsg{Index: optLibrary, Label: "Library Catalog"})
	m = next.(Model)
	t.Cleanup(m.Close)

	require.True(t, m.hasChild)
	require.Contains(t, ansi.Strip(m.View()), "Library")
}

func TestSelectShelter_LaunchesShelterDemo(t *testing.T) {
	m := New(config.Defaults())

	next, _ := m.Update(menu.SelectMsg{Index: optShelter, Label: "Animal Shelter"})
	m = next.(Model)
	t.Cleanup(m.Close)

	require.True(t, m.hasChild)
	require.Contains(t, ansi.Strip(m.View()), "Shelter")
}

func TestSelectQuit_Quits(t *testing.T) {
	m := New(config.Defaults())

	_, cmd := m.Update(menu.SelectMsg{Index: optQuit, Label: "Quit"})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestCancel_Quits(t *testing.T) {
	m := New(config.Defaults())

	_, cmd := m.Update(menu.CancelMsg{})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

// === Default demo ===

func TestDefaultDemo_LaunchesDirectly(t *testing.T) {
	cfg := config.Defaults()
	cfg.DefaultDemo = config.DemoShelter

	m := New(cfg)
	t.Cleanup(m.Close)

	require.True(t, m.hasChild)
	require.Contains(t, ansi.Strip(m.View()), "Shelter")
}

// === Forwarding ===

func TestChildReceivesMessages(t *testing.T) {
	m := New(config.Defaults())

	next, _ := m.Update(menu.SelectMsg{Index: optLibrary, Label: "Library Catalog"})
	m = next.(Model)
	t.Cleanup(m.Close)

	before := ansi.Strip(m.View())
	next, _ = m.Update(keyMsg("j"))
	m = next.(Model)
	after := ansi.Strip(m.View())

	require.NotEqual(t, before, after, "cursor movement should reach the child menu")
}

// === End to end ===

func TestPickerToLibrary_EndToEnd(t *testing.T) {
	m := New(config.Defaults())
	t.Cleanup(m.Close)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 40))

	// Pick the library demo, add a member, then exit. Menus deliver their
	// selection via a tea.Cmd, so wait for each screen before typing into it.
	tm.Type("1")
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return strings.Contains(ansi.Strip(string(bts)), "Add Member")
	}, teatest.WithDuration(3*time.Second))
	tm.Type("3")
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return strings.Contains(ansi.Strip(string(bts)), "Enter member name:")
	}, teatest.WithDuration(3*time.Second))
	tm.Type("Alice")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return strings.Contains(ansi.Strip(string(bts)), "Member: Alice")
	}, teatest.WithDuration(3*time.Second))

	tm.Type("6")
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}
