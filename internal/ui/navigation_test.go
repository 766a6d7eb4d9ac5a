package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/mpv-context-menu/internal/transport"
)

func expectQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestEnterPicksCommand(t *testing.T) {
	m := newTestModel(t, testEnvelope(), Options{})
	expectQuit(t, m.handleEnterKey())
	if !m.Done() {
		t.Fatal("expected model done after pick")
	}
	want := transport.Selection{
		X:          100,
		Y:          200,
		MenuName:   "context_menu",
		Index:      1,
		MenuPath:   ".context_menu",
		ErrorValue: transport.NoError,
	}
	if got := m.Selection(); got != want {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestCursorSkipsSeparatorIntoCascade(t *testing.T) {
	m := newTestModel(t, testEnvelope(), Options{})
	m.moveCursorDown()
	root := m.currentLevel()
	if root.Cursor != 2 {
		t.Fatalf("expected cursor past separator at 2, got %d", root.Cursor)
	}
	if cmd := m.handleEnterKey(); cmd != nil {
		t.Fatal("expected no command when opening a cascade")
	}
	if len(m.stack) != 2 {
		t.Fatalf("expected two levels, got %d", len(m.stack))
	}
	speed := m.currentLevel()
	if speed.ID != "speed_menu" || speed.Title != "Speed" {
		t.Fatalf("unexpected level %s/%s", speed.ID, speed.Title)
	}

	m.moveCursorDown()
	expectQuit(t, m.handleEnterKey())
	sel := m.Selection()
	if sel.MenuName != "speed_menu" || sel.Index != 3 || sel.MenuPath != ".context_menu.speed_menu" {
		t.Fatalf("unexpected selection %#v", sel)
	}
}

func TestCursorWrapsPastDisabledEntry(t *testing.T) {
	m := newTestModel(t, testEnvelope(), Options{})
	m.moveCursorUp()
	if got := m.currentLevel().Cursor; got != 4 {
		t.Fatalf("expected wrap to Mute at 4, got %d", got)
	}
	m.moveCursorDown()
	if got := m.currentLevel().Cursor; got != 0 {
		t.Fatalf("expected wrap past disabled Quit to 0, got %d", got)
	}
}

func TestHandleEscapeKeyFromRootDismisses(t *testing.T) {
	m := newTestModel(t, testEnvelope(), Options{})
	expectQuit(t, m.handleEscapeKey())
	sel := m.Selection()
	if !sel.Cancelled() {
		t.Fatalf("expected cancelled selection, got %#v", sel)
	}
	if sel.MenuName != "context_menu" || sel.X != 100 {
		t.Fatalf("expected root name and coordinates echoed, got %#v", sel)
	}
}

func TestHandleEscapeKeyPopsLevel(t *testing.T) {
	m := newTestModel(t, testEnvelope(), Options{})
	root := m.currentLevel()
	root.Cursor = 3
	m.handleEnterKey()
	m.errMsg = "previous error"

	if cmd := m.handleEscapeKey(); cmd != nil {
		t.Fatalf("expected no command when popping a level")
	}
	if len(m.stack) != 1 {
		t.Fatalf("expected stack to shrink to 1, got %d", len(m.stack))
	}
	if root.Cursor != 3 {
		t.Fatalf("expected parent cursor restored to 3, got %d", root.Cursor)
	}
	if root.LastCursor != -1 {
		t.Fatalf("expected parent LastCursor reset, got %d", root.LastCursor)
	}
	if m.errMsg != "" {
		t.Fatalf("expected error message cleared, got %q", m.errMsg)
	}
}

func TestCtrlCDismissesFromSubmenu(t *testing.T) {
	m := newTestModel(t, testEnvelope(), Options{})
	m.currentLevel().Cursor = 3
	m.handleEnterKey()
	expectQuit(t, m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlC}))
	sel := m.Selection()
	if !sel.Cancelled() || sel.MenuName != "window_menu" {
		t.Fatalf("unexpected selection %#v", sel)
	}
	if cmd := m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("expected keys ignored once done")
	}
}

func TestRightAndLeftOpenAndClose(t *testing.T) {
	m := newTestModel(t, testEnvelope(), Options{})
	if cmd := m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRight}); cmd != nil || len(m.stack) != 1 {
		t.Fatal("expected right on a command to do nothing")
	}
	m.currentLevel().Cursor = 2
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRight})
	if len(m.stack) != 2 {
		t.Fatalf("expected right to open the cascade, got %d levels", len(m.stack))
	}
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyLeft})
	if len(m.stack) != 1 {
		t.Fatalf("expected left to close the cascade, got %d levels", len(m.stack))
	}
	if cmd := m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyLeft}); cmd != nil {
		t.Fatal("expected left at the root not to dismiss")
	}
}

func TestOpenCascadeRespectsLimit(t *testing.T) {
	env := testEnvelope()
	env.MenuLimit = 2
	m := newTestModel(t, env, Options{})
	m.currentLevel().Cursor = 3
	m.handleEnterKey()
	if len(m.stack) != 2 {
		t.Fatalf("expected window menu open, got %d levels", len(m.stack))
	}
	m.handleEnterKey()
	if len(m.stack) != 2 {
		t.Fatalf("expected depth limit to block, got %d levels", len(m.stack))
	}
	if m.errMsg != transport.DepthMessage(2) {
		t.Fatalf("unexpected error message %q", m.errMsg)
	}
}

func TestOpenCascadeUnknownTarget(t *testing.T) {
	env := testEnvelope()
	delete(env.Menu, "staysontop_menu")
	m := newTestModel(t, env, Options{})
	m.currentLevel().Cursor = 3
	m.handleEnterKey()
	m.handleEnterKey()
	if len(m.stack) != 2 || m.errMsg == "" {
		t.Fatalf("expected unknown menu error, stack=%d err=%q", len(m.stack), m.errMsg)
	}
}

func TestReopenFromIndexes(t *testing.T) {
	env := testEnvelope()
	env.MenuIndexes = "3?0"
	m := newTestModel(t, env, Options{})
	if len(m.stack) != 3 {
		t.Fatalf("expected three levels, got %d", len(m.stack))
	}
	if got := m.menuPath(); got != ".context_menu.window_menu.staysontop_menu" {
		t.Fatalf("unexpected path %q", got)
	}
	if m.stack[0].Cursor != 3 || m.stack[1].Cursor != 0 {
		t.Fatalf("expected parents to point at the open cascades, got %d/%d", m.stack[0].Cursor, m.stack[1].Cursor)
	}

	m.moveCursorDown()
	expectQuit(t, m.handleEnterKey())
	sel := m.Selection()
	if sel.MenuName != "staysontop_menu" || sel.Index != 2 {
		t.Fatalf("unexpected selection %#v", sel)
	}
}

func TestReopenStopsAtMismatch(t *testing.T) {
	cases := map[string]int{
		"0":     1, // Play - Pause is not a cascade
		"9":     1,
		"x":     1,
		"3?1":   2, // A-B Loop is not a cascade
		"2?0?0": 2,
	}
	for indexes, depth := range cases {
		env := testEnvelope()
		env.MenuIndexes = indexes
		m := newTestModel(t, env, Options{})
		if len(m.stack) != depth {
			t.Fatalf("indexes %q: expected depth %d, got %d", indexes, depth, len(m.stack))
		}
	}
}

func TestEnterOnDisabledEntryKeepsMenuOpen(t *testing.T) {
	m := newTestModel(t, testEnvelope(), Options{})
	m.currentLevel().Cursor = 5
	if cmd := m.handleEnterKey(); cmd != nil {
		t.Fatal("expected no command for a disabled entry")
	}
	if m.Done() || m.currentInfo() == "" {
		t.Fatalf("expected an info message and an open menu")
	}
}
