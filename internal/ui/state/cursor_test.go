package state

import (
	"testing"

	"github.com/atomicstack/mpv-context-menu/internal/menu"
)

func newTestLevel(labels ...string) *Level {
	items := make([]menu.Entry, len(labels))
	for i, label := range labels {
		items[i] = menu.Entry{Index: i + 1, Kind: menu.KindCommand, Label: label}
	}
	return NewLevel("test", "Test", items)
}

func sep(index int) menu.Entry {
	return menu.Entry{Index: index, Kind: menu.KindSeparator}
}

func TestNewLevelStartsOnFirstSelectable(t *testing.T) {
	items := []menu.Entry{
		sep(1),
		{Index: 2, Kind: menu.KindCommand, Label: "Off", Disabled: true},
		{Index: 3, Kind: menu.KindCascade, Label: "More", Target: "more_menu"},
	}
	l := NewLevel("test", "Test", items)
	if l.Cursor != 2 {
		t.Fatalf("expected cursor on cascade at 2, got %d", l.Cursor)
	}
	if !l.HasSelectable() {
		t.Fatal("expected a selectable entry")
	}

	dead := NewLevel("dead", "Dead", []menu.Entry{sep(1)})
	if dead.HasSelectable() {
		t.Fatal("expected no selectable entries")
	}
}

func TestMoveCursorSkipsSeparatorsAndDisabled(t *testing.T) {
	items := []menu.Entry{
		{Index: 1, Kind: menu.KindCommand, Label: "a"},
		sep(2),
		{Index: 3, Kind: menu.KindCheck, Label: "b", Disabled: true},
		{Index: 4, Kind: menu.KindRadio, Label: "c"},
	}
	l := NewLevel("test", "Test", items)
	if !l.MoveCursorDown() {
		t.Fatal("expected movement down")
	}
	if l.Cursor != 3 {
		t.Fatalf("expected cursor 3, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || l.Cursor != 0 {
		t.Fatalf("expected wrap to 0, got %d", l.Cursor)
	}
	if !l.MoveCursorUp() || l.Cursor != 3 {
		t.Fatalf("expected wrap up to 3, got %d", l.Cursor)
	}

	single := NewLevel("one", "One", items[:2])
	if single.MoveCursorDown() {
		t.Fatal("expected no movement with one selectable entry")
	}
}

func TestMoveCursorHome(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	if !l.MoveCursorHome() {
		t.Fatalf("expected move when items exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestLevel()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Full = append(l.Full, sep(4))
	l.UpdateItems(l.Full)
	l.Cursor = 0
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2 ahead of trailing separator, got %d", l.Cursor)
	}

	empty := newTestLevel()
	if empty.MoveCursorEnd() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 0
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on first page down")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on second page down")
	}
	if l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(2) {
		t.Fatalf("expected movement on page up")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page up, got %d", l.Cursor)
	}
	if !l.MoveCursorPageUp(10) {
		t.Fatalf("expected movement back to start")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestMoveCursorPagingLandsOnSelectable(t *testing.T) {
	items := []menu.Entry{
		{Index: 1, Kind: menu.KindCommand, Label: "a"},
		sep(2),
		{Index: 3, Kind: menu.KindCommand, Label: "b"},
	}
	l := NewLevel("test", "Test", items)
	if !l.MoveCursorPageDown(1) {
		t.Fatal("expected movement")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor to pass the separator, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.ViewportOffset = 0
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", l.Cursor)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset)
	}
}

func TestIndexOfAndTarget(t *testing.T) {
	items := []menu.Entry{
		{Index: 1, Kind: menu.KindCommand, Label: "Play"},
		sep(2),
		{Index: 3, Kind: menu.KindCascade, Label: "Speed", Target: "speed_menu"},
	}
	l := NewLevel("play_menu", "Play", items)
	if idx := l.IndexOf(3); idx != 2 {
		t.Fatalf("expected position 2, got %d", idx)
	}
	if idx := l.IndexOfTarget("speed_menu"); idx != 2 {
		t.Fatalf("expected target position 2, got %d", idx)
	}
	l.SetFilter("play", 4)
	if idx := l.IndexOf(3); idx != -1 {
		t.Fatalf("expected filtered entry to be missing, got %d", idx)
	}
}
