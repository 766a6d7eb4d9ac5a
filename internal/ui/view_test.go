package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/mpv-context-menu/internal/menu"
)

func TestViewRendersMarksAndAccelerators(t *testing.T) {
	m := newTestModel(t, testEnvelope(), Options{Width: 80, ShowFooter: true})
	view := m.View()
	for _, want := range []string{"context menu", "[x] Mute", "Play - Pause", "Space", "›", "─", "type to search", footerText} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
}

func TestViewNestedLevel(t *testing.T) {
	env := testEnvelope()
	env.MenuIndexes = "3"
	m := newTestModel(t, env, Options{Width: 40})
	view := m.View()
	if !strings.Contains(view, "window") {
		t.Fatalf("expected breadcrumb in view, got:\n%s", view)
	}
	if !strings.Contains(view, "[A] A-B Loop") {
		t.Fatalf("expected A-B state mark, got:\n%s", view)
	}
}

func TestViewShowsDepthError(t *testing.T) {
	env := testEnvelope()
	env.MenuLimit = 1
	m := newTestModel(t, env, Options{})
	m.currentLevel().Cursor = 2
	m.handleEnterKey()
	if view := m.View(); !strings.Contains(view, "Error: Too many menu levels") {
		t.Fatalf("expected depth error in view, got:\n%s", view)
	}
}

func TestViewNoMatches(t *testing.T) {
	m := newTestModel(t, testEnvelope(), Options{})
	m.appendToFilter("zzz")
	if view := m.View(); !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-match notice, got:\n%s", view)
	}
}

func TestViewEmptyAfterDone(t *testing.T) {
	m := newTestModel(t, testEnvelope(), Options{})
	m.handleEnterKey()
	if view := m.View(); view != "" {
		t.Fatalf("expected empty view once done, got %q", view)
	}
}

func TestItemRowsAlignAccelerators(t *testing.T) {
	rows := itemRows([]menu.Entry{
		{Index: 1, Kind: menu.KindRadio, Label: "1.0x", State: true},
		{Index: 2, Kind: menu.KindSeparator},
		{Index: 3, Kind: menu.KindCommand, Label: "Reset", Accelerator: "Backspace"},
	})
	want := []string{
		"(•) 1.0x            ",
		"────────────────────",
		"    Reset  Backspace",
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], rows[i])
		}
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("Rotate 90°", 20); got != "Rotate 90°" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := truncateText("Subtitle Track", 6); got != "Subti…" {
		t.Fatalf("expected ellipsis, got %q", got)
	}
}

func TestMonochromeViewRendersEntries(t *testing.T) {
	m := newTestModel(t, testEnvelope(), Options{Monochrome: true, Width: 40, Height: 20})
	if m.styles.Item != nil {
		t.Fatal("expected monochrome styles")
	}
	view := m.View()
	for _, want := range []string{"Play - Pause", "Space", "[x] Mute"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}
