package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/mpv-context-menu/internal/menu"
	"github.com/atomicstack/mpv-context-menu/internal/transport"
)

func TestChapterPaginationRespectsViewport(t *testing.T) {
	chapters := make(menu.Menu)
	for i := 1; i <= 20; i++ {
		chapters.Append(menu.Radio(fmt.Sprintf("chapter-%02d", i), "", menu.Run(fmt.Sprintf("set chapter %d", i-1)), menu.Bool(i == 1)))
	}
	env := testEnvelope()
	env.Menu["context_menu"] = menu.List(menu.Cascade("Chapters", "chapter_menu")).Encode()
	env.Menu["chapter_menu"] = chapters.Encode()

	harness := NewHarness(newTestModel(t, env, Options{Width: 40, Height: 8}))
	harness.Resize(40, 8)
	harness.Press(tea.KeyEnter)

	view := harness.View()
	if !strings.Contains(view, "chapter-01") {
		t.Fatalf("expected first chapter visible, view =\n%s", view)
	}
	if strings.Contains(view, "chapter-07") {
		t.Fatalf("expected chapter-07 to be outside initial viewport, view =\n%s", view)
	}

	for i := 0; i < 7; i++ {
		harness.Press(tea.KeyDown)
	}
	view = harness.View()
	if !strings.Contains(view, "chapter-08") {
		t.Fatalf("expected chapter-08 to be visible after scrolling, view =\n%s", view)
	}

	harness.Press(tea.KeyEnter)
	sel := harness.Selection()
	if sel.MenuName != "chapter_menu" || sel.Index != 8 || sel.MenuPath != ".context_menu.chapter_menu" {
		t.Fatalf("unexpected selection %#v", sel)
	}
	if !harness.Model().Done() {
		t.Fatal("expected harness model done")
	}
}

func TestHarnessEscapeChainDismisses(t *testing.T) {
	env := testEnvelope()
	env.MenuIndexes = "3?0"
	harness := NewHarness(newTestModel(t, env, Options{}))
	harness.Press(tea.KeyEsc, tea.KeyEsc)
	if harness.Done() {
		t.Fatal("expected menu still open at the root")
	}
	harness.Press(tea.KeyEsc)
	sel := harness.Selection()
	if sel.Index != transport.Unset || sel.MenuPath != ".context_menu" {
		t.Fatalf("unexpected selection %#v", sel)
	}
}

func TestHarnessChoosesThroughCascades(t *testing.T) {
	harness := NewHarness(newTestModel(t, testEnvelope(), Options{}))
	harness.Choose("win", "stays", "always")
	if !harness.Done() {
		t.Fatal("expected pick to end the builder")
	}
	sel := harness.Selection()
	if sel.MenuName != "staysontop_menu" || sel.Index != 2 {
		t.Fatalf("unexpected selection %#v", sel)
	}
	if sel.MenuPath != ".context_menu.window_menu.staysontop_menu" {
		t.Fatalf("unexpected menu path %q", sel.MenuPath)
	}
}
