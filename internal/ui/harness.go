package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/mpv-context-menu/internal/transport"
)

// Harness drives a builder model without a terminal, following the commands
// each update returns the way the Bubble Tea runtime would.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model. The filter caret is
// made static so Send never waits on a blink tick.
func NewHarness(model *Model) *Harness {
	if model != nil {
		model.filterCursor.SetMode(cursor.CursorStatic)
	}
	return &Harness{model: model}
}

// Send routes msg through the model and runs the resulting commands until
// one yields no message.
func (h *Harness) Send(msg tea.Msg) {
	for msg != nil && h.model != nil {
		mdl, cmd := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

// Press sends each key in order.
func (h *Harness) Press(keys ...tea.KeyType) {
	for _, k := range keys {
		h.Send(tea.KeyMsg{Type: k})
	}
}

// Resize reports a terminal size change.
func (h *Harness) Resize(width, height int) {
	h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// Choose types each query into the filter of the open level and presses
// enter, walking down a cascade path such as "win", "stays", "always".
func (h *Harness) Choose(queries ...string) {
	for _, q := range queries {
		if h.Done() {
			return
		}
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(q)})
		h.Press(tea.KeyEnter)
	}
}

// Done reports whether the builder would have exited.
func (h *Harness) Done() bool {
	return h.model == nil || h.model.Done()
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Selection returns what the builder would print if it exited now.
func (h *Harness) Selection() transport.Selection {
	if h.model == nil {
		return transport.Selection{Index: transport.Unset}
	}
	return h.model.Selection()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
