package ui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/mpv-context-menu/internal/transport"
)

// TTYPath is the terminal the builder draws on. Its stdout belongs to the
// selection line, so the program never renders there.
const TTYPath = "/dev/tty"

// Run shows the menus in env on the controlling terminal and returns the
// pick. A dismissed menu returns a selection with Index set to Unset.
func Run(env transport.Envelope, opts Options) (transport.Selection, error) {
	model, err := NewModel(env, opts)
	if err != nil {
		return transport.Selection{}, err
	}
	tty, err := os.OpenFile(TTYPath, os.O_RDWR, 0)
	if err != nil {
		return transport.Selection{}, fmt.Errorf("open terminal: %w", err)
	}
	defer tty.Close()

	program := tea.NewProgram(model, tea.WithInput(tty), tea.WithOutput(tty), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return transport.Selection{}, err
	}
	if done, ok := final.(*Model); ok {
		return done.Selection(), nil
	}
	return model.Selection(), nil
}
