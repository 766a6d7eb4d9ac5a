package transport

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/atomicstack/mpv-context-menu/internal/notice"
	"github.com/atomicstack/mpv-context-menu/internal/proc"
	"github.com/atomicstack/mpv-context-menu/internal/sandbox"
)

// Builder describes one external menu builder.
type Builder struct {
	Kind        string
	Interpreter string
	Script      string
	// Repost builders can reopen a menu at the depth it was left.
	Repost bool
	// SelfPositioning builders read the pointer themselves and receive the
	// Unset sentinel instead of coordinates.
	SelfPositioning bool
}

// ScriptName is the script's base name, used in user messages.
func (b Builder) ScriptName() string {
	return filepath.Base(b.Script)
}

// Argv returns the command line passing payload as the last argument.
func (b Builder) Argv(payload string) []string {
	argv := make([]string, 0, 3)
	if b.Interpreter != "" {
		argv = append(argv, b.Interpreter)
	}
	return append(argv, b.Script, payload)
}

// portalDuration keeps the flatpak hint on screen long enough to read.
const portalDuration = 5 * time.Second

// ExitError converts a failed builder run into a user notice.
func (b Builder) ExitError(res proc.Result) error {
	if res.Status == 0 {
		return nil
	}
	if sandbox.PortalFailure(res.Stderr) {
		return notice.Wrap(exitCause(res), sandbox.PortalMessage).For(portalDuration)
	}
	var msg string
	switch res.Status {
	case proc.StatusUnknown:
		msg = fmt.Sprintf("Possible error in %s script (Unknown error with '%s' menu builder).", b.ScriptName(), b.Kind)
	case proc.StatusKilled:
		msg = "Subprocess killed by mpv (mp_cancel)."
	case proc.StatusInitFailed:
		msg = fmt.Sprintf("Error during initialization of subprocess (Script: %s)", b.ScriptName())
	case proc.StatusUnsupported:
		msg = "API not supported."
	default:
		msg = fmt.Sprintf("Menu builder '%s' exited with status %d", b.Kind, res.Status)
	}
	return notice.Wrap(exitCause(res), msg)
}

func exitCause(res proc.Result) error {
	if res.Err != nil {
		return res.Err
	}
	return fmt.Errorf("exit status %d", res.Status)
}

// Argv wraps the builder command for the sandbox when needed.
func argv(b Builder, payload string, sandboxed bool) []string {
	return sandbox.Wrap(b.Argv(payload), sandboxed)
}
