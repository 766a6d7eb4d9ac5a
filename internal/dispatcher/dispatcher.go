// Package dispatcher turns a menu selection into an mpv command.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/mpv-context-menu/internal/logging/events"
	"github.com/atomicstack/mpv-context-menu/internal/menu"
	"github.com/atomicstack/mpv-context-menu/internal/mpv"
)

// ErrNotFound means a builder returned a selection the active set does not
// contain. The builder and the controller disagree about the menu.
var ErrNotFound = errors.New("selection not found in active menu set")

// Binding is an in-process handler for a script binding or message.
type Binding func(ctx context.Context, args []string)

// Dispatcher executes item commands against the host.
type Dispatcher struct {
	host     mpv.Host
	bindings map[string]Binding
}

// New returns a dispatcher sending commands to host.
func New(host mpv.Host) *Dispatcher {
	return &Dispatcher{host: host, bindings: make(map[string]Binding)}
}

// Register routes script-binding and script-message commands naming name to
// fn instead of mpv.
func (d *Dispatcher) Register(name string, fn Binding) {
	d.bindings[name] = fn
}

// Bindings lists registered names, sorted.
func (d *Dispatcher) Bindings() []string {
	names := make([]string, 0, len(d.bindings))
	for name := range d.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the binding called name. It reports whether one exists.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args []string) bool {
	fn, ok := d.bindings[name]
	if !ok {
		return false
	}
	fn(ctx, args)
	return true
}

// Lookup finds the item at index in the named menu of set.
func Lookup(set *menu.Set, menuName string, index int) (menu.Item, error) {
	item, ok := set.Lookup(menuName, index)
	if !ok {
		return menu.Item{}, fmt.Errorf("%w: %s[%d]", ErrNotFound, menuName, index)
	}
	return item, nil
}

// Execute runs item's command. Callbacks are called directly, empty commands
// are ignored and literal lines go to mpv verbatim unless they address a
// registered binding.
func (d *Dispatcher) Execute(ctx context.Context, item menu.Item) error {
	cmd := item.Command
	if cmd.Callback != nil {
		events.Command.Callback(item.Snapshot().Label)
		cmd.Callback()
		return nil
	}
	if strings.TrimSpace(cmd.Line) == "" {
		return nil
	}
	if name, args, ok := d.local(cmd.Line); ok {
		events.Command.Binding(name)
		d.bindings[name](ctx, args)
		return nil
	}
	events.Command.Line(cmd.Line)
	if err := d.host.CommandString(ctx, cmd.Line); err != nil {
		return fmt.Errorf("run %q: %w", cmd.Line, err)
	}
	return nil
}

func (d *Dispatcher) local(line string) (string, []string, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", nil, false
	}
	var name string
	var args []string
	switch fields[0] {
	case "script-binding":
		name = fields[1]
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}
	case "script-message":
		name, args = fields[1], fields[2:]
	case "script-message-to":
		if len(fields) < 3 {
			return "", nil, false
		}
		name, args = fields[2], fields[3:]
	default:
		return "", nil, false
	}
	if _, ok := d.bindings[name]; !ok {
		return "", nil, false
	}
	return name, args, true
}
