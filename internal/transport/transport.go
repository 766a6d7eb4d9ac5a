// Package transport presents menus through external builder processes.
//
// A presentation serializes the reachable part of the active menu set into
// one JSON argument, runs the builder to completion and dispatches the item
// named by the single line it prints. Builders that support it are asked to
// reopen the menu afterwards through a deferred continuation on the event
// loop.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/atomicstack/mpv-context-menu/internal/backend"
	"github.com/atomicstack/mpv-context-menu/internal/dispatcher"
	"github.com/atomicstack/mpv-context-menu/internal/logging"
	"github.com/atomicstack/mpv-context-menu/internal/logging/events"
	"github.com/atomicstack/mpv-context-menu/internal/menu"
	"github.com/atomicstack/mpv-context-menu/internal/mpv"
	"github.com/atomicstack/mpv-context-menu/internal/notice"
	"github.com/atomicstack/mpv-context-menu/internal/proc"
)

// RepostDelay lets queued host events run before a menu is reopened.
const RepostDelay = 50 * time.Millisecond

// Scheduler defers work onto the event loop.
type Scheduler interface {
	After(delay time.Duration, task backend.Task)
}

// Source returns the reconciled menu set to present.
type Source func() (*menu.Set, error)

// Options holds presentation settings shared by every builder.
type Options struct {
	FontFace string
	FontSize string
	Limit    int
}

// Request is one presentation.
type Request struct {
	Root string
	Kind string
	// X and Y are screen coordinates or Unset.
	X, Y int
	// Paths and Indexes reopen a cascade; empty for a fresh menu.
	Paths   string
	Indexes string
}

// Config wires a Transport.
type Config struct {
	Host       mpv.Host
	Runner     proc.Runner
	Dispatcher *dispatcher.Dispatcher
	Scheduler  Scheduler
	Source     Source
	Builders   map[string]Builder
	Options    Options
	Sandboxed  bool
	// CancelOn stops playback-bound spawns, normally on the next end-file
	// event. Nil disables cancellation.
	CancelOn CancelSource
	// OnError reports failures of deferred presentations.
	OnError func(error)
}

// Transport presents menus. It is used from the event loop only.
type Transport struct {
	cfg Config
}

// New returns a transport. Missing options fall back to defaults.
func New(cfg Config) *Transport {
	if cfg.Options.Limit <= 0 {
		cfg.Options.Limit = DefaultLimit
	}
	if cfg.Runner == nil {
		cfg.Runner = proc.ExecRunner{}
	}
	return &Transport{cfg: cfg}
}

// Builder returns the configured builder for kind.
func (t *Transport) Builder(kind string) (Builder, bool) {
	b, ok := t.cfg.Builders[kind]
	return b, ok
}

// Show reconciles the menu set and presents it.
func (t *Transport) Show(ctx context.Context, req Request) error {
	if t.cfg.Source == nil {
		return errors.New("transport has no menu source")
	}
	set, err := t.cfg.Source()
	if err != nil {
		return err
	}
	return t.Present(ctx, set, req)
}

// CancelSource returns a channel closed when a playback-bound spawn must stop,
// and a release func called once the spawn has finished either way.
type CancelSource func() (<-chan struct{}, func())

// Present runs the builder for req.Kind over set and dispatches the result.
// Dismissal and a depth overflow are not errors for the caller beyond the
// notice shown to the user.
func (t *Transport) Present(ctx context.Context, set *menu.Set, req Request) error {
	b, ok := t.cfg.Builders[req.Kind]
	if !ok {
		return notice.Newf("Unknown menu builder '%s'", req.Kind)
	}

	walk, err := Index(set, req.Root, t.cfg.Options.Limit)
	if err != nil {
		if errors.Is(err, ErrDepthExceeded) {
			events.Menu.Cancel(req.Root)
			return notice.Wrap(err, DepthMessage(t.cfg.Options.Limit))
		}
		return notice.Wrap(fmt.Errorf("index menus from %s: %w", req.Root, err), menu.StructureMessage)
	}

	x, y := t.coordinates(ctx, b, req)
	env := Envelope{
		X:           x,
		Y:           y,
		Menu:        make(map[string]menu.WireMenu, len(walk.Reachable)),
		MenuName:    req.Root,
		MenuLimit:   t.cfg.Options.Limit,
		MenuPaths:   req.Paths,
		MenuIndexes: req.Indexes,
		FontFace:    t.cfg.Options.FontFace,
		FontSize:    t.cfg.Options.FontSize,
	}
	for _, name := range walk.Reachable {
		env.Menu[name] = set.Menus[name].Encode()
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	events.Menu.Present(req.Root, b.Kind, x, y, len(walk.Reachable))
	res := t.run(ctx, set.FileLoaded, argv(b, string(payload), t.cfg.Sandboxed))
	events.Menu.Exit(b.Kind, res.Status, res.Err)
	if err := b.ExitError(res); err != nil {
		return err
	}

	sel, err := ParseSelection(res.Stdout)
	if err != nil {
		return notice.Wrap(err, fmt.Sprintf("Invalid response from '%s' menu builder", b.Kind))
	}
	if sel.ErrorValue != NoError {
		logging.Error(fmt.Errorf("menu builder %s: %s", b.Kind, sel.ErrorValue))
		_ = t.cfg.Host.ShowText(ctx, sel.ErrorValue, notice.DefaultDuration)
	}
	if sel.Cancelled() {
		events.Menu.Cancel(req.Root)
		return nil
	}

	item, err := dispatcher.Lookup(set, sel.MenuName, sel.Index)
	if err == nil && !item.Kind.Selectable() {
		err = fmt.Errorf("%w: %s[%d] is a %s", dispatcher.ErrNotFound, sel.MenuName, sel.Index, item.Kind)
	}
	if err != nil {
		return err
	}
	events.Menu.Select(sel.MenuName, sel.Index, sel.MenuPath)
	if err := t.cfg.Dispatcher.Execute(ctx, item); err != nil {
		return err
	}

	if b.Repost && item.Repost {
		return t.repost(req, sel, walk.Indexes)
	}
	return nil
}

func (t *Transport) repost(req Request, sel Selection, table IndexTable) error {
	paths, indexes, err := RepostPaths(sel.MenuPath, table)
	if err != nil {
		return err
	}
	if t.cfg.Scheduler == nil {
		return errors.New("repost requested without a scheduler")
	}
	next := Request{Root: req.Root, Kind: req.Kind, X: sel.X, Y: sel.Y, Paths: paths, Indexes: indexes}
	events.Menu.Repost(paths, indexes)
	t.cfg.Scheduler.After(RepostDelay, func(ctx context.Context) {
		if err := t.Show(ctx, next); err != nil && t.cfg.OnError != nil {
			t.cfg.OnError(err)
		}
	})
	return nil
}

func (t *Transport) coordinates(ctx context.Context, b Builder, req Request) (string, string) {
	x, y := req.X, req.Y
	if (x == Unset || y == Unset) && !b.SelfPositioning {
		pos := mpv.Map(mpv.PropertyOr(ctx, t.cfg.Host, "mouse-pos", nil))
		if x == Unset {
			x = mpv.Int(pos["x"])
		}
		if y == Unset {
			y = mpv.Int(pos["y"])
		}
	}
	return strconv.Itoa(x), strconv.Itoa(y)
}

func (t *Transport) run(ctx context.Context, playbackOnly bool, args []string) proc.Result {
	if !playbackOnly || t.cfg.CancelOn == nil {
		return t.cfg.Runner.Run(ctx, proc.Request{Args: args, CaptureStderr: true})
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop, release := t.cfg.CancelOn()
	defer release()
	go func() {
		select {
		case <-stop:
			cancel()
		case <-runCtx.Done():
		}
	}()
	return t.cfg.Runner.Run(runCtx, proc.Request{Args: args, CaptureStderr: true})
}
