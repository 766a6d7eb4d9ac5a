package app

import (
	"context"
	"strconv"

	"github.com/atomicstack/mpv-context-menu/internal/catalog"
	"github.com/atomicstack/mpv-context-menu/internal/config"
	"github.com/atomicstack/mpv-context-menu/internal/dialog"
	"github.com/atomicstack/mpv-context-menu/internal/dispatcher"
	"github.com/atomicstack/mpv-context-menu/internal/logging"
	"github.com/atomicstack/mpv-context-menu/internal/logging/events"
	"github.com/atomicstack/mpv-context-menu/internal/mpv"
	"github.com/atomicstack/mpv-context-menu/internal/notice"
	"github.com/atomicstack/mpv-context-menu/internal/proc"
	"github.com/atomicstack/mpv-context-menu/internal/state"
	"github.com/atomicstack/mpv-context-menu/internal/transport"
)

// MenuMessagePrefix prefixes the script message that opens the menu with a
// given builder kind, e.g. "mpv_context_menu_tk".
const MenuMessagePrefix = "mpv_context_menu_"

// Options supplies the controller's collaborators. Zero values fall back to
// the real implementations where one exists.
type Options struct {
	Runner     proc.Runner
	Scheduler  transport.Scheduler
	CancelOn   transport.CancelSource
	Extensions *catalog.Extensions
	Clipboard  func(string) error
	Sandboxed  bool
	// Stop is called when mpv announces shutdown.
	Stop func()
}

// Controller owns the menu state of one mpv instance. Every method except
// New must run on the event loop.
type Controller struct {
	host       mpv.Host
	cfg        config.Config
	catalog    *catalog.Catalog
	sync       *state.Synchronizer
	dispatcher *dispatcher.Dispatcher
	transport  *transport.Transport
	dialogs    *dialog.Launcher
	stop       func()
}

// New builds a controller and registers its script bindings. It starts with
// the set shown while nothing is loaded.
func New(ctx context.Context, host mpv.Host, cfg config.Config, opts Options) *Controller {
	c := &Controller{
		host:       host,
		cfg:        cfg,
		dispatcher: dispatcher.New(host),
		stop:       opts.Stop,
	}
	c.catalog = catalog.New(ctx, host, catalog.Options{
		Steps:      cfg.Steps,
		Extensions: opts.Extensions,
		Clipboard:  opts.Clipboard,
	})
	c.sync = state.New(catalog.Watch(), catalog.Root)
	c.sync.Load(c.catalog.NoFile())

	c.transport = transport.New(transport.Config{
		Host:       host,
		Runner:     opts.Runner,
		Dispatcher: c.dispatcher,
		Scheduler:  opts.Scheduler,
		Source:     c.sync.Reconcile,
		Builders:   builders(cfg),
		Options: transport.Options{
			FontFace: cfg.Menu.FontFace,
			FontSize: cfg.Menu.FontSize,
			Limit:    cfg.Menu.Limit,
		},
		Sandboxed: opts.Sandboxed,
		CancelOn:  opts.CancelOn,
		OnError:   func(err error) { c.report(ctx, err) },
	})
	c.dialogs = dialog.New(host, opts.Runner, dialog.Config{
		Preference: cfg.Dialogs.Preference,
		KDialog:    cfg.Dialogs.KDialog,
		Zenity:     cfg.Dialogs.Zenity,
		XDotool:    cfg.Dialogs.XDotool,
	}, opts.Sandboxed)

	for kind := range cfg.Builders {
		kind := kind
		c.dispatcher.Register(MenuMessagePrefix+kind, func(ctx context.Context, args []string) {
			c.ShowMenu(ctx, kind, args)
		})
	}
	for _, b := range dialog.Bindings {
		b := b
		c.dispatcher.Register(b.Name, func(ctx context.Context, _ []string) {
			c.report(ctx, c.dialogs.Launch(ctx, b.Kind, b.Mode))
		})
	}
	return c
}

func builders(cfg config.Config) map[string]transport.Builder {
	out := make(map[string]transport.Builder, len(cfg.Builders))
	for kind, b := range cfg.Builders {
		out[kind] = transport.Builder{
			Kind:            kind,
			Interpreter:     b.Interpreter,
			Script:          b.Script,
			Repost:          config.Bool(b.Repost),
			SelfPositioning: config.Bool(b.SelfPositioning),
		}
	}
	return out
}

// Attach selects the set for what mpv is playing right now. mpv may have
// loaded a file before the controller connected, and no file-loaded event
// follows in that case.
func (c *Controller) Attach(ctx context.Context) {
	path := mpv.String(mpv.PropertyOr(ctx, c.host, "path", nil))
	if path == "" || c.sync.Active().FileLoaded {
		return
	}
	c.sync.Load(c.catalog.Loaded())
	events.App.Swap(true)
}

// Bindings lists the registered script message names.
func (c *Controller) Bindings() []string {
	return c.dispatcher.Bindings()
}

// Synchronizer exposes the menu state for inspection.
func (c *Controller) Synchronizer() *state.Synchronizer {
	return c.sync
}

// Handle applies one mpv event.
func (c *Controller) Handle(ctx context.Context, evt mpv.Event) {
	switch evt.Name {
	case mpv.EventPropertyChange:
		dirty := c.sync.PropertyChanged(evt.Property)
		events.Host.PropertyChange(evt.Property, dirty)
	case mpv.EventFileLoaded:
		events.Host.Event(evt.Name)
		c.sync.Load(c.catalog.Loaded())
		events.App.Swap(true)
	case mpv.EventEndFile:
		events.Host.Event(evt.Name)
		c.sync.Load(c.catalog.NoFile())
		events.App.Swap(false)
	case mpv.EventClientMessage:
		name, args, ok := evt.ScriptMessage()
		if !ok {
			return
		}
		events.Host.Message(name, args)
		c.dispatcher.Invoke(ctx, name, args)
	case mpv.EventShutdown:
		events.App.Stop("shutdown")
		if c.stop != nil {
			c.stop()
		}
	}
}

// ShowMenu presents the root menu with the builder for kind. Two numeric
// arguments place the menu at those coordinates.
func (c *Controller) ShowMenu(ctx context.Context, kind string, args []string) {
	req := transport.Request{Root: catalog.Root, Kind: kind, X: transport.Unset, Y: transport.Unset}
	if len(args) == 2 {
		x, errX := strconv.Atoi(args[0])
		y, errY := strconv.Atoi(args[1])
		if errX == nil && errY == nil {
			req.X, req.Y = x, y
		}
	}
	c.report(ctx, c.transport.Show(ctx, req))
}

// report logs err and shows its message when it carries one.
func (c *Controller) report(ctx context.Context, err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	msg, d, ok := notice.Message(err)
	if !ok {
		return
	}
	if err := c.host.ShowText(ctx, msg, d); err != nil {
		logging.Error(err)
	}
}
