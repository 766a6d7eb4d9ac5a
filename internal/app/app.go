// Package app connects the menu controller to a running mpv and serves
// script messages until mpv exits.
package app

import (
	"context"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/atomicstack/mpv-context-menu/internal/backend"
	"github.com/atomicstack/mpv-context-menu/internal/catalog"
	"github.com/atomicstack/mpv-context-menu/internal/config"
	"github.com/atomicstack/mpv-context-menu/internal/logging"
	"github.com/atomicstack/mpv-context-menu/internal/logging/events"
	"github.com/atomicstack/mpv-context-menu/internal/mpv"
	"github.com/atomicstack/mpv-context-menu/internal/sandbox"
)

const dialInterval = 500 * time.Millisecond

// Run attaches to the socket in cfg and blocks until mpv shuts down, the
// connection drops or ctx ends.
func Run(ctx context.Context, cfg config.Config) error {
	lock, err := acquireLock(cfg.IPC.Socket)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logging.Error(err)
		}
	}()

	ext, err := catalog.LoadExtensions(cfg.Menu.Extensions)
	if err != nil {
		return err
	}

	attempts := 1
	dialer := backend.NewDialer(cfg.IPC.Socket, dialInterval)
	dialer.OnRetry = func(attempt int, err error) {
		attempts = attempt + 1
		events.App.Retry(cfg.IPC.Socket, attempt, err)
	}
	client, err := dialer.Connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()
	events.App.Connected(cfg.IPC.Socket, attempts)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := backend.NewLoop()
	ctl := New(ctx, client, cfg, Options{
		Scheduler:  loop,
		CancelOn:   func() (<-chan struct{}, func()) { return client.NextEvent(mpv.EventEndFile) },
		Extensions: ext,
		Sandboxed:  sandbox.Check(os.Environ()),
		Stop:       cancel,
	})

	// Queued ahead of any forwarded event, so a file-loaded arriving after
	// the read still wins.
	loop.Post(ctl.Attach)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return client.Run(gctx)
	})
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		return ctl.Bind(gctx, client)
	})
	g.Go(func() error {
		// The event channel closes once the reader stops, which ends the
		// session.
		defer cancel()
		for evt := range client.Events() {
			evt := evt
			loop.Post(func(ctx context.Context) {
				ctl.Handle(ctx, evt)
			})
		}
		return nil
	})
	err = g.Wait()
	events.App.Stop("disconnected")
	return err
}
