package app

import (
	"context"
	"fmt"

	"github.com/atomicstack/mpv-context-menu/internal/logging/events"
)

// Binder is the part of the mpv client used to install bindings.
type Binder interface {
	Observe(ctx context.Context, id int64, name string) error
	KeyBind(ctx context.Context, key, cmd string) error
}

// KeyBinding routes an mpv key to a script message.
type KeyBinding struct {
	Key  string
	Name string
}

// KeyBindings lists the configured keys in a stable order. Keys left empty
// in the configuration are skipped.
func (c *Controller) KeyBindings() []KeyBinding {
	k := c.cfg.Keys
	all := []KeyBinding{
		{k.Menu, MenuMessagePrefix + c.cfg.Menu.Builder},
		{k.AddFiles, "add_files_dialog"},
		{k.AddFolder, "add_folder_dialog"},
		{k.AppendFiles, "append_files_dialog"},
		{k.AppendFolder, "append_folder_dialog"},
		{k.AddSubtitle, "add_subtitle_dialog"},
		{k.AddURL, "append_url_dialog"},
		{k.OpenURL, "open_url_dialog"},
		{k.OpenPlaylist, "open_playlist_dialog"},
		{k.AddAudio, "add_audio_dialog"},
	}
	out := all[:0]
	for _, kb := range all {
		if kb.Key != "" {
			out = append(out, kb)
		}
	}
	return out
}

// Bind installs the key bindings and observes every watched property.
// Observer ids start at 1 and follow the sorted property names.
func (c *Controller) Bind(ctx context.Context, b Binder) error {
	for _, kb := range c.KeyBindings() {
		if err := b.KeyBind(ctx, kb.Key, "script-message "+kb.Name); err != nil {
			return err
		}
		events.App.Bind(kb.Key, kb.Name)
	}
	for i, prop := range c.sync.Watch().Properties() {
		id := int64(i + 1)
		if err := b.Observe(ctx, id, prop); err != nil {
			return fmt.Errorf("install observers: %w", err)
		}
		events.Host.Observe(id, prop)
	}
	return nil
}
