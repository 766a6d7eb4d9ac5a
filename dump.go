package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/atomicstack/mpv-context-menu/internal/catalog"
	"github.com/atomicstack/mpv-context-menu/internal/config"
	"github.com/atomicstack/mpv-context-menu/internal/menu"
	"github.com/atomicstack/mpv-context-menu/internal/mpv"
	"github.com/atomicstack/mpv-context-menu/internal/state"
)

// offlineHost answers every property read as unavailable, so menus resolve
// to their defaults without a running mpv.
type offlineHost struct{}

var errOffline = errors.New("not connected to mpv")

func (offlineHost) Command(context.Context, ...string) error { return errOffline }
func (offlineHost) CommandString(context.Context, string) error { return errOffline }
func (offlineHost) Property(_ context.Context, name string) (interface{}, error) {
	return nil, fmt.Errorf("get %s: %w", name, mpv.ErrPropertyUnavailable)
}
func (offlineHost) ShowText(context.Context, string, time.Duration) error { return errOffline }

func newDumpCmd() *cobra.Command {
	var (
		configPath string
		loaded     bool
	)
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the menu tree as it resolves without a running mpv",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the TOML configuration file")
	cmd.Flags().BoolVar(&loaded, "loaded", false, "dump the set used while a file is playing")
	overrides := config.BindFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd, configPath, overrides)
		if err != nil {
			return err
		}
		ext, err := catalog.LoadExtensions(cfg.Menu.Extensions)
		if err != nil {
			return err
		}
		c := catalog.New(cmd.Context(), offlineHost{}, catalog.Options{Steps: cfg.Steps, Extensions: ext})
		set := c.NoFile()
		if loaded {
			set = c.Loaded()
		}
		sync := state.New(catalog.Watch(), catalog.Root)
		sync.Load(set)
		resolved, err := sync.Reconcile()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		return writeDump(out, resolved, isTerminal(out))
	}
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// writeDump renders every menu of set, root first, as one table.
func writeDump(w io.Writer, set *menu.Set, styled bool) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if styled {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
		tw.Style().Options = table.OptionsNoBordersAndSeparators
	}
	tw.AppendHeader(table.Row{"Menu", "#", "Type", "Label", "Key / Target", "State"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 2, Align: text.AlignRight},
	})

	for _, name := range dumpOrder(set) {
		entries, err := set.Menus[name].Encode().Decode(name)
		if err != nil {
			return err
		}
		for _, e := range entries {
			tw.AppendRow(table.Row{name, e.Index, e.Kind.String(), e.Label, entryKey(e), entryState(e)})
		}
		tw.AppendSeparator()
	}
	tw.Render()
	return nil
}

func dumpOrder(set *menu.Set) []string {
	names := []string{catalog.Root}
	for _, name := range set.Names() {
		if name != catalog.Root {
			if _, ok := set.Menus[name]; ok {
				names = append(names, name)
			}
		}
	}
	return names
}

func entryKey(e menu.Entry) string {
	if e.Kind == menu.KindCascade {
		return "→ " + e.Target
	}
	return e.Accelerator
}

func entryState(e menu.Entry) string {
	var parts []string
	switch e.Kind {
	case menu.KindCheck, menu.KindRadio:
		parts = append(parts, strconv.FormatBool(e.State))
	case menu.KindABToggle:
		parts = append(parts, string(e.AB))
	}
	if e.Disabled {
		parts = append(parts, "disabled")
	}
	if e.Repost {
		parts = append(parts, "repost")
	}
	return strings.Join(parts, ", ")
}
