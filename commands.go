package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/atomicstack/mpv-context-menu/internal/app"
	"github.com/atomicstack/mpv-context-menu/internal/config"
	"github.com/atomicstack/mpv-context-menu/internal/logging"
	"github.com/atomicstack/mpv-context-menu/internal/transport"
	"github.com/atomicstack/mpv-context-menu/internal/ui"
)

var version = "dev"

// loadConfig reads the configuration, applies flags the user set and
// configures logging.
func loadConfig(cmd *cobra.Command, path string, overrides *config.Overrides) (config.Config, error) {
	cfg, err := config.Load(path, os.Environ())
	if err != nil {
		return config.Config{}, err
	}
	if err := overrides.Apply(cmd.Flags(), &cfg); err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("configuration error: %w", err)
	}
	cfg.Args = os.Args[1:]
	logging.Configure(cfg.Logging.File)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	run := newRunCmd()
	root := &cobra.Command{
		Use:           "mpv-context-menu",
		Short:         "Context menus for mpv driven over its IPC socket",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run.RunE,
	}
	root.Flags().AddFlagSet(run.Flags())
	root.AddCommand(run, newBuilderCmd(), newDumpCmd(), newVersionCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Attach to mpv and serve menus until it exits",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the TOML configuration file")
	overrides := config.BindFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd, configPath, overrides)
		if err != nil {
			return err
		}
		if err := os.Setenv(logging.RunIDEnv, logging.RunID()); err != nil {
			logging.Error(err)
		}
		traceStartup(cfg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := app.Run(ctx, cfg); err != nil {
			logging.Error(err)
			return err
		}
		return nil
	}
	return cmd
}

func newBuilderCmd() *cobra.Command {
	var opts ui.Options
	cmd := &cobra.Command{
		Use:    "builder <envelope>",
		Short:  "Show a menu envelope on the terminal and print the selection",
		Args:   cobra.ExactArgs(1),
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.SetRunID(os.Getenv(logging.RunIDEnv))
			logging.SetRole(logging.RoleBuilder)
			if _, ok := os.LookupEnv("NO_COLOR"); ok {
				opts.Monochrome = true
			}
			return runBuilder(cmd.OutOrStdout(), args[0], opts, ui.Run)
		},
	}
	cmd.Flags().IntVar(&opts.Width, "width", 0, "fixed menu width (0 follows the terminal)")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "fixed menu height (0 follows the terminal)")
	cmd.Flags().BoolVar(&opts.ShowFooter, "footer", false, "show the key hint footer")
	cmd.Flags().BoolVar(&opts.Monochrome, "no-color", false, "render without colours (also set by NO_COLOR)")
	return cmd
}

type presentFunc func(transport.Envelope, ui.Options) (transport.Selection, error)

// runBuilder decodes payload, presents it and writes the selection line. A
// failure after decoding is reported to the controller through the
// selection's error value so it reaches the user.
func runBuilder(w io.Writer, payload string, opts ui.Options, present presentFunc) error {
	env, err := transport.DecodeEnvelope([]byte(payload))
	if err != nil {
		logging.Error(err)
		return err
	}
	sel, err := present(env, opts)
	if err != nil {
		logging.Error(err)
		sel = transport.Selection{
			X:          transport.Unset,
			Y:          transport.Unset,
			MenuName:   env.MenuName,
			Index:      transport.Unset,
			ErrorValue: err.Error(),
		}
	}
	line, err := transport.MarshalSelection(sel)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(line))
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mpv-context-menu %s\n", version)
		},
	}
}
