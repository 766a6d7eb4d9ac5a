package config

import (
	"strconv"

	"github.com/spf13/pflag"
)

// Overrides holds command-line values. Only flags the user set are applied.
type Overrides struct {
	Socket  string
	LogFile string
	Trace   bool
	Builder string
	Dialog  string
	Limit   int
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) *Overrides {
	o := &Overrides{}
	fs.StringVar(&o.Socket, "socket", "", "path to mpv's --input-ipc-server socket")
	fs.StringVar(&o.LogFile, "log-file", "", "path to the log file")
	fs.BoolVar(&o.Trace, "trace", false, "enable verbose JSON trace logging")
	fs.StringVar(&o.Builder, "builder", "", "menu builder used by the menu key binding (tk, gtk, tui)")
	fs.StringVar(&o.Dialog, "dialog", "", "file picker preference (kdialog or zenity)")
	fs.IntVar(&o.Limit, "menu-limit", 0, "maximum cascade depth")
	return o
}

// Apply copies set flags into cfg and records them in cfg.Flags.
func (o *Overrides) Apply(fs *pflag.FlagSet, cfg *Config) error {
	if cfg.Flags == nil {
		cfg.Flags = make(map[string]string)
	}
	var err error
	if fs.Changed("socket") {
		if cfg.IPC.Socket, err = expandPath(o.Socket); err != nil {
			return err
		}
		cfg.Flags["socket"] = cfg.IPC.Socket
	}
	if fs.Changed("log-file") {
		if cfg.Logging.File, err = expandPath(o.LogFile); err != nil {
			return err
		}
		cfg.Flags["logFile"] = cfg.Logging.File
	}
	if fs.Changed("trace") {
		cfg.Logging.Trace = o.Trace
		cfg.Flags["trace"] = strconv.FormatBool(o.Trace)
	}
	if fs.Changed("builder") {
		cfg.Menu.Builder = o.Builder
		cfg.Flags["builder"] = o.Builder
	}
	if fs.Changed("dialog") {
		cfg.Dialogs.Preference = o.Dialog
		cfg.Flags["dialog"] = o.Dialog
	}
	if fs.Changed("menu-limit") {
		cfg.Menu.Limit = o.Limit
		cfg.Flags["menuLimit"] = strconv.Itoa(o.Limit)
	}
	return nil
}
