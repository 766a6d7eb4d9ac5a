package main

import (
	"os"
	"os/exec"
	"sort"

	"golang.org/x/term"

	"github.com/atomicstack/mpv-context-menu/internal/config"
	"github.com/atomicstack/mpv-context-menu/internal/logging"
	"github.com/atomicstack/mpv-context-menu/internal/logging/events"
	"github.com/atomicstack/mpv-context-menu/internal/sandbox"
)

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg, os.Environ()))
}

// startupTracePayload bundles what a failed menu launch usually depends on:
// the socket, the builder interpreters and whether a terminal is attached.
func startupTracePayload(cfg config.Config, environ []string) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.File
	payload := map[string]interface{}{
		"argv":       cfg.Args,
		"flags":      flags,
		"config":     cfg,
		"configFile": cfg.Path,
		"configRead": cfg.FileFound,
		"logPath":    logging.Path(),
		"sandboxed":  sandbox.Check(environ),
		"socket":     inspectSocket(cfg.IPC.Socket),
		"builders":   inspectBuilders(cfg.Builders),
		"terminal":   inspectTerminal(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	return payload
}

type socketStatus struct {
	Path     string `json:"path"`
	Exists   bool   `json:"exists"`
	IsSocket bool   `json:"is_socket"`
	Error    string `json:"error,omitempty"`
}

// inspectSocket reports the socket's state without connecting. mpv may not
// have created it yet.
func inspectSocket(path string) socketStatus {
	st := socketStatus{Path: path}
	if path == "" {
		return st
	}
	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			st.Error = err.Error()
		}
		return st
	}
	st.Exists = true
	st.IsSocket = info.Mode()&os.ModeSocket != 0
	return st
}

type builderStatus struct {
	Kind        string `json:"kind"`
	Interpreter string `json:"interpreter"`
	Resolved    string `json:"resolved,omitempty"`
	Error       string `json:"error,omitempty"`
}

// inspectBuilders resolves each builder's interpreter on PATH, sorted by kind.
func inspectBuilders(builders map[string]config.Builder) []builderStatus {
	kinds := make([]string, 0, len(builders))
	for kind := range builders {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	out := make([]builderStatus, 0, len(kinds))
	for _, kind := range kinds {
		b := builders[kind]
		st := builderStatus{Kind: kind, Interpreter: b.Interpreter}
		if b.Interpreter != "" {
			if path, err := exec.LookPath(b.Interpreter); err == nil {
				st.Resolved = path
			} else {
				st.Error = err.Error()
			}
		}
		out = append(out, st)
	}
	return out
}

type terminalStatus struct {
	Stdin  bool   `json:"stdin"`
	Stdout bool   `json:"stdout"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

// inspectTerminal checks whether the controller was started from a terminal.
// mpv normally launches it detached, so both flags are usually false.
func inspectTerminal() terminalStatus {
	var st terminalStatus
	st.Stdin = term.IsTerminal(int(os.Stdin.Fd()))
	st.Stdout = term.IsTerminal(int(os.Stdout.Fd()))
	if st.Stdout {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			st.Width, st.Height = w, h
		} else {
			st.Error = err.Error()
		}
	}
	return st
}
