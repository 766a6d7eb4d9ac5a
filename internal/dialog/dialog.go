// Package dialog opens kdialog or zenity pickers and loads the result into
// mpv.
package dialog

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/atomicstack/mpv-context-menu/internal/logging/events"
	"github.com/atomicstack/mpv-context-menu/internal/mpv"
	"github.com/atomicstack/mpv-context-menu/internal/notice"
	"github.com/atomicstack/mpv-context-menu/internal/proc"
	"github.com/atomicstack/mpv-context-menu/internal/sandbox"
)

// Kind is what the picker selects.
type Kind string

const (
	KindFile     Kind = "file"
	KindFolder   Kind = "folder"
	KindURL      Kind = "url"
	KindPlaylist Kind = "playlist"
	KindSubtitle Kind = "subtitle"
	KindAudio    Kind = "audio"
)

// Mode is how picked paths reach the playlist.
type Mode string

const (
	ModeAdd    Mode = "add"
	ModeAppend Mode = "append"
	ModeOpen   Mode = "open"
)

// Supported picker preferences.
const (
	PickerKDialog = "kdialog"
	PickerZenity  = "zenity"
)

// NoPreferenceMessage is shown when no picker is configured.
const NoPreferenceMessage = "No dialog preference configured for gui-dialogs"

// Binding names a dialog action the host can trigger.
type Binding struct {
	Name string
	Kind Kind
	Mode Mode
}

// Bindings lists every dialog action in registration order.
var Bindings = []Binding{
	{Name: "add_files_dialog", Kind: KindFile, Mode: ModeAdd},
	{Name: "add_folder_dialog", Kind: KindFolder, Mode: ModeAdd},
	{Name: "append_files_dialog", Kind: KindFile, Mode: ModeAppend},
	{Name: "append_folder_dialog", Kind: KindFolder, Mode: ModeAppend},
	{Name: "add_subtitle_dialog", Kind: KindSubtitle, Mode: ModeAdd},
	{Name: "append_url_dialog", Kind: KindURL, Mode: ModeAppend},
	{Name: "open_url_dialog", Kind: KindURL, Mode: ModeOpen},
	{Name: "open_playlist_dialog", Kind: KindPlaylist, Mode: ModeOpen},
	{Name: "add_audio_dialog", Kind: KindAudio, Mode: ModeAdd},
}

// Config selects and locates the picker programs.
type Config struct {
	Preference string
	KDialog    string
	Zenity     string
	XDotool    string
}

// Launcher runs pickers. Like the transport it blocks the event loop while
// a picker is open.
type Launcher struct {
	host      mpv.Host
	runner    proc.Runner
	cfg       Config
	sandboxed bool
}

// New returns a launcher. Empty program paths use the names on PATH.
func New(host mpv.Host, runner proc.Runner, cfg Config, sandboxed bool) *Launcher {
	if cfg.KDialog == "" {
		cfg.KDialog = "kdialog"
	}
	if cfg.Zenity == "" {
		cfg.Zenity = "zenity"
	}
	if cfg.XDotool == "" {
		cfg.XDotool = "xdotool"
	}
	if runner == nil {
		runner = proc.ExecRunner{}
	}
	return &Launcher{host: host, runner: runner, cfg: cfg, sandboxed: sandboxed}
}

// Launch opens the picker for kind and applies the result according to
// mode. A dismissed picker is not an error.
func (l *Launcher) Launch(ctx context.Context, kind Kind, mode Mode) error {
	pref := l.cfg.Preference
	if pref != PickerKDialog && pref != PickerZenity {
		return notice.New(NoPreferenceMessage)
	}
	dir, file := l.startDir(ctx, pref)

	var args []string
	if pref == PickerKDialog {
		args = KDialogArgs(l.cfg.KDialog, kind, dir, file, l.focus(ctx))
	} else {
		args = ZenityArgs(l.cfg.Zenity, kind, dir)
	}
	events.Dialog.Launch(string(kind), string(mode), pref)

	res := l.runner.Run(ctx, proc.Request{Args: sandbox.Wrap(args, l.sandboxed)})
	if res.Status != 0 {
		events.Dialog.Abort(string(kind), res.Status)
		return nil
	}
	paths := Normalize(res.Stdout)
	events.Dialog.Result(string(kind), len(paths))
	return l.apply(ctx, kind, mode, paths)
}

// focus asks xdotool for the focused window so kdialog can attach to it.
// Failure only loses the attachment.
func (l *Launcher) focus(ctx context.Context) string {
	res := l.runner.Run(ctx, proc.Request{Args: sandbox.Wrap([]string{l.cfg.XDotool, "getwindowfocus"}, l.sandboxed)})
	if res.Status != 0 {
		return ""
	}
	return strings.TrimSpace(res.Stdout)
}

// startDir splits the current file into directory and name. Without a local
// file kdialog starts in "." and zenity in its own default.
func (l *Launcher) startDir(ctx context.Context, pref string) (string, string) {
	fallback := ""
	if pref == PickerKDialog {
		fallback = "."
	}
	path := mpv.String(mpv.PropertyOr(ctx, l.host, "path", nil))
	if path == "" || strings.Contains(path, "://") {
		return fallback, ""
	}
	if !filepath.IsAbs(path) {
		wd := mpv.String(mpv.PropertyOr(ctx, l.host, "working-directory", nil))
		path = filepath.Join(wd, path)
	}
	return filepath.Split(path)
}

// KDialogArgs builds the kdialog command line.
func KDialogArgs(program string, kind Kind, dir, file, focus string) []string {
	args := []string{program}
	if focus != "" {
		args = append(args, "--attach="+focus)
	}
	if kind == KindURL {
		return append(args, "--title=Open URL", "--inputbox=Enter URL:")
	}
	args = append(args, "--icon=mpv", "--separate-output")
	switch kind {
	case KindFile:
		args = append(args, "--multiple", "--title=Select Files", "--getopenfilename", dir+file,
			kdialogFilters(videoFilter, audioFilter, imageFilter, playlistFilter, multimedia()))
	case KindFolder:
		args = append(args, "--multiple", "--title=Select Folders", "--getexistingdirectory")
	case KindPlaylist:
		args = append(args, "--title=Select Playlist", "--getopenfilename", dir, kdialogFilters(playlistFilter))
	case KindSubtitle:
		args = append(args, "--title=Select Subtitle", "--getopenfilename", dir, kdialogFilters(subtitleFilter))
	case KindAudio:
		args = append(args, "--title=Select Audio", "--getopenfilename", dir, kdialogFilters(audioFilter))
	}
	return args
}

// ZenityArgs builds the zenity command line.
func ZenityArgs(program string, kind Kind, dir string) []string {
	args := []string{program}
	if kind == KindURL {
		return append(args, "--entry", "--text=Enter URL:", "--title=Open URL")
	}
	args = append(args, "--file-selection", "--filename="+dir)
	switch kind {
	case KindFile:
		args = append(args, "--multiple", "--title=Select Files")
		args = append(args, zenityFilters(videoFilter, audioFilter, imageFilter, playlistFilter, multimedia())...)
	case KindFolder:
		args = append(args, "--multiple", "--title=Select Folders", "--directory")
	case KindPlaylist:
		args = append(args, "--title=Select Playlist")
		args = append(args, zenityFilters(playlistFilter)...)
	case KindSubtitle:
		args = append(args, "--title=Select Subtitle")
		args = append(args, zenityFilters(subtitleFilter)...)
	case KindAudio:
		args = append(args, "--title=Select Audio")
		args = append(args, zenityFilters(audioFilter)...)
	}
	return args
}

var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// Normalize splits picker output into paths. kdialog separates with
// newlines; zenity output may carry CRLF. Empty entries are dropped.
func Normalize(output string) []string {
	var paths []string
	for _, p := range lineBreak.Split(output, -1) {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func (l *Launcher) apply(ctx context.Context, kind Kind, mode Mode, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	switch mode {
	case ModeAdd:
		for i, p := range paths {
			var err error
			switch kind {
			case KindFile, KindFolder:
				flag := "append"
				if i == 0 {
					flag = "replace"
				}
				err = l.host.Command(ctx, "loadfile", p, flag)
			case KindSubtitle:
				err = l.host.Command(ctx, "sub-add", p, "select")
			case KindAudio:
				err = l.host.Command(ctx, "audio-add", p, "select")
			}
			if err != nil {
				return err
			}
		}
	case ModeAppend:
		if kind != KindFile && kind != KindFolder && kind != KindURL {
			return nil
		}
		empty := mpv.Int(mpv.PropertyOr(ctx, l.host, "playlist-count", 0.0)) == 0
		for i, p := range paths {
			flag := "append"
			if i == 0 && empty {
				flag = "replace"
			}
			if err := l.host.Command(ctx, "loadfile", p, flag); err != nil {
				return err
			}
		}
		switch kind {
		case KindFile:
			return l.host.ShowText(ctx, fmt.Sprintf("Added %d file(s) to playlist", len(paths)), notice.DefaultDuration)
		case KindFolder:
			return l.host.ShowText(ctx, fmt.Sprintf("Added %d folder(s) to playlist", len(paths)), notice.DefaultDuration)
		}
	case ModeOpen:
		if kind != KindURL && kind != KindPlaylist {
			return nil
		}
		for _, p := range paths {
			if err := l.host.Command(ctx, "loadfile", p, "replace"); err != nil {
				return err
			}
		}
	}
	return nil
}
