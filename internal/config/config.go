// Package config loads runtime configuration: built-in defaults, then the
// TOML file, then MPV_CONTEXT_MENU_* environment variables, then command-line
// flags the user actually set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// IPC locates mpv's JSON IPC socket.
type IPC struct {
	Socket string `toml:"socket"`
}

// Logging controls the shared log file.
type Logging struct {
	File  string `toml:"file"`
	Trace bool   `toml:"trace"`
}

// Menu holds presentation settings.
type Menu struct {
	FontFace string `toml:"font_face"`
	FontSize string `toml:"font_size"`
	Limit    int    `toml:"limit"`
	// Builder is the kind used by the "menu" key binding.
	Builder   string `toml:"builder"`
	ScriptDir string `toml:"script_dir"`
	// Extensions is an optional YAML file adding menu items.
	Extensions string `toml:"extensions"`
}

// Steps are the increments shown and used by adjustment items.
type Steps struct {
	PlaySpeed  float64 `toml:"play_speed"`
	SeekSmall  float64 `toml:"seek_small"`
	SeekMedium float64 `toml:"seek_medium"`
	SeekLarge  float64 `toml:"seek_large"`
	VidAspect  float64 `toml:"vid_aspect"`
	VidZoom    float64 `toml:"vid_zoom"`
	VidPos     float64 `toml:"vid_pos"`
	VidColor   float64 `toml:"vid_color"`
	AudSync    float64 `toml:"aud_sync"`
	AudVol     float64 `toml:"aud_vol"`
	SubPos     float64 `toml:"sub_pos"`
	SubScale   float64 `toml:"sub_scale"`
	SubSync    float64 `toml:"sub_sync"`
}

// Dialogs selects the file picker.
type Dialogs struct {
	Preference string `toml:"preference"`
	KDialog    string `toml:"kdialog"`
	Zenity     string `toml:"zenity"`
	XDotool    string `toml:"xdotool"`
}

// Keys binds mpv keys to controller actions. Empty values bind nothing.
type Keys struct {
	AddFiles     string `toml:"add_files"`
	AddFolder    string `toml:"add_folder"`
	AppendFiles  string `toml:"append_files"`
	AppendFolder string `toml:"append_folder"`
	AddSubtitle  string `toml:"add_subtitle"`
	AddURL       string `toml:"add_url"`
	OpenURL      string `toml:"open_url"`
	OpenPlaylist string `toml:"open_playlist"`
	AddAudio     string `toml:"add_audio"`
	Menu         string `toml:"menu"`
}

// Builder configures one menu builder kind. Unset fields take the built-in
// value for known kinds.
type Builder struct {
	Interpreter     string `toml:"interpreter"`
	Script          string `toml:"script"`
	Repost          *bool  `toml:"repost"`
	SelfPositioning *bool  `toml:"self_positioning"`
}

// Config captures runtime configuration for the application.
type Config struct {
	IPC      IPC                `toml:"ipc"`
	Logging  Logging            `toml:"logging"`
	Menu     Menu               `toml:"menu"`
	Steps    Steps              `toml:"steps"`
	Dialogs  Dialogs            `toml:"dialogs"`
	Keys     Keys               `toml:"keys"`
	Builders map[string]Builder `toml:"builders"`

	// Path is the file that was read, or would have been.
	Path string `toml:"-"`
	// FileFound reports whether Path existed.
	FileFound bool `toml:"-"`
	// Flags records explicitly set flags for the startup trace.
	Flags map[string]string `toml:"-"`
	Args  []string          `toml:"-"`
}

// Load builds configuration from defaults, the TOML file at path (or the
// default location when empty) and environ.
func Load(path string, environ []string) (Config, error) {
	env := parseEnv(environ)
	cfg := Default()

	if path == "" {
		path = envOrDefault(env, envConfig, "")
	}
	resolved, err := resolvePath(path, env)
	if err != nil {
		return Config{}, err
	}
	cfg.Path = resolved

	data, err := os.ReadFile(resolved)
	switch {
	case err == nil:
		cfg.FileFound = true
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv(env)
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/mpv-context-menu/config.toml.
func DefaultPath(environ []string) (string, error) {
	return resolvePath("", parseEnv(environ))
}

func resolvePath(path string, env map[string]string) (string, error) {
	if strings.TrimSpace(path) != "" {
		return expandPath(path)
	}
	if base := strings.TrimSpace(env["XDG_CONFIG_HOME"]); base != "" {
		return filepath.Join(base, "mpv-context-menu", "config.toml"), nil
	}
	return expandPath("~/.config/mpv-context-menu/config.toml")
}

// BuilderKinds lists configured builder kinds, sorted.
func (c Config) BuilderKinds() []string {
	kinds := make([]string, 0, len(c.Builders))
	for kind := range c.Builders {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Bool dereferences an optional flag.
func Bool(b *bool) bool {
	return b != nil && *b
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && pathValue[1] == '/' {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
