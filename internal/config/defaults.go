package config

const (
	defaultSocket    = "/tmp/mpvsocket"
	defaultScriptDir = "~/.config/mpv/scripts/mpvcontextmenu"
	defaultBuilder   = "tk"
	defaultLimit     = 10
)

func boolPtr(b bool) *bool {
	return &b
}

// builtinBuilders are the kinds the controller knows how to run. "tui" is
// this program's own builder subcommand; its interpreter is resolved to the
// running executable.
func builtinBuilders() map[string]Builder {
	return map[string]Builder{
		"tk": {
			Interpreter:     "wish",
			Script:          "menu-builder-tk.tcl",
			Repost:          boolPtr(true),
			SelfPositioning: boolPtr(true),
		},
		"gtk": {
			Interpreter:     "gjs",
			Script:          "menu-builder-gtk.js",
			Repost:          boolPtr(false),
			SelfPositioning: boolPtr(false),
		},
		"tui": {
			Script:          "builder",
			Repost:          boolPtr(true),
			SelfPositioning: boolPtr(true),
		},
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		IPC: IPC{Socket: defaultSocket},
		Menu: Menu{
			FontFace:  "Source Code Pro",
			FontSize:  "9",
			Limit:     defaultLimit,
			Builder:   defaultBuilder,
			ScriptDir: defaultScriptDir,
		},
		Steps: Steps{
			PlaySpeed:  5,
			SeekSmall:  5,
			SeekMedium: 30,
			SeekLarge:  60,
			VidAspect:  0.1,
			VidZoom:    0.1,
			VidPos:     0.1,
			VidColor:   1,
			AudSync:    100,
			AudVol:     2,
			SubPos:     1,
			SubScale:   1,
			SubSync:    100,
		},
		Keys: Keys{
			AddFiles:     "Ctrl+f",
			AddFolder:    "Ctrl+g",
			AppendFiles:  "Ctrl+Shift+f",
			AppendFolder: "Ctrl+Shift+g",
			AddSubtitle:  "F",
			Menu:         "MBTN_RIGHT",
		},
		Builders: builtinBuilders(),
	}
}
