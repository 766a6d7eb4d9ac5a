package ui

import (
	"testing"

	"github.com/atomicstack/mpv-context-menu/internal/menu"
	"github.com/atomicstack/mpv-context-menu/internal/transport"
)

func testMenus() map[string]menu.Menu {
	return map[string]menu.Menu{
		"context_menu": menu.List(
			menu.Cmd("Play - Pause", "Space", menu.Run("cycle pause")),
			menu.Separator(),
			menu.Cascade("Speed", "speed_menu"),
			menu.Cascade("Window", "window_menu"),
			menu.Check("Mute", "M", menu.Run("cycle mute"), menu.Bool(true)),
			menu.Cmd("Quit", "Q", menu.Run("quit")).Disable(),
		),
		"speed_menu": menu.List(
			menu.Cmd("Reset", "Backspace", menu.Run("set speed 1.0")).Reposting(),
			menu.Separator(),
			menu.Radio("1.0x", "", menu.Run("set speed 1"), menu.Bool(true)),
			menu.Radio("2.0x", "", menu.Run("set speed 2"), menu.Bool(false)),
		),
		"window_menu": menu.List(
			menu.Cascade("Stays on Top", "staysontop_menu"),
			menu.ABToggle("A-B Loop", "L", menu.Run("ab-loop"), menu.Static(menu.ABA)),
		),
		"staysontop_menu": menu.List(
			menu.Radio("Off", "", menu.Run(`set ontop "no"`), menu.Bool(true)),
			menu.Radio("Always", "", menu.Run(`set ontop "yes"`), menu.Bool(false)),
		),
	}
}

func testEnvelope() transport.Envelope {
	env := transport.Envelope{
		X:         "100",
		Y:         "200",
		Menu:      make(map[string]menu.WireMenu),
		MenuName:  "context_menu",
		MenuLimit: transport.DefaultLimit,
	}
	for name, m := range testMenus() {
		env.Menu[name] = m.Encode()
	}
	return env
}

func newTestModel(t *testing.T, env transport.Envelope, opts Options) *Model {
	t.Helper()
	m, err := NewModel(env, opts)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}
