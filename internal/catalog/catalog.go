// Package catalog defines the menus the controller presents: a small set
// shown before any media is open and the full set built once a file loads.
package catalog

import (
	"context"
	"strconv"

	"github.com/atotto/clipboard"

	"github.com/atomicstack/mpv-context-menu/internal/config"
	"github.com/atomicstack/mpv-context-menu/internal/menu"
	"github.com/atomicstack/mpv-context-menu/internal/mpv"
	"github.com/atomicstack/mpv-context-menu/internal/notice"
	"github.com/atomicstack/mpv-context-menu/internal/state"
)

// Root is the menu every builder opens first.
const Root = "context_menu"

// Options tune the catalog.
type Options struct {
	Steps      config.Steps
	Extensions *Extensions
	// Clipboard receives copied text. Nil uses the system clipboard.
	Clipboard func(string) error
}

// Catalog builds menu sets whose dynamic fields read from host.
type Catalog struct {
	ctx   context.Context
	host  mpv.Host
	steps config.Steps
	ext   *Extensions
	copy  func(string) error
}

// New returns a catalog reading properties from host. ctx bounds every
// property read made while resolving menus.
func New(ctx context.Context, host mpv.Host, opts Options) *Catalog {
	cp := opts.Clipboard
	if cp == nil {
		cp = clipboard.WriteAll
	}
	return &Catalog{
		ctx:   ctx,
		host:  host,
		steps: opts.Steps,
		ext:   opts.Extensions,
		copy:  cp,
	}
}

// NoFile returns the set shown while nothing is loaded.
func (c *Catalog) NoFile() *menu.Set {
	set := menu.NewSet(false)
	set.Add(Root, menu.List(
		menu.Cascade("Open", "open_menu"),
		menu.Separator(),
		menu.Cascade("Window", "window_menu"),
		menu.Separator(),
		menu.Cmd("Dismiss Menu", "", menu.Run("ignore")),
		menu.Cmd("Quit", "", menu.Run("quit")),
	))
	set.Add("open_menu", c.openMenu())
	set.Add("window_menu", c.windowMenu())
	set.Add("staysontop_menu", c.staysOnTopMenu())
	c.applyExtensions(set)
	return set
}

// Loaded returns the full set used once a file is playing.
func (c *Catalog) Loaded() *menu.Set {
	set := menu.NewSet(true)
	set.Add(Root, menu.List(
		menu.Cascade("Open", "open_menu"),
		menu.Separator(),
		menu.Cascade("Play", "play_menu"),
		menu.Cascade("Video", "video_menu"),
		menu.Cascade("Audio", "audio_menu"),
		menu.Cascade("Subtitle", "subtitle_menu"),
		menu.Separator(),
		menu.Cascade("Tools", "tools_menu"),
		menu.Cascade("Window", "window_menu"),
		menu.Separator(),
		menu.Cmd("Dismiss Menu", "", menu.Run("ignore")),
		menu.Cmd("Quit", "", menu.Run("quit")),
	))
	set.Add("open_menu", c.openMenu())
	c.addPlay(set)
	c.addVideo(set)
	c.addAudio(set)
	c.addSubtitle(set)
	c.addTools(set)
	set.Add("window_menu", c.windowMenu())
	set.Add("staysontop_menu", c.staysOnTopMenu())

	set.Generate("edition_menu", c.editionMenu)
	set.Generate("chapter_menu", c.chapterMenu)
	set.Generate("vidtrack_menu", c.vidTrackMenu)
	set.Generate("audtrack_menu", c.audTrackMenu)
	set.Generate("subtrack_menu", c.subTrackMenu)
	set.Generate("channel_layout", c.channelLayoutMenu)
	c.applyExtensions(set)
	return set
}

// Watch lists the properties whose changes invalidate menus. Properties
// mapped to the root only feed computed fields, which a root sweep refreshes.
func Watch() state.WatchList {
	return state.WatchList{
		"vid":             {"vidtrack_menu"},
		"aid":             {"audtrack_menu"},
		"audio-channels":  {"channel_layout"},
		"sid":             {"subtrack_menu"},
		"sub-visibility":  {"subtrack_menu"},
		"track-list":      {"vidtrack_menu", "audtrack_menu", "subtrack_menu", Root},
		"chapter-list":    {"chapter_menu", Root},
		"chapter":         {"chapter_menu"},
		"edition-list":    {"edition_menu", Root},
		"current-edition": {"edition_menu"},

		"video-aspect-override":       {Root},
		"video-rotate":                {Root},
		"video-align-x":               {Root},
		"video-align-y":               {Root},
		"deinterlace":                 {Root},
		"vf":                          {Root},
		"mute":                        {Root},
		"sub-align-y":                 {Root},
		"image-subs-video-resolution": {Root},
		"ab-loop-a":                   {Root},
		"ab-loop-b":                   {Root},
		"loop-file":                   {Root},
		"shuffle":                     {Root},
		"loop-playlist":               {Root},
		"playlist-count":              {Root},
		"ontop":                       {Root},
		"border":                      {Root},
	}
}

func (c *Catalog) prop(name string) interface{} {
	return mpv.PropertyOr(c.ctx, c.host, name, nil)
}

func (c *Catalog) osd(text string) {
	_ = c.host.ShowText(c.ctx, text, notice.DefaultDuration)
}

// num formats a step the way mpv prints numbers.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
