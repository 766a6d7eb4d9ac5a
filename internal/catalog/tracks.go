package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/atomicstack/mpv-context-menu/internal/menu"
	"github.com/atomicstack/mpv-context-menu/internal/mpv"
)

// track is one entry of mpv's track-list.
type track struct {
	ID       int
	Type     string
	Title    string
	Lang     string
	Selected bool
}

func (c *Catalog) tracks(kind string) []track {
	var out []track
	for _, entry := range mpv.List(c.prop("track-list")) {
		t := mpv.Map(entry)
		if t == nil || mpv.String(t["type"]) != kind {
			continue
		}
		out = append(out, track{
			ID:       mpv.Int(t["id"]),
			Type:     kind,
			Title:    mpv.String(t["title"]),
			Lang:     mpv.String(t["lang"]),
			Selected: mpv.Bool(t["selected"]),
		})
	}
	return out
}

// LanguageName returns the English name for an ISO 639-1 or 639-2 code, or
// the code itself when it is not recognised.
func LanguageName(code string) string {
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	base, conf := tag.Base()
	if conf == language.No || base.String() == "und" {
		return code
	}
	if name := display.English.Languages().Name(base); name != "" {
		return name
	}
	return code
}

// trackLabel prefers "title (language)", then the language, then a numbered
// fallback.
func trackLabel(t track, fallback string, n int) string {
	lang := LanguageName(t.Lang)
	switch {
	case t.Title != "" && lang != "":
		return fmt.Sprintf("%s (%s)", t.Title, lang)
	case t.Title != "":
		return t.Title
	case lang != "":
		return lang
	}
	return fmt.Sprintf("%s %d", fallback, n)
}

func (c *Catalog) editionMenu() menu.Menu {
	editions := mpv.List(c.prop("edition-list"))
	if len(editions) == 0 {
		return menu.List(menu.Cmd("No Editions", "", menu.Command{}).Disable())
	}
	current := c.intProp("current-edition", -1)
	m := make(menu.Menu, len(editions))
	for i, entry := range editions {
		title := mpv.String(mpv.Map(entry)["title"])
		if title == "" {
			title = fmt.Sprintf("Edition %d", i+1)
		}
		m.Append(menu.Radio(title, "", menu.Run(fmt.Sprintf("set edition %d", i)), menu.Bool(i == current)).Reposting())
	}
	return m
}

func (c *Catalog) chapterMenu() menu.Menu {
	m := menu.List(
		menu.Cmd("Previous", "PgUp", menu.Run("no-osd add chapter -1")).Reposting(),
		menu.Cmd("Next", "PgDown", menu.Run("no-osd add chapter 1")).Reposting(),
		menu.Separator(),
	)
	chapters := mpv.List(c.prop("chapter-list"))
	current := c.intProp("chapter", -1)
	for i, entry := range chapters {
		title := mpv.String(mpv.Map(entry)["title"])
		if title == "" {
			title = fmt.Sprintf("Chapter %d", i+1)
		}
		m.Append(menu.Radio(title, "", menu.Run(fmt.Sprintf("set chapter %d", i)), menu.Bool(i == current)).Reposting())
	}
	return m
}

func (c *Catalog) vidTrackMenu() menu.Menu {
	tracks := c.tracks("video")
	if len(tracks) == 0 {
		return menu.List(menu.Radio("No Video Tracks", "", menu.Command{}, menu.Bool(false)).Disable())
	}
	m := make(menu.Menu, len(tracks))
	for i, t := range tracks {
		title := t.Title
		if title == "" {
			title = fmt.Sprintf("Video Track %d", i+1)
		}
		m.Append(menu.Radio(title, "", menu.Run(fmt.Sprintf("set vid %d", t.ID)), menu.Bool(t.Selected)).Reposting())
	}
	return m
}

func (c *Catalog) audTrackMenu() menu.Menu {
	m := menu.List(
		menu.Cmd("Open File", "", menu.Run("script-binding add_audio_dialog")),
		menu.Cmd("Reload File", "", menu.Run("audio-reload")),
		menu.Cmd("Remove", "", menu.Run("audio-remove")),
		menu.Separator(),
		menu.Cmd("Select Next", "Ctrl+A", menu.Run("cycle audio")).Reposting(),
	)
	c.appendTracks(m, "audio", "aid", "Audio Track")
	return m
}

func (c *Catalog) subTrackMenu() menu.Menu {
	visible := c.boolProp("sub-visibility")
	label := "Un-hide"
	if visible {
		label = "Hide"
	}
	m := menu.List(
		menu.Cmd("Open File", "(Shift+F)", menu.Run("script-binding add_subtitle_dialog")),
		menu.Cmd("Reload File", "", menu.Run("sub-reload")),
		menu.Cmd("Clear File", "", menu.Run("sub-remove")),
		menu.Separator(),
		menu.Cmd("Select Next", "Shift+N", menu.Run("cycle sub")).Reposting(),
		menu.Cmd("Select Previous", "Ctrl+Shift+N", menu.Run("cycle sub down")).Reposting(),
		menu.Check(label, "V", menu.Run("cycle sub-visibility"), menu.Bool(!visible)).Reposting(),
	)
	c.appendTracks(m, "sub", "sid", "Subtitle Track")
	return m
}

// appendTracks adds a "Select None" entry and one radio per track of kind.
func (c *Catalog) appendTracks(m menu.Menu, kind, selector, fallback string) {
	tracks := c.tracks(kind)
	if len(tracks) == 0 {
		return
	}
	m.Append(
		menu.Separator(),
		menu.Radio("Select None", "", menu.Run("set "+selector+" 0"), menu.Bool(c.trackOff(selector))).Reposting(),
		menu.Separator(),
	)
	for i, t := range tracks {
		m.Append(menu.Radio(trackLabel(t, fallback, i+1), "", menu.Run(fmt.Sprintf("set %s %d", selector, t.ID)), menu.Bool(t.Selected)).Reposting())
	}
}

// channelLayouts follows "mpv --audio-channels=help" with friendlier names.
var channelLayouts = []struct{ label, value string }{
	{"Auto", "auto"},
	{"Auto (Safe)", "auto-safe"},
	{"Empty", "empty"},
	{"Mono", "mono"},
	{"Stereo", "stereo"},
	{"2.1ch", "2.1"},
	{"3.0ch", "3.0"},
	{"3.0ch (Back)", "3.0(back)"},
	{"3.1ch", "3.1"},
	{"3.1ch (Back)", "3.1(back)"},
	{"4.0ch", "quad"},
	{"4.0ch (Side)", "quad(side)"},
	{"4.0ch (Diamond)", "4.0"},
	{"4.1ch", "4.1(alsa)"},
	{"4.1ch (Diamond)", "4.1"},
	{"5.0ch", "5.0(alsa)"},
	{"5.0ch (Alt.)", "5.0"},
	{"5.0ch (Side)", "5.0(side)"},
	{"5.1ch", "5.1(alsa)"},
	{"5.1ch (Alt.)", "5.1"},
	{"5.1ch (Side)", "5.1(side)"},
	{"6.0ch", "6.0"},
	{"6.0ch (Front)", "6.0(front)"},
	{"6.0ch (Hexagonal)", "hexagonal"},
	{"6.1ch", "6.1"},
	{"6.1ch (Top)", "6.1(top)"},
	{"6.1ch (Back)", "6.1(back)"},
	{"6.1ch (Front)", "6.1(front)"},
	{"7.0ch", "7.0"},
	{"7.0ch (Back)", "7.0(rear)"},
	{"7.0ch (Front)", "7.0(front)"},
	{"7.1ch", "7.1(alsa)"},
	{"7.1ch (Alt.)", "7.1"},
	{"7.1ch (Wide)", "7.1(wide)"},
	{"7.1ch (Side)", "7.1(wide-side)"},
	{"7.1ch (Back)", "7.1(rear)"},
	{"8.0ch (Octagonal)", "octagonal"},
}

func (c *Catalog) channelLayoutMenu() menu.Menu {
	current := strings.TrimSpace(c.stringProp("audio-channels"))
	m := make(menu.Menu, len(channelLayouts)+1)
	for i, l := range channelLayouts {
		if i == 2 {
			m.Append(menu.Separator())
		}
		m.Append(menu.Radio(l.label, "", menu.Run(`set audio-channels "`+l.value+`"`), menu.Bool(l.value == current)).Reposting())
	}
	return m
}
