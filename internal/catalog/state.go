package catalog

import (
	"math"

	"github.com/atomicstack/mpv-context-menu/internal/menu"
	"github.com/atomicstack/mpv-context-menu/internal/mpv"
)

type aspectRatio struct {
	label string
	value string
	ratio float64
}

var aspectRatios = []aspectRatio{
	{"4:3 (TV)", "4:3", 4.0 / 3},
	{"16:10 (Wide Monitor)", "16:10", 16.0 / 10},
	{"16:9 (HDTV)", "16:9", 16.0 / 9},
	{"1.85:1 (Wide Vision)", "1.85:1", 1.85},
	{"2.35:1 (CinemaScope)", "2.35:1", 2.35},
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func (c *Catalog) boolProp(name string) bool {
	return mpv.Bool(c.prop(name))
}

func (c *Catalog) stringProp(name string) string {
	return mpv.String(c.prop(name))
}

func (c *Catalog) stringIs(name, want string) bool {
	return c.stringProp(name) == want
}

func (c *Catalog) intProp(name string, def int) int {
	v := c.prop(name)
	if v == nil {
		return def
	}
	return mpv.Int(v)
}

func (c *Catalog) floatIs(name string, want float64) bool {
	v := c.prop(name)
	if v == nil {
		return false
	}
	return mpv.Float(v) == want
}

func (c *Catalog) aspectIs(ratio float64) bool {
	v := c.prop("video-aspect-override")
	if v == nil {
		return false
	}
	return round3(mpv.Float(v)) == round3(ratio)
}

func (c *Catalog) frameless() bool {
	return !c.boolProp("border")
}

func (c *Catalog) onTop() bool {
	return c.boolProp("ontop")
}

func (c *Catalog) muted() bool {
	return c.boolProp("mute")
}

func (c *Catalog) fileLoop() bool {
	return c.stringIs("loop-file", "inf")
}

func (c *Catalog) playlistLoop() bool {
	switch c.stringProp("loop-playlist") {
	case "", "no", "false":
		return false
	}
	return true
}

// abLoop maps the loop points to the three-step cycle. A point is unset when
// mpv reports "no".
func (c *Catalog) abLoop() menu.ABState {
	a := c.stringProp("ab-loop-a")
	b := c.stringProp("ab-loop-b")
	switch {
	case a == "no" && b == "no":
		return menu.ABOff
	case a != "no" && b == "no":
		return menu.ABA
	case a != "no" && b != "no":
		return menu.ABB
	}
	return menu.ABOff
}

// filterEnabled reports whether a video filter with the given name is active.
func (c *Catalog) filterEnabled(name string) bool {
	for _, entry := range mpv.List(c.prop("vf")) {
		f := mpv.Map(entry)
		if f == nil {
			continue
		}
		if mpv.String(f["name"]) == name && mpv.Bool(f["enabled"]) {
			return true
		}
	}
	return false
}

// trackOff reports whether a track selector (vid, aid, sid) is disabled.
func (c *Catalog) trackOff(name string) bool {
	switch v := c.prop(name).(type) {
	case bool:
		return !v
	case string:
		return v == "no"
	}
	return false
}

func (c *Catalog) noEditions() bool {
	return len(mpv.List(c.prop("edition-list"))) < 1
}

func (c *Catalog) noChapters() bool {
	return len(mpv.List(c.prop("chapter-list"))) < 1
}
