package catalog

import (
	"strconv"

	"github.com/atomicstack/mpv-context-menu/internal/logging"
)

// movePlaylist shifts the current entry one step. mpv's playlist-move places
// the entry before the target index, so moving down skips two slots.
func (c *Catalog) movePlaylist(step int) {
	pos := c.intProp("playlist-pos", -1)
	last := c.intProp("playlist-count", 0) - 1
	if pos < 0 {
		return
	}
	var target int
	switch {
	case step < 0:
		if pos == 0 {
			c.osd("Can't move item up any further")
			return
		}
		target = pos - 1
	default:
		if pos >= last {
			c.osd("Can't move item down any further")
			return
		}
		target = pos + 2
	}
	if err := c.host.Command(c.ctx, "playlist-move", strconv.Itoa(pos), strconv.Itoa(target)); err != nil {
		logging.Error(err)
	}
}

func (c *Catalog) copyPath() {
	path := c.stringProp("path")
	if path == "" {
		c.osd("No file path to copy")
		return
	}
	if err := c.copy(path); err != nil {
		logging.Error(err)
		c.osd("Copy failed: " + err.Error())
		return
	}
	c.osd("Copied: " + path)
}
