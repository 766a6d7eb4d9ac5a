package state

import "github.com/atomicstack/mpv-context-menu/internal/menu"

// Level encapsulates one open menu: its entries, cursor, filter, and viewport.
type Level struct {
	// ID is the menu name from the envelope.
	ID             string
	Title          string
	Items          []menu.Entry
	Full           []menu.Entry
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level with the cursor on the first selectable entry.
func NewLevel(id, title string, items []menu.Entry) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		Cursor:     -1,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the display position of the entry at the given 1-based
// menu index, or -1 when it is filtered out.
func (l *Level) IndexOf(index int) int {
	for i, item := range l.Items {
		if item.Index == index {
			return i
		}
	}
	return -1
}

// IndexOfTarget returns the display position of the cascade opening target.
func (l *Level) IndexOfTarget(target string) int {
	if target == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.Kind == menu.KindCascade && item.Target == target {
			return i
		}
	}
	return -1
}

// Current returns the entry under the cursor.
func (l *Level) Current() (menu.Entry, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Entry{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems refreshes the level entries, keeping the viewport if possible.
func (l *Level) UpdateItems(items []menu.Entry) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
