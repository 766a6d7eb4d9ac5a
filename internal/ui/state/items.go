package state

import "github.com/atomicstack/mpv-context-menu/internal/menu"

// CloneItems produces a shallow copy of the provided entries.
func CloneItems(items []menu.Entry) []menu.Entry {
	dup := make([]menu.Entry, len(items))
	copy(dup, items)
	return dup
}

// Selectable reports whether the cursor may rest on an entry.
func Selectable(e menu.Entry) bool {
	return e.Kind != menu.KindSeparator && !e.Disabled
}

// secondaryKey is matched when the label alone does not match a query.
func secondaryKey(e menu.Entry) string {
	if e.Kind == menu.KindCascade {
		return e.Target
	}
	return e.Accelerator
}
