package state

// firstSelectable returns the first position at or after from (searching in
// direction step) whose entry accepts the cursor, or -1.
func (l *Level) firstSelectable(from, step int) int {
	for i := from; i >= 0 && i < len(l.Items); i += step {
		if Selectable(l.Items[i]) {
			return i
		}
	}
	return -1
}

// settleCursor moves the cursor off separators and disabled entries,
// preferring the next entry down and then the nearest one above.
func (l *Level) settleCursor() {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if idx := l.firstSelectable(l.Cursor, 1); idx >= 0 {
		l.Cursor = idx
		return
	}
	if idx := l.firstSelectable(l.Cursor, -1); idx >= 0 {
		l.Cursor = idx
	}
}

// HasSelectable reports whether any visible entry accepts the cursor.
func (l *Level) HasSelectable() bool {
	return l.firstSelectable(0, 1) >= 0
}

// MoveCursorUp steps to the previous selectable entry, wrapping at the top.
func (l *Level) MoveCursorUp() bool {
	return l.step(-1)
}

// MoveCursorDown steps to the next selectable entry, wrapping at the bottom.
func (l *Level) MoveCursorDown() bool {
	return l.step(1)
}

func (l *Level) step(dir int) bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	old := l.Cursor
	pos := l.Cursor
	for i := 0; i < n; i++ {
		pos = (pos + dir + n) % n
		if Selectable(l.Items[pos]) {
			l.Cursor = pos
			return l.Cursor != old
		}
	}
	return false
}

// MoveCursorHome moves the cursor to the first selectable entry.
func (l *Level) MoveCursorHome() bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if idx := l.firstSelectable(0, 1); idx >= 0 {
		l.Cursor = idx
	}
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last selectable entry.
func (l *Level) MoveCursorEnd() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if idx := l.firstSelectable(n-1, -1); idx >= 0 {
		l.Cursor = idx
	}
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *Level) moveCursorBy(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	target := l.Cursor + delta
	if target < 0 {
		target = 0
	}
	if target >= len(l.Items) {
		target = len(l.Items) - 1
	}
	dir := 1
	if delta < 0 {
		dir = -1
	}
	// land on a selectable entry, looking further in the direction of travel
	// first and falling back toward the old position
	if idx := l.firstSelectable(target, dir); idx >= 0 {
		l.Cursor = idx
	} else if idx := l.firstSelectable(target, -dir); idx >= 0 {
		l.Cursor = idx
	}
	return l.Cursor != old
}

func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Items)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	upper := l.ViewportOffset + maxVisible - 1
	if l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}
