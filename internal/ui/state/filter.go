package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/mpv-context-menu/internal/menu"
)

// Match tiers, best first. Fuzzy label matches rank after every literal one.
const (
	tierExact = iota
	tierLabelPrefix
	tierKeyPrefix
	tierLabelContains
	tierKeyContains
	tierFuzzy
	noMatch = -1
)

// matchTier ranks e against a lower-cased, trimmed query.
func matchTier(e menu.Entry, query string) (tier, distance int) {
	if e.Kind == menu.KindSeparator {
		return noMatch, 0
	}
	label := strings.ToLower(e.Label)
	key := strings.ToLower(secondaryKey(e))
	switch {
	case label == query || (key != "" && key == query):
		return tierExact, 0
	case strings.HasPrefix(label, query):
		return tierLabelPrefix, 0
	case key != "" && strings.HasPrefix(key, query):
		return tierKeyPrefix, 0
	case strings.Contains(label, query):
		return tierLabelContains, 0
	case key != "" && strings.Contains(key, query):
		return tierKeyContains, 0
	}
	if d := fuzzy.RankMatchNormalizedFold(query, e.Label); d >= 0 {
		return tierFuzzy, d
	}
	return noMatch, 0
}

// SetFilter replaces the query and places the filter cursor at cursor. The
// menu cursor jumps to the best match, and returns to where it was once the
// query is cleared.
func (l *Level) SetFilter(query string, cursor int) {
	was := strings.TrimSpace(l.Filter) != ""
	now := strings.TrimSpace(query) != ""
	l.Filter = query
	l.FilterCursor = max(0, min(cursor, len([]rune(query))))

	switch {
	case now:
		if !was {
			l.LastCursor = l.Cursor
		}
		l.applyFilter()
		l.Cursor = max(0, BestMatchIndex(l.Items, query))
	case was:
		l.applyFilter()
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		} else {
			l.Cursor = 0
		}
		l.settleCursor()
		l.LastCursor = -1
	default:
		l.applyFilter()
	}
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.settleCursor()
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (l *Level) FilterCursorPos() int {
	return max(0, min(l.FilterCursor, len([]rune(l.Filter))))
}

// InsertFilterText inserts text at the filter cursor.
func (l *Level) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the filter cursor.
func (l *Level) DeleteFilterRuneBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	runes := []rune(l.Filter)
	l.SetFilter(string(append(runes[:pos-1], runes[pos:]...)), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word before the filter cursor along
// with any spaces after it.
func (l *Level) DeleteFilterWordBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	runes := []rune(l.Filter)
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	l.SetFilter(string(append(runes[:i], runes[pos:]...)), i)
	return true
}

// MoveFilterCursor moves the filter cursor by delta runes, reporting whether
// it moved.
func (l *Level) MoveFilterCursor(delta int) bool {
	before := l.FilterCursorPos()
	l.FilterCursor = max(0, min(before+delta, len([]rune(l.Filter))))
	return l.FilterCursor != before
}

// FilterItems returns the entries matching query in menu order. Separators
// only survive an empty query.
func FilterItems(items []menu.Entry, query string) []menu.Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return CloneItems(items)
	}
	filtered := make([]menu.Entry, 0, len(items))
	for _, item := range items {
		if tier, _ := matchTier(item, q); tier != noMatch {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex returns the selectable entry matching query best, the first
// selectable entry when none matches, or -1 when nothing accepts the cursor.
func BestMatchIndex(items []menu.Entry, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	first, best := -1, -1
	bestTier, bestDistance := noMatch, 0
	for i, item := range items {
		if !Selectable(item) {
			continue
		}
		if first < 0 {
			first = i
		}
		if q == "" {
			break
		}
		tier, distance := matchTier(item, q)
		if tier == noMatch {
			continue
		}
		if best < 0 || tier < bestTier || (tier == bestTier && distance < bestDistance) {
			best, bestTier, bestDistance = i, tier, distance
		}
	}
	if best < 0 {
		return first
	}
	return best
}
