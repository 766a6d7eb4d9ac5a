package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/mpv-context-menu/internal/logging/events"
)

const filterPlaceholder = "(type to search)"

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// editFilter runs edit against the current level and refreshes the view when
// it changed the query. Cursor-only edits just restart the caret blink.
func (m *Model) editFilter(edit func(*level) bool, queryChanged bool) bool {
	current := m.currentLevel()
	if current == nil {
		return false
	}
	before := current.FilterCursorPos()
	if !edit(current) {
		return false
	}
	if before != current.FilterCursorPos() {
		m.filterCursorDirty = true
	}
	if queryChanged {
		m.forceClearInfo()
		m.errMsg = ""
		m.syncViewport(current)
	}
	return true
}

// handleTextInput applies keys that edit the type-to-search query. Keys it
// does not consume fall through to menu navigation.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyCtrlU:
		return m.editFilter(func(l *level) bool {
			if l.Filter == "" {
				return false
			}
			l.SetFilter("", 0)
			events.Filter.Cleared(l.ID)
			return true
		}, true)
	case tea.KeyCtrlW:
		return m.editFilter(func(l *level) bool {
			if !l.DeleteFilterWordBackward() {
				return false
			}
			events.Filter.WordBackspace(l.ID, l.Filter)
			return true
		}, true)
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune()
	case tea.KeyCtrlA:
		return m.moveFilterCursor(-maxFilterRunes)
	case tea.KeyCtrlE:
		return m.moveFilterCursor(maxFilterRunes)
	case tea.KeyLeft:
		return m.moveFilterCursor(-1)
	case tea.KeyRight:
		return m.moveFilterCursor(1)
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			// Spaces arrive as KeySpace; anything else here is a paste of
			// control text.
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	}
	return false
}

// maxFilterRunes bounds a jump to either end of the query.
const maxFilterRunes = 1 << 16

func (m *Model) moveFilterCursor(delta int) bool {
	return m.editFilter(func(l *level) bool {
		if !l.MoveFilterCursor(delta) {
			return false
		}
		events.Filter.Cursor(l.ID, l.FilterCursor)
		return true
	}, false)
}

func (m *Model) appendToFilter(text string) bool {
	return m.editFilter(func(l *level) bool {
		if !l.InsertFilterText(text) {
			return false
		}
		events.Filter.Append(l.ID, l.Filter)
		return true
	}, true)
}

func (m *Model) removeFilterRune() bool {
	return m.editFilter(func(l *level) bool {
		if !l.DeleteFilterRuneBackward() {
			return false
		}
		events.Filter.Backspace(l.ID, l.Filter)
		return true
	}, true)
}

// filterPrompt renders the search line with the caret at the filter cursor,
// or over the first rune of the placeholder while the query is empty.
func (m *Model) filterPrompt() string {
	prompt := "» "
	if m.styles.FilterPrompt != nil {
		prompt = m.styles.FilterPrompt.Render(prompt)
	}
	current := m.currentLevel()
	if current == nil {
		return prompt
	}

	text, textStyle, pos := current.Filter, m.styles.Filter, current.FilterCursorPos()
	if text == "" {
		text, textStyle, pos = filterPlaceholder, m.styles.FilterPlaceholder, 0
	}
	m.filterCursor.TextStyle = lipgloss.Style{}
	if textStyle != nil {
		m.filterCursor.TextStyle = textStyle.Copy()
	}
	if m.styles.Cursor != nil {
		m.filterCursor.Style = m.styles.Cursor.Copy()
	}

	runes := []rune(text)
	caret := " "
	after := ""
	if pos < len(runes) {
		caret = string(runes[pos])
		after = string(runes[pos+1:])
	}
	return prompt + renderWith(textStyle, string(runes[:pos])) + m.renderFilterCursor(caret) + renderWith(textStyle, after)
}

func renderWith(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func (m *Model) renderFilterCursor(char string) string {
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	switch {
	case m.filterCursor.Blink:
		return base.Render(char)
	case m.styles.Cursor != nil:
		return base.Inherit(m.styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	default:
		return base.Reverse(true).Render(char)
	}
}
