package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/mpv-context-menu/internal/logging"
	"github.com/atomicstack/mpv-context-menu/internal/logging/events"
	"github.com/atomicstack/mpv-context-menu/internal/menu"
	"github.com/atomicstack/mpv-context-menu/internal/transport"
)

func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil || len(m.stack) <= 1 {
		return m.dismiss()
	}
	parent := m.stack[len(m.stack)-2]
	m.stack = m.stack[:len(m.stack)-1]
	if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Items) {
		parent.Cursor = parent.LastCursor
	} else if idx := parent.IndexOfTarget(current.ID); idx >= 0 {
		parent.Cursor = idx
	}
	parent.LastCursor = -1
	m.syncViewport(parent)
	m.errMsg = ""
	m.forceClearInfo()
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.Current()
	if !ok || item.Kind == menu.KindSeparator {
		return nil
	}
	if item.Disabled {
		m.setInfo(fmt.Sprintf("%s is unavailable", item.Label))
		return nil
	}
	events.UI.MenuEnter(current.ID, item.Index, item.Label, current.Filter)
	if current.FilterCursorPos() != 0 {
		m.filterCursorDirty = true
	}
	current.SetFilter("", 0)
	if item.Kind == menu.KindCascade {
		m.openCascade(item)
		return nil
	}
	events.UI.Pick(current.ID, item.Index)
	m.result = m.selection(current.ID, item.Index, m.menuPath())
	m.done = true
	return tea.Quit
}

// dismiss closes the builder without a pick.
func (m *Model) dismiss() tea.Cmd {
	name := ""
	if current := m.currentLevel(); current != nil {
		name = current.ID
	}
	events.UI.Dismiss(name)
	m.result = m.selection(name, transport.Unset, m.menuPath())
	m.done = true
	return tea.Quit
}

// openCascade pushes the submenu an entry points at, refusing to nest past
// the envelope's menu limit.
func (m *Model) openCascade(item menu.Entry) bool {
	if len(m.stack) >= m.limit {
		m.errMsg = transport.DepthMessage(m.limit)
		return false
	}
	items, ok := m.menus[item.Target]
	if !ok {
		m.errMsg = fmt.Sprintf("Unknown menu %q", item.Target)
		return false
	}
	if parent := m.currentLevel(); parent != nil {
		if at := parent.IndexOf(item.Index); at >= 0 {
			parent.Cursor = at
		}
		parent.LastCursor = parent.Cursor
	}
	next := newLevel(item.Target, item.Label, items)
	m.syncViewport(next)
	m.stack = append(m.stack, next)
	m.errMsg = ""
	m.forceClearInfo()
	if !next.HasSelectable() {
		m.setInfo("No entries found.")
	}
	return true
}

// reopen walks "?"-separated cascade positions from the root, restoring the
// submenus that were open when the previous pick was made. Each position is
// the 0-based slot of the cascade in its parent.
func (m *Model) reopen(indexes string) {
	if strings.TrimSpace(indexes) == "" {
		return
	}
	for _, raw := range strings.Split(indexes, "?") {
		pos, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			logging.Trace("ui.reopen", map[string]interface{}{"indexes": indexes, "error": err.Error()})
			return
		}
		current := m.currentLevel()
		at := current.IndexOf(pos + 1)
		if at < 0 || current.Items[at].Kind != menu.KindCascade {
			logging.Trace("ui.reopen", map[string]interface{}{"indexes": indexes, "menu": current.ID, "position": pos})
			return
		}
		current.Cursor = at
		m.syncViewport(current)
		if !m.openCascade(current.Items[at]) {
			return
		}
	}
}

// menuPath is the dotted chain of open menus, e.g. ".context_menu.play_menu".
func (m *Model) menuPath() string {
	var b strings.Builder
	for _, lvl := range m.stack {
		b.WriteString(".")
		b.WriteString(lvl.ID)
	}
	return b.String()
}

func (m *Model) moveCursorUp() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorUp() {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorDown() {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageUp(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageDown(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorHome(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorEnd(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.done {
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return m.dismiss()
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "right":
		if current := m.currentLevel(); current != nil {
			if item, ok := current.Current(); ok && item.Kind == menu.KindCascade {
				return m.handleEnterKey()
			}
		}
	case "left":
		if len(m.stack) > 1 {
			return m.handleEscapeKey()
		}
	case "up", "ctrl+p":
		m.moveCursorUp()
	case "down", "ctrl+n":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}
