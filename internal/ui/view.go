package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/mpv-context-menu/internal/format/table"
	"github.com/atomicstack/mpv-context-menu/internal/menu"
)

const footerText = "↑/↓ move  enter select  → open  esc back  ctrl+c close"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.done {
		return ""
	}
	lines := make([]styledLine, 0, 16)
	if header := m.menuHeader(); header != "" {
		lines = append(lines, styledLine{text: header, style: m.styles.Header})
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
		start := 0
		end := len(current.Items)
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(current.Items) > maxItems {
			start = current.ViewportOffset
			if start < 0 {
				start = 0
			}
			if start+maxItems > len(current.Items) {
				start = len(current.Items) - maxItems
				current.ViewportOffset = start
			}
			end = start + maxItems
		}
		if len(current.Items) == 0 {
			msg := "(no entries)"
			if current.Filter != "" {
				msg = fmt.Sprintf("No matches for %q", current.Filter)
			}
			lines = append(lines, styledLine{text: msg, style: m.styles.Info})
		} else {
			rows := itemRows(current.Items)
			for idx := start; idx < end; idx++ {
				lines = append(lines, m.buildItemLine(current.Items[idx], rows[idx], idx, current, m.width))
			}
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: m.styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerText, style: m.styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	// bottom bar: error line + filter prompt
	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: m.styles.Error}
	}
	promptText := m.filterPrompt()
	bottom := applyWidth([]styledLine{statusLine, {text: promptText}}, m.width)
	lines = append(lines, bottom...)
	return renderLines(lines)
}

// menuLayout puts the mark, label and accelerator of an entry in columns so
// accelerators line up on the right.
var menuLayout = table.Layout{
	Columns: []table.Column{
		{OmitEmpty: true},
		{Gap: 1},
		{Gap: 2, Align: table.AlignRight},
	},
	Rule: '─',
}

// itemRows lays out the entries of a level. Separators become rules as wide
// as the widest row.
func itemRows(items []menu.Entry) []string {
	rows := make([][]string, len(items))
	for i, item := range items {
		if item.Kind == menu.KindSeparator {
			continue
		}
		accel := item.Accelerator
		if item.Kind == menu.KindCascade {
			accel = "›"
		}
		rows[i] = []string{itemMark(item), item.Label, accel}
	}
	return menuLayout.Format(rows)
}

func itemMark(item menu.Entry) string {
	switch item.Kind {
	case menu.KindCheck:
		if item.State {
			return "[x]"
		}
		return "[ ]"
	case menu.KindRadio:
		if item.State {
			return "(•)"
		}
		return "( )"
	case menu.KindABToggle:
		switch item.AB {
		case menu.ABA:
			return "[A]"
		case menu.ABB:
			return "[B]"
		}
		return "[ ]"
	}
	return ""
}

// buildItemLine constructs a single styledLine for a menu entry. When width
// is positive the text is padded so the selected entry's background spans
// the full line.
func (m *Model) buildItemLine(item menu.Entry, row string, idx int, current *level, width int) styledLine {
	indicator := "▌"
	lineStyle := m.styles.Item
	indicatorStyle := m.styles.ItemIndicator
	switch {
	case item.Kind == menu.KindSeparator:
		if width > 2 {
			row = strings.Repeat("─", width-2)
		}
		return styledLine{text: "  " + row, style: m.styles.Separator}
	case item.Disabled:
		lineStyle = m.styles.DisabledItem
	case idx == current.Cursor:
		indicatorStyle = m.styles.SelectedItemIndicator
		lineStyle = m.styles.SelectedItem
	}
	fullText := indicator + " " + row
	if width > 0 {
		if pad := width - ansi.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) menuHeader() string {
	segments := m.headerSegments()
	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) headerSegments() []string {
	depth := len(m.stack)
	if depth == 0 {
		return nil
	}
	root := strings.TrimSpace(m.rootTitle)
	if root == "" {
		root = defaultRootTitle
	}
	if depth == 1 {
		return []string{root}
	}
	segments := make([]string, 0, depth)
	for i := 1; i < depth; i++ {
		if segment := headerSegmentForLevel(m.stack[i]); segment != "" {
			segments = append(segments, segment)
		}
	}
	if len(segments) == 0 {
		return []string{root}
	}
	return segments
}

// headerSegmentForLevel prefers the cascade label that opened a level and
// falls back to its menu name with the "_menu" suffix dropped.
func headerSegmentForLevel(l *level) string {
	if l == nil {
		return ""
	}
	candidate := strings.TrimSpace(l.Title)
	if candidate == "" {
		candidate = strings.TrimSuffix(strings.TrimSpace(l.ID), "_menu")
	}
	candidate = headerSegmentCleaner.Replace(candidate)
	fields := strings.Fields(strings.ToLower(candidate))
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // error line + filter prompt
	if header := m.menuHeader(); header != "" {
		used++
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText shortens text to width display cells, ending in an ellipsis.
// Text may already carry escape sequences from the filter prompt.
func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ansi.Truncate(text, 1, "")
	}
	return ansi.Truncate(text, width, "…")
}
