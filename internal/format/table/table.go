// Package table lays out menu rows in padded columns measured by display
// width, so accelerators line up even next to wide or styled labels.
package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Alignment selects which side of a column receives padding.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes one column of a Layout.
type Column struct {
	Align Alignment
	// Gap is the number of spaces before the column. The first column's gap
	// is ignored.
	Gap int
	// OmitEmpty drops the column, and its gap, when no row has text in it.
	OmitEmpty bool
}

// Layout formats rows into equal-width lines.
type Layout struct {
	Columns []Column
	// Rule fills rows that are nil, such as menu separators. Zero leaves
	// them blank.
	Rule rune
}

// Format returns one line per row. Every line has the same display width.
func (l Layout) Format(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := make([]int, len(l.Columns))
	for _, row := range rows {
		for c, cell := range row {
			if c < len(widths) {
				widths[c] = max(widths[c], ansi.StringWidth(cell))
			}
		}
	}

	visible := make([]bool, len(l.Columns))
	total := 0
	for c, col := range l.Columns {
		if col.OmitEmpty && widths[c] == 0 {
			continue
		}
		if total > 0 {
			total += col.Gap
		}
		visible[c] = true
		total += widths[c]
	}

	out := make([]string, len(rows))
	for i, row := range rows {
		if row == nil {
			fill := ' '
			if l.Rule != 0 {
				fill = l.Rule
			}
			out[i] = strings.Repeat(string(fill), total)
			continue
		}
		var b strings.Builder
		started := false
		for c, col := range l.Columns {
			if !visible[c] {
				continue
			}
			if started {
				b.WriteString(strings.Repeat(" ", col.Gap))
			}
			started = true
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			pad := strings.Repeat(" ", max(0, widths[c]-ansi.StringWidth(cell)))
			if col.Align == AlignRight {
				b.WriteString(pad + cell)
			} else {
				b.WriteString(cell + pad)
			}
		}
		out[i] = b.String()
	}
	return out
}
