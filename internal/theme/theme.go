// Package theme holds the Lip Gloss styles of the terminal menu builder.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI. A nil
// style renders its text unchanged.
type Styles struct {
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	DisabledItem          *lipgloss.Style
	Separator             *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Header                *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style
}

// Palette names the ANSI 256 colours a style set is derived from.
type Palette struct {
	Text      lipgloss.Color
	Bright    lipgloss.Color
	Muted     lipgloss.Color
	Faint     lipgloss.Color
	Highlight lipgloss.Color
	Accent    lipgloss.Color
	Prompt    lipgloss.Color
	Error     lipgloss.Color
}

// DefaultPalette suits dark terminals, where mpv is usually launched from.
var DefaultPalette = Palette{
	Text:      "249",
	Bright:    "255",
	Muted:     "245",
	Faint:     "241",
	Highlight: "238",
	Accent:    "33",
	Prompt:    "34",
	Error:     "196",
}

// New derives the builder's styles from p.
func New(p Palette) *Styles {
	text := lipgloss.NewStyle().Foreground(p.Text)
	return &Styles{
		Item:                  ptr(text),
		ItemIndicator:         ptr(lipgloss.NewStyle().Foreground(p.Highlight)),
		SelectedItemIndicator: ptr(lipgloss.NewStyle().Foreground(p.Accent).Background(p.Highlight)),
		SelectedItem:          ptr(lipgloss.NewStyle().Foreground(p.Bright).Background(p.Highlight).Bold(true)),
		DisabledItem:          ptr(lipgloss.NewStyle().Foreground(p.Faint).Faint(true)),
		Separator:             ptr(lipgloss.NewStyle().Foreground(p.Highlight)),
		Error:                 ptr(lipgloss.NewStyle().Foreground(p.Error).Bold(true)),
		Info:                  ptr(text),
		Header:                ptr(lipgloss.NewStyle().Foreground(p.Muted).Bold(true)),
		Footer:                ptr(text),
		Filter:                ptr(text),
		FilterPrompt:          ptr(lipgloss.NewStyle().Foreground(p.Prompt).Bold(true)),
		FilterPlaceholder:     ptr(lipgloss.NewStyle().Foreground(p.Faint)),
		Cursor:                ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(p.Accent).Blink(true)),
	}
}

// Monochrome marks state with attributes only, for NO_COLOR terminals.
func Monochrome() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		SelectedItem:          ptr(plain.Reverse(true).Bold(true)),
		SelectedItemIndicator: ptr(plain.Reverse(true)),
		DisabledItem:          ptr(plain.Faint(true)),
		Error:                 ptr(plain.Bold(true)),
		Header:                ptr(plain.Bold(true)),
		FilterPrompt:          ptr(plain.Bold(true)),
		FilterPlaceholder:     ptr(plain.Faint(true)),
	}
}

// Default exposes the standard style set.
func Default() *Styles {
	return New(DefaultPalette)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
