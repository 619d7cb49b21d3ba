// ABOUTME: Bridge from resolved attributes to lipgloss styles
// ABOUTME: Used by hosts that draw chrome with lipgloss around a composed frame

package style

import "github.com/charmbracelet/lipgloss"

func lipColor(c Color) lipgloss.TerminalColor {
	switch c.kind {
	case KindNamed:
		return lipgloss.ANSIColor(c.index)
	case KindRGB:
		return lipgloss.Color(c.Hex())
	}
	return lipgloss.NoColor{}
}

// Lipgloss converts a into an equivalent lipgloss style.
func (a Attrs) Lipgloss() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipColor(a.FG)).
		Background(lipColor(a.BG)).
		Bold(a.Font.Has(Bold)).
		Italic(a.Font.Has(Italic)).
		Underline(a.Font.Has(Underline)).
		Reverse(a.Font.Has(Reverse)).
		Strikethrough(a.Font.Has(Strike))
}
