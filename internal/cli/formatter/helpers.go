package formatter

import "github.com/charmbracelet/lipgloss"

// Truncate shortens s to at most width visible cells, ending in "…".
// A non-positive width leaves s unchanged.
func Truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
