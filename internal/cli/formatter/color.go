package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathfinder/internal/domain"
	"github.com/alexanderramin/pathfinder/internal/tracker"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ClassStyle returns the style used for a topic group's class tag.
func ClassStyle(class domain.GroupClass) lipgloss.Style {
	switch class {
	case domain.ClassMustKnow:
		return StyleRed
	case domain.ClassGoodToKnow:
		return StyleBlue
	case domain.ClassTools:
		return StylePurple
	default:
		return StyleDim
	}
}

// ClassBadge renders a class tag such as "[must-know]".
func ClassBadge(class domain.GroupClass) string {
	return ClassStyle(class).Render("[" + string(class) + "]")
}

// PhaseState names where a phase stands.
func PhaseState(p tracker.Progress) string {
	switch {
	case p.Complete():
		return "done"
	case p.InProgress():
		return "in progress"
	default:
		return "not started"
	}
}

// PhaseIndicator returns a colored marker such as "● DONE".
func PhaseIndicator(p tracker.Progress) string {
	label := "● " + strings.ToUpper(PhaseState(p))
	switch {
	case p.Complete():
		return StyleGreen.Render(label)
	case p.InProgress():
		return StyleYellow.Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Warn renders a yellow warning line.
func Warn(text string) string {
	return StyleYellow.Render("! " + text)
}
