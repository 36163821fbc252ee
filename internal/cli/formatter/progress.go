package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is green from 66%, yellow from 33% and red below that.
func RenderProgress(pct int, width int) string {
	pct = clampPercent(pct)
	return fmt.Sprintf("[%s] %3d%%", percentStyle(pct).Render(bar(pct, width)), pct)
}

// RenderCompactBar renders just the blocks, without brackets or percentage.
// Dimmed bars are used for rows that are not selected.
func RenderCompactBar(pct int, width int, dim bool) string {
	pct = clampPercent(pct)
	if dim {
		return StyleDim.Render(bar(pct, width))
	}
	return percentStyle(pct).Render(bar(pct, width))
}

func bar(pct, width int) string {
	if width < 2 {
		width = 2
	}
	filled := pct * width / 100
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func clampPercent(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func percentStyle(pct int) lipgloss.Style {
	switch {
	case pct < 33:
		return StyleRed
	case pct < 66:
		return StyleYellow
	default:
		return StyleGreen
	}
}
