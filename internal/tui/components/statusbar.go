package components

import (
	"fmt"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. rateInfo describes the
// active conversion rate ("1 USD = 0.8500 EUR · live").
func RenderStatusBar(width int, rateInfo string, fetching bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	right := ""
	if fetching {
		right = "Fetching rate... "
	} else if rateInfo != "" {
		right = fmt.Sprintf("%s ", rateInfo)
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
