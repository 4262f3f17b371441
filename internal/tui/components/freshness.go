package components

import (
	"fmt"
	"time"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// freshnessColor returns green while plenty of the window remains, then
// yellow, orange, and red as the cached value nears expiry.
func freshnessColor(remaining float64) string {
	t := theme.Active
	switch {
	case remaining <= 0.1:
		return string(t.Red)
	case remaining <= 0.3:
		return string(t.Orange)
	case remaining <= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// FreshnessBar renders a labeled bar showing how much of a cache freshness
// window remains, with a countdown until expiry.
func FreshnessBar(label string, age, ttl time.Duration, labelW, barWidth int) string {
	t := theme.Active

	remaining := 1.0
	if ttl > 0 {
		remaining = 1 - age.Seconds()/ttl.Seconds()
	}
	if remaining < 0 {
		remaining = 0
	}
	if remaining > 1 {
		remaining = 1
	}

	bar := progress.New(
		progress.WithSolidFill(freshnessColor(remaining)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	countdownStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	countdown := "expired"
	if left := ttl - age; left > 0 {
		countdown = "expires in " + formatCountdown(left)
	}

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " +
		bar.ViewAs(remaining) +
		"  " +
		countdownStyle.Render(countdown)
}

func formatCountdown(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
