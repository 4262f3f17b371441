package components

import (
	"fmt"
	"strings"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ShareRow is one labeled bar in a share chart.
type ShareRow struct {
	Label  string
	Value  float64 // absolute value, used for bar scaling
	Share  float64 // percentage of the total, shown next to the bar
	Detail string  // optional trailing text (formatted amount)
}

// barPalette returns the cycling bar colors from the active theme.
func barPalette() []lipgloss.Color {
	t := theme.Active
	return []lipgloss.Color{t.Accent, t.Blue, t.Green, t.Orange, t.Yellow}
}

// ShareBars renders horizontal bars scaled against the largest value, one
// row per entry: label, bar, share percentage, optional detail.
func ShareBars(rows []ShareRow, width int) string {
	if len(rows) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	detailW := 0
	peak := 0.0
	for _, r := range rows {
		if len(r.Label) > labelW {
			labelW = len(r.Label)
		}
		if lipgloss.Width(r.Detail) > detailW {
			detailW = lipgloss.Width(r.Detail)
		}
		if r.Value > peak {
			peak = r.Value
		}
	}
	if peak <= 0 {
		peak = 1
	}

	// label + space + bar + space + "100.0%" + space + detail
	barW := width - labelW - detailW - 10
	if barW < 5 {
		barW = 5
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	detailStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	palette := barPalette()

	var b strings.Builder
	for i, r := range rows {
		filled := int(r.Value / peak * float64(barW))
		if filled > barW {
			filled = barW
		}
		if filled < 1 && r.Value > 0 {
			filled = 1
		}

		barStyle := lipgloss.NewStyle().Foreground(palette[i%len(palette)])

		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, r.Label)))
		b.WriteString(" ")
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(emptyStyle.Render(strings.Repeat("░", barW-filled)))
		b.WriteString(" ")
		b.WriteString(pctStyle.Render(fmt.Sprintf("%5.1f%%", r.Share)))
		if r.Detail != "" {
			b.WriteString("  ")
			b.WriteString(detailStyle.Render(r.Detail))
		}
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
