package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/cli"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/exchange"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/reference"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/tui/components"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderRatesTab(cw int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder

	// Row 1: Current pair card
	var pair strings.Builder
	if a.fetching {
		pair.WriteString(a.spinner.View())
		pair.WriteString(labelStyle.Render(" Resolving "))
		pair.WriteString(accentStyle.Render(fmt.Sprintf("%s → %s", a.studyCode(), a.homeCode())))
		pair.WriteString(labelStyle.Render(" ..."))
	} else if a.rateReady {
		pair.WriteString(accentStyle.Render(fmt.Sprintf("1 %s = %s %s",
			a.rate.From, cli.FormatRate(a.rate.Value), a.rate.To)))
		pair.WriteString("\n\n")
		pair.WriteString(labelStyle.Render("Source:   "))
		pair.WriteString(valueStyle.Render(a.rate.Source.String()))
		if a.rate.Source == exchange.SourceIdentity {
			warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
			pair.WriteString(warnStyle.Render("  (no rate known, figures are approximate)"))
		}
		pair.WriteString("\n")
		pair.WriteString(labelStyle.Render("Fetched:  "))
		pair.WriteString(valueStyle.Render(a.rate.FetchedAt.Format("15:04:05")))
		pair.WriteString("\n\n")

		age := time.Since(a.rate.FetchedAt)
		pair.WriteString(components.FreshnessBar("Cache", age, a.resolver.TTL(),
			8, components.CardInnerWidth(cw)/3))
	}
	pair.WriteString("\n\n")
	pair.WriteString(labelStyle.Render("[,] home currency  [.] study currency  [r] refresh"))

	b.WriteString(components.ContentCard("Active Rate", pair.String(), cw))
	b.WriteString("\n")

	// Row 2: Static fallback table for the current study currency
	headerStyle := lipgloss.NewStyle().Foreground(t.TextDim).Bold(true)

	var static strings.Builder
	static.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %-22s %10s", "Code", "Currency", "Rate")))
	static.WriteString("\n")
	found := 0
	for _, code := range a.currencyCodes {
		if code == a.studyCode() {
			continue
		}
		rate, ok := exchange.FallbackRate(a.studyCode(), code)
		if !ok {
			continue
		}
		cur, _ := reference.CurrencyByCode(code)
		static.WriteString(labelStyle.Render(fmt.Sprintf("%-6s %-22s ", code, cur.Name)))
		static.WriteString(valueStyle.Render(fmt.Sprintf("%10s", cli.FormatRate(rate))))
		static.WriteString("\n")
		found++
	}
	if found == 0 {
		static.WriteString(labelStyle.Render("No static rates for this base currency."))
		static.WriteString("\n")
	}
	static.WriteString("\n")
	static.WriteString(labelStyle.Render("Used when the live API is unreachable."))

	b.WriteString(components.ContentCard(
		fmt.Sprintf("Static Fallback Rates · Base %s", a.studyCode()),
		static.String(), cw))

	return b.String()
}
