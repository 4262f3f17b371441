package tui

import (
	"fmt"
	"strings"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/cli"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/reference"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/tui/components"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBreakdownTab(cw int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if len(a.rows) == 0 {
		body := labelStyle.Render("Nothing to break down yet.\nEnter expenses on the Planner tab first.")
		return components.ContentCard("Expense Breakdown", body, cw)
	}

	homeSymbol := reference.Symbol(a.homeCode())

	// Row 1: Share chart. Zero categories are already omitted.
	shares := make([]components.ShareRow, 0, len(a.rows))
	for _, row := range a.rows {
		shares = append(shares, components.ShareRow{
			Label:  row.Category.String(),
			Value:  row.USD,
			Share:  row.Share,
			Detail: cli.FormatUSD(row.USD),
		})
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Share of Budget",
		components.ShareBars(shares, components.CardInnerWidth(cw)), cw))
	b.WriteString("\n")

	// Row 2: Detail table
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	headerStyle := lipgloss.NewStyle().Foreground(t.TextDim).Bold(true)

	var detail strings.Builder
	detail.WriteString(headerStyle.Render(
		fmt.Sprintf("%-16s %12s %14s %8s", "Category", "USD", a.homeCode(), "Share")))
	detail.WriteString("\n")
	for _, row := range a.rows {
		detail.WriteString(labelStyle.Render(fmt.Sprintf("%-16s ", row.Category.String())))
		detail.WriteString(valueStyle.Render(fmt.Sprintf("%12s %14s %8s",
			cli.FormatUSD(row.USD),
			cli.FormatMoney(homeSymbol, row.Home),
			cli.FormatShare(row.Share))))
		detail.WriteString("\n")
	}
	total := a.expenses.Total()
	detail.WriteString(valueStyle.Bold(true).Render(fmt.Sprintf("%-16s %12s %14s %8s",
		"Total",
		cli.FormatUSD(total),
		cli.FormatMoney(homeSymbol, total*a.rateValue()),
		cli.FormatShare(100))))

	b.WriteString(components.ContentCard("Detail", detail.String(), cw))

	return b.String()
}
