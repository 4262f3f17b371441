package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/budget"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/cli"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/reference"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/tui/components"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// plannerState tracks the planner tab state.
type plannerState struct {
	cursor  int
	editing bool
	input   textinput.Model
}

func newExpenseInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 8
	ti.Width = 12
	return ti
}

func (a App) plannerStartEdit() (tea.Model, tea.Cmd, bool) {
	cat := budget.Categories()[a.planner.cursor]

	ti := newExpenseInput()
	ti.Placeholder = fmt.Sprintf("0 - %.0f", budget.Limit(cat))
	if amount := a.expenses.Amount(cat); amount > 0 {
		ti.SetValue(strconv.FormatFloat(amount, 'f', -1, 64))
	}
	ti.Focus()

	a.planner.editing = true
	a.planner.input = ti
	return a, ti.Cursor.BlinkCmd(), true
}

func (a App) updatePlannerInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		val := strings.TrimSpace(a.planner.input.Value())
		if amount, err := strconv.ParseFloat(val, 64); err == nil {
			cat := budget.Categories()[a.planner.cursor]
			a.expenses = a.expenses.WithAmount(cat, amount)
			a.recompute()
		}
		a.planner.editing = false
		return a, nil
	case "esc":
		a.planner.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.planner.input, cmd = a.planner.input.Update(msg)
	return a, cmd
}

func (a App) renderPlannerTab(cw int) string {
	t := theme.Active
	homeSymbol := reference.Symbol(a.homeCode())

	// Row 1: Metric cards
	cards := []struct{ Label, Value, Detail string }{
		{"Monthly (USD)", cli.FormatUSD(a.summary.MonthlyUSD), ""},
		{fmt.Sprintf("Monthly (%s)", a.homeCode()),
			cli.FormatMoney(homeSymbol, a.summary.MonthlyHome), ""},
		{fmt.Sprintf("Total · %s", cli.FormatMonths(a.months)),
			cli.FormatMoney(homeSymbol, a.summary.TotalHome),
			cli.FormatUSD(a.summary.TotalUSD) + " USD"},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Expense list
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	limitStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var form strings.Builder
	for i, cat := range budget.Categories() {
		amount := a.expenses.Amount(cat)

		if a.planner.editing && i == a.planner.cursor {
			form.WriteString(markerStyle.Render("▸ "))
			form.WriteString(selectedLabelStyle.Render(fmt.Sprintf("%-16s ", cat.String())))
			form.WriteString(a.planner.input.View())
			form.WriteString("\n")
			continue
		}

		if i == a.planner.cursor {
			form.WriteString(markerStyle.Render("▸ "))
			form.WriteString(selectedLabelStyle.Render(fmt.Sprintf("%-16s ", cat.String())))
			form.WriteString(selectedStyle.Render(cli.FormatUSD(amount)))
		} else {
			form.WriteString("  ")
			form.WriteString(labelStyle.Render(fmt.Sprintf("%-16s ", cat.String())))
			form.WriteString(valueStyle.Render(cli.FormatUSD(amount)))
		}
		form.WriteString(limitStyle.Render(fmt.Sprintf("  (max %s)", cli.FormatUSD(budget.Limit(cat)))))
		form.WriteString("\n")
	}
	form.WriteString("\n")
	form.WriteString(labelStyle.Render("[j/k] move  [Enter] edit  [a] averages  [z] zero"))

	b.WriteString(components.ContentCard("Monthly Expenses (USD)", form.String(), cw))
	b.WriteString("\n")

	// Row 3: Comparison card
	b.WriteString(a.renderComparisonCard(cw))

	return b.String()
}

func (a App) renderComparisonCard(cw int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	if !a.hasComparison {
		body := labelStyle.Render("Enter expenses to compare against the state average.")
		return components.ContentCard(fmt.Sprintf("vs %s Average", a.state), body, cw)
	}

	cmp := a.comparison

	var verdictColor lipgloss.Color
	switch cmp.Verdict {
	case budget.AboveAverage:
		verdictColor = t.Red
	case budget.BelowAverage:
		verdictColor = t.Green
	default:
		verdictColor = t.Yellow
	}
	verdictStyle := lipgloss.NewStyle().Foreground(verdictColor).Bold(true)

	var body strings.Builder
	body.WriteString(labelStyle.Render("State average:  "))
	body.WriteString(valueStyle.Render(cli.FormatUSD(cmp.ReferenceTotal) + "/mo"))
	body.WriteString("\n")
	body.WriteString(labelStyle.Render("Your budget:    "))
	body.WriteString(valueStyle.Render(cli.FormatUSD(a.summary.MonthlyUSD) + "/mo"))
	body.WriteString("\n")
	body.WriteString(labelStyle.Render("Difference:     "))
	body.WriteString(verdictStyle.Render(fmt.Sprintf("%s (%s)",
		cli.FormatSignedPercent(cmp.PercentDiff), cmp.Verdict)))

	return components.ContentCard(fmt.Sprintf("vs %s Average", a.state), body.String(), cw)
}
