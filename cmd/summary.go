package cmd

import (
	"context"
	"fmt"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/budget"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly and total budget with the state comparison",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	s := loadSession(cmd)

	if s.expenses.Total() <= 0 {
		fmt.Println("\n  No expenses entered yet.")
		fmt.Println("  Set amounts with --housing, --food, ... or use --average for the state averages.")
		return nil
	}

	rate := s.resolver.Resolve(context.Background(), s.study.Code, s.home.Code)
	summary := budget.Aggregate(s.expenses, rate.Value, s.months)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET SUMMARY  %s", s.state)))
	fmt.Println()

	rows := [][]string{
		{"Monthly Total", cli.FormatUSD(summary.MonthlyUSD)},
		{fmt.Sprintf("Monthly (%s)", s.home.Code), cli.FormatMoney(s.home.Symbol, summary.MonthlyHome)},
		{"---"},
		{"Duration", cli.FormatMonths(summary.Months)},
		{fmt.Sprintf("Total (%s)", s.study.Code), cli.FormatUSD(summary.TotalUSD)},
		{fmt.Sprintf("Total (%s)", s.home.Code), cli.FormatMoney(s.home.Symbol, summary.TotalHome)},
	}

	if cmp, ok := budget.Compare(summary.MonthlyUSD, s.ref); ok {
		verdict := cli.VerdictStyle(
			cmp.Verdict == budget.AboveAverage,
			cmp.Verdict == budget.NearAverage,
		).Render(fmt.Sprintf("%s (%s)", cli.FormatSignedPercent(cmp.PercentDiff), cmp.Verdict))
		rows = append(rows,
			[]string{"---"},
			[]string{fmt.Sprintf("%s Average", s.state), cli.FormatUSD(cmp.ReferenceTotal)},
			[]string{"vs Average", verdict},
		)
	}

	table := cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	fmt.Printf("\n  Rate: 1 %s = %s %s (%s)\n",
		s.study.Code, cli.FormatRate(rate.Value), s.home.Code, rate.Source)

	return nil
}
