package cmd

import (
	"context"
	"fmt"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/budget"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/cli"

	"github.com/spf13/cobra"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Per-category expense breakdown with shares",
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(cmd *cobra.Command, _ []string) error {
	s := loadSession(cmd)

	rate := s.resolver.Resolve(context.Background(), s.study.Code, s.home.Code)
	breakdown := budget.Breakdown(s.expenses, rate.Value)

	if len(breakdown) == 0 {
		fmt.Println("\n  No expenses entered yet.")
		fmt.Println("  Set amounts with --housing, --food, ... or use --average for the state averages.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("EXPENSE BREAKDOWN"))
	fmt.Println()

	rows := make([][]string, 0, len(breakdown)+2)
	for _, row := range breakdown {
		rows = append(rows, []string{
			row.Category.String(),
			cli.FormatUSD(row.USD),
			cli.FormatMoney(s.home.Symbol, row.Home),
			cli.FormatShare(row.Share),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		cli.FormatUSD(s.expenses.Total()),
		cli.FormatMoney(s.home.Symbol, s.expenses.Total()*rate.Value),
		cli.FormatShare(100),
	})

	table := cli.Table{
		Headers: []string{"Category", "USD", s.home.Code, "Share"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	// Share bars scaled against the largest category
	maxUSD := 0.0
	for _, row := range breakdown {
		if row.USD > maxUSD {
			maxUSD = row.USD
		}
	}
	fmt.Println()
	for _, row := range breakdown {
		fmt.Printf("  %-16s %s\n", row.Category, cli.RenderHorizontalBar(row.USD, maxUSD, 32))
	}

	return nil
}
