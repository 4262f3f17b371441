package cmd

import (
	"context"
	"fmt"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/cli"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/reference"

	"github.com/spf13/cobra"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Conversion rates from the study currency to every known currency",
	RunE:  runRates,
}

func init() {
	rootCmd.AddCommand(ratesCmd)
}

func runRates(cmd *cobra.Command, _ []string) error {
	s := loadSession(cmd)
	ctx := context.Background()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EXCHANGE RATES  Base %s", s.study.Code)))
	fmt.Println()

	var rows [][]string
	for _, code := range reference.CurrencyCodes() {
		if code == s.study.Code {
			continue
		}
		rate := s.resolver.Resolve(ctx, s.study.Code, code)
		cur, _ := reference.CurrencyByCode(code)
		rows = append(rows, []string{
			code,
			cur.Name,
			cli.FormatRate(rate.Value),
			rate.Source.String(),
		})
	}

	table := cli.Table{
		Headers: []string{"Code", "Currency", "Rate", "Source"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	fmt.Printf("\n  Rates marked %q are static approximations; %q pairs had no rate at all.\n",
		"fallback", "identity")

	return nil
}
