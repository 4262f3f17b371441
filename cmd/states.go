package cmd

import (
	"fmt"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/cli"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/reference"

	"github.com/spf13/cobra"
)

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "Average monthly living costs per state",
	RunE:  runStates,
}

func init() {
	rootCmd.AddCommand(statesCmd)
}

func runStates(_ *cobra.Command, _ []string) error {
	fmt.Println()
	fmt.Println(cli.RenderTitle("STATE LIVING COSTS  Monthly USD"))
	fmt.Println()

	var rows [][]string
	for _, name := range reference.StateNames() {
		costs, _ := reference.Lookup(name)
		rows = append(rows, []string{
			name,
			cli.FormatNumber(int64(costs.Rent)),
			cli.FormatNumber(int64(costs.Food)),
			cli.FormatNumber(int64(costs.Utilities)),
			cli.FormatNumber(int64(costs.Transportation)),
			cli.FormatNumber(int64(costs.Misc)),
			cli.FormatNumber(int64(costs.Total())),
		})
	}

	table := cli.Table{
		Headers: []string{"State", "Rent", "Food", "Util", "Transit", "Misc", "Total"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	return nil
}
