package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/cli"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert AMOUNT",
	Short: "Convert an amount from the study currency to the home currency",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}
	if amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}

	s := loadSession(cmd)
	rate := s.resolver.Resolve(context.Background(), s.study.Code, s.home.Code)

	fmt.Printf("\n  %s %s = %s %s\n",
		cli.FormatMoneyPrecise(s.study.Symbol, amount), s.study.Code,
		cli.FormatMoneyPrecise(s.home.Symbol, amount*rate.Value), s.home.Code)
	fmt.Printf("  Rate: %s (%s)\n", cli.FormatRate(rate.Value), rate.Source)

	return nil
}
