package cmd

import (
	"os"
	"strings"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/budget"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/config"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/exchange"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/reference"

	"github.com/spf13/cobra"
)

var (
	flagState  string
	flagHome   string
	flagStudy  string
	flagMonths int

	flagHousing        float64
	flagFood           float64
	flagUtilities      float64
	flagTransportation float64
	flagMisc           float64
	flagAverage        bool
	flagOffline        bool
)

var rootCmd = &cobra.Command{
	Use:   "studentbudget",
	Short: "Student Budget Planner CLI",
	Long:  "Plan a study-abroad budget: monthly expenses, currency conversion, and state averages.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagState, "state", "s", "", "US state for cost-of-living comparison")
	rootCmd.PersistentFlags().StringVar(&flagHome, "home", "", "Home currency code (e.g. INR)")
	rootCmd.PersistentFlags().StringVar(&flagStudy, "study", "", "Study currency code (e.g. USD)")
	rootCmd.PersistentFlags().IntVarP(&flagMonths, "months", "n", 0, "Stay duration in months (3-60, steps of 3)")

	rootCmd.PersistentFlags().Float64Var(&flagHousing, "housing", 0, "Monthly rent in USD")
	rootCmd.PersistentFlags().Float64Var(&flagFood, "food", 0, "Monthly food spend in USD")
	rootCmd.PersistentFlags().Float64Var(&flagUtilities, "utilities", 0, "Monthly utilities in USD")
	rootCmd.PersistentFlags().Float64Var(&flagTransportation, "transportation", 0, "Monthly transportation in USD")
	rootCmd.PersistentFlags().Float64Var(&flagMisc, "misc", 0, "Monthly miscellaneous spend in USD")
	rootCmd.PersistentFlags().BoolVarP(&flagAverage, "average", "a", false, "Pre-fill expenses from the state averages")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "Skip the live rate API, use static rates")
}

// session is the resolved input set shared by all commands: config values
// with command-line flags layered on top.
type session struct {
	state    string
	ref      reference.StateCosts
	home     reference.Currency
	study    reference.Currency
	months   int
	expenses budget.Expenses
	resolver *exchange.Resolver
}

// loadSession builds the shared session. Unknown states and currencies fall
// back to the configured (already normalized) values rather than erroring,
// matching how the interactive planner treats bad input.
func loadSession(cmd *cobra.Command) session {
	cfg, _ := config.Load()

	var s session

	s.state = cfg.General.State
	if flagState != "" {
		if _, ok := reference.Lookup(flagState); ok {
			s.state = flagState
		}
	}
	s.ref, _ = reference.Lookup(s.state)

	s.home = pickCurrency(flagHome, cfg.General.HomeCurrency)
	s.study = pickCurrency(flagStudy, cfg.General.StudyCurrency)

	s.months = budget.ClampMonths(cfg.General.DurationMonths)
	if cmd.Flags().Changed("months") {
		s.months = budget.ClampMonths(flagMonths)
	}

	s.expenses = gatherExpenses(cmd, s.ref)

	if flagOffline {
		s.resolver = exchange.NewResolver(nil,
			exchange.WithTTL(cfg.RateTTL()),
			exchange.WithFallbackOverrides(cfg.FallbackOverrides()))
	} else {
		s.resolver = cfg.NewResolver()
	}

	return s
}

func pickCurrency(flagValue, configured string) reference.Currency {
	if flagValue != "" {
		if cur, ok := reference.CurrencyByCode(strings.ToUpper(flagValue)); ok {
			return cur
		}
	}
	cur, _ := reference.CurrencyByCode(configured)
	return cur
}

// gatherExpenses starts from zero (or the state averages with --average) and
// applies each expense flag that was explicitly set, clamped to its limit.
func gatherExpenses(cmd *cobra.Command, ref reference.StateCosts) budget.Expenses {
	var e budget.Expenses
	if flagAverage {
		e = budget.FromReference(ref)
	}

	flags := map[string]struct {
		cat   budget.Category
		value float64
	}{
		"housing":        {budget.Housing, flagHousing},
		"food":           {budget.Food, flagFood},
		"utilities":      {budget.Utilities, flagUtilities},
		"transportation": {budget.Transportation, flagTransportation},
		"misc":           {budget.Misc, flagMisc},
	}
	for name, f := range flags {
		if cmd.Flags().Changed(name) {
			e = e.WithAmount(f.cat, f.value)
		}
	}

	return e
}
