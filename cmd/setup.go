package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/budget"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/config"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/reference"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to studentbudget!")
	fmt.Println()

	// 1. Home currency
	fmt.Println("  1. Home currency")
	fmt.Printf("     One of: %s\n", strings.Join(reference.CurrencyCodes(), " "))
	fmt.Printf("     Current: %s\n", cfg.General.HomeCurrency)
	fmt.Print("     > ")
	code, _ := reader.ReadString('\n')
	code = strings.ToUpper(strings.TrimSpace(code))
	if reference.IsCurrency(code) {
		cfg.General.HomeCurrency = code
	}
	fmt.Println()

	// 2. Default state
	fmt.Println("  2. Default US state")
	fmt.Printf("     Current: %s\n", cfg.General.State)
	fmt.Print("     > ")
	state, _ := reader.ReadString('\n')
	state = strings.TrimSpace(state)
	if _, ok := reference.Lookup(state); ok {
		cfg.General.State = state
	}
	fmt.Println()

	// 3. Stay duration
	fmt.Println("  3. Stay duration in months (3-60, steps of 3)")
	fmt.Printf("     Current: %d\n", cfg.General.DurationMonths)
	fmt.Print("     > ")
	monthsStr, _ := reader.ReadString('\n')
	if months, err := strconv.Atoi(strings.TrimSpace(monthsStr)); err == nil {
		cfg.General.DurationMonths = budget.ClampMonths(months)
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `studentbudget setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
