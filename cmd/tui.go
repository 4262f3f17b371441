package cmd

import (
	"fmt"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/config"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/tui"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive planner",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Load config for theme
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	s := loadSession(cmd)
	app := tui.NewApp(s.state, s.home.Code, s.study.Code, s.months, s.expenses, s.resolver)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
