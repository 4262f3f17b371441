// Package tui provides the interactive Bubble Tea planner for studentbudget.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/budget"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/cli"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/config"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/exchange"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/reference"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/tui/components"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RateMsg is sent when a background rate resolution completes.
type RateMsg struct {
	Rate exchange.Rate
}

// App is the root Bubble Tea model.
type App struct {
	// Inputs
	resolver *exchange.Resolver
	state    string
	ref      reference.StateCosts
	homeIdx  int // index into currencyCodes
	studyIdx int
	months   int
	expenses budget.Expenses

	// Active conversion rate (study -> home)
	rate      exchange.Rate
	rateReady bool
	fetching  bool

	// Pre-computed for current inputs
	summary       budget.Summary
	comparison    budget.Comparison
	hasComparison bool
	rows          []budget.Row

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	planner  plannerState
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner spinner.Model

	currencyCodes []string
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 120
	minContentHeight = 5

	resolveTimeout = 10 * time.Second
)

// NewApp creates a new TUI app model.
func NewApp(state, home, study string, months int, expenses budget.Expenses, resolver *exchange.Resolver) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	codes := reference.CurrencyCodes()

	a := App{
		resolver:      resolver,
		state:         state,
		months:        months,
		expenses:      expenses,
		needSetup:     !config.Exists(),
		fetching:      true, // initial resolve starts in Init
		spinner:       sp,
		currencyCodes: codes,
	}
	a.ref, _ = reference.Lookup(state)
	a.homeIdx = indexOf(codes, home)
	a.studyIdx = indexOf(codes, study)
	if a.needSetup {
		a.setupForm = newSetupForm(&a.setupVals)
	}
	a.recompute()

	return a
}

func indexOf(codes []string, code string) int {
	for i, c := range codes {
		if c == code {
			return i
		}
	}
	return 0
}

func (a App) homeCode() string  { return a.currencyCodes[a.homeIdx] }
func (a App) studyCode() string { return a.currencyCodes[a.studyIdx] }

// rateValue is the conversion factor applied to home-currency figures. Until
// the first resolution lands, figures are shown unconverted.
func (a App) rateValue() float64 {
	if !a.rateReady {
		return 1.0
	}
	return a.rate.Value
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		a.spinner.Tick,
		fetchRateCmd(a.resolver, a.studyCode(), a.homeCode()),
	}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}

	return tea.Batch(cmds...)
}

// recompute derives all view data from the current inputs.
func (a *App) recompute() {
	rate := a.rateValue()
	a.summary = budget.Aggregate(a.expenses, rate, a.months)
	a.comparison, a.hasComparison = budget.Compare(a.summary.MonthlyUSD, a.ref)
	a.rows = budget.Breakdown(a.expenses, rate)

	if a.planner.cursor >= len(budget.Categories()) {
		a.planner.cursor = len(budget.Categories()) - 1
	}
	if a.planner.cursor < 0 {
		a.planner.cursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Forward to setup form if active
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Planner expense editing (text input)
		if a.activeTab == 0 && a.planner.editing {
			return a.updatePlannerInput(msg)
		}

		// Settings editing (text input)
		if a.activeTab == 3 && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Planner tab keybindings
		if a.activeTab == 0 {
			if model, cmd, handled := a.updatePlanner(key); handled {
				return model, cmd
			}
		}

		// Rates tab keybindings
		if a.activeTab == 2 {
			if model, cmd, handled := a.updateRates(key); handled {
				return model, cmd
			}
		}

		// Settings tab navigation (non-editing mode)
		if a.activeTab == 3 {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
		return a, nil

	case RateMsg:
		a.rate = msg.Rate
		a.rateReady = true
		a.fetching = false
		a.recompute()
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

// updatePlanner handles non-editing planner keys. The bool result reports
// whether the key was consumed.
func (a App) updatePlanner(key string) (tea.Model, tea.Cmd, bool) {
	categories := budget.Categories()

	switch key {
	case "j", "down":
		if a.planner.cursor < len(categories)-1 {
			a.planner.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.planner.cursor > 0 {
			a.planner.cursor--
		}
		return a, nil, true
	case "enter":
		return a.plannerStartEdit()
	case "a":
		a.expenses = budget.FromReference(a.ref)
		a.recompute()
		return a, nil, true
	case "z":
		a.expenses = budget.Expenses{}
		a.recompute()
		return a, nil, true
	case "[":
		a.cycleState(-1)
		return a, nil, true
	case "]":
		a.cycleState(1)
		return a, nil, true
	case "+", "=":
		a.months = budget.ClampMonths(a.months + budget.MonthsStep)
		a.recompute()
		return a, nil, true
	case "-":
		a.months = budget.ClampMonths(a.months - budget.MonthsStep)
		a.recompute()
		return a, nil, true
	}

	return a, nil, false
}

// updateRates handles rates tab keys: currency cycling and forced refresh.
func (a App) updateRates(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case ",":
		a.homeIdx = (a.homeIdx + 1) % len(a.currencyCodes)
	case ".":
		a.studyIdx = (a.studyIdx + 1) % len(a.currencyCodes)
	case "r":
		a.resolver.Expire(a.studyCode(), a.homeCode())
	default:
		return a, nil, false
	}

	a.rateReady = false
	a.fetching = true
	a.recompute()
	return a, tea.Batch(
		a.spinner.Tick,
		fetchRateCmd(a.resolver, a.studyCode(), a.homeCode()),
	), true
}

func (a *App) cycleState(step int) {
	names := reference.StateNames()
	idx := 0
	for i, n := range names {
		if n == a.state {
			idx = i
			break
		}
	}
	idx = (idx + step + len(names)) % len(names)
	a.state = names[idx]
	a.ref, _ = reference.Lookup(a.state)
	a.recompute()
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		return a, fetchRateCmd(a.resolver, a.studyCode(), a.homeCode())
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  studentbudget needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Blue).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"p b t x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Planner"))
	b.WriteString("\n")
	plannerBindings := []struct{ key, desc string }{
		{"Enter", "Edit expense"},
		{"a", "Apply state averages"},
		{"z", "Reset to zero"},
		{"[ ]", "Previous / Next state"},
		{"+ -", "Adjust duration"},
	}
	for _, bind := range plannerBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Rates"))
	b.WriteString("\n")
	rateBindings := []struct{ key, desc string }{
		{", .", "Cycle home / study currency"},
		{"r", "Force rate refresh"},
	}
	for _, bind := range rateBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Render header (tab bar + context pill)
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pill := pillStyle.Render(" ") +
		pillAccentStyle.Render(a.state) +
		pillStyle.Render(" │ ") +
		pillAccentStyle.Render(cli.FormatMonths(a.months)) +
		pillStyle.Render(" │ ") +
		pillAccentStyle.Render(fmt.Sprintf("%s → %s", a.studyCode(), a.homeCode())) +
		pillStyle.Render(" ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		pillRowStyle.Render(pill)

	// 2. Render status bar
	statusBar := components.RenderStatusBar(w, a.rateInfo(), a.fetching)

	// 3. Calculate content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Render tab content
	var content string
	switch a.activeTab {
	case 0:
		content = a.renderPlannerTab(cw)
	case 1:
		content = a.renderBreakdownTab(cw)
	case 2:
		content = a.renderRatesTab(cw)
	case 3:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 7. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// rateInfo describes the active rate for the status bar.
func (a App) rateInfo() string {
	if !a.rateReady {
		return ""
	}
	return fmt.Sprintf("1 %s = %s %s · %s",
		a.rate.From, cli.FormatRate(a.rate.Value), a.rate.To, a.rate.Source)
}

// ─── Helpers ────────────────────────────────────────────────────

// fetchRateCmd resolves the pair in a background command. Resolution never
// fails; API errors surface as fallback or identity stage rates.
func fetchRateCmd(resolver *exchange.Resolver, from, to string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
		defer cancel()
		return RateMsg{Rate: resolver.Resolve(ctx, from, to)}
	}
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
