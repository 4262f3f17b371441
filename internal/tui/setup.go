package tui

import (
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/config"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/reference"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues receives the first-run form answers.
type setupValues struct {
	homeCurrency string
	state        string
	themeName    string
}

// newSetupForm builds the first-run huh form: home currency, default state,
// and color theme.
func newSetupForm(vals *setupValues) *huh.Form {
	vals.homeCurrency = "USD"
	vals.state = "California"
	vals.themeName = theme.FlexokiDark.Name

	currencyOpts := make([]huh.Option[string], 0, len(reference.CurrencyCodes()))
	for _, code := range reference.CurrencyCodes() {
		cur, _ := reference.CurrencyByCode(code)
		currencyOpts = append(currencyOpts, huh.NewOption(code+" · "+cur.Name, code))
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Home currency").
				Description("Converted totals are shown in this currency.").
				Options(currencyOpts...).
				Value(&vals.homeCurrency),
			huh.NewSelect[string]().
				Title("Default state").
				Description("Used for the cost-of-living comparison.").
				Options(huh.NewOptions(reference.StateNames()...)...).
				Value(&vals.state),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.themeName),
		).Title("Welcome to studentbudget!"),
	)
}

// applySetup saves the form answers and applies them to the running app.
func (a *App) applySetup() {
	cfg, _ := config.Load()

	if reference.IsCurrency(a.setupVals.homeCurrency) {
		cfg.General.HomeCurrency = a.setupVals.homeCurrency
		a.homeIdx = indexOf(a.currencyCodes, a.setupVals.homeCurrency)
	}
	if _, ok := reference.Lookup(a.setupVals.state); ok {
		cfg.General.State = a.setupVals.state
		a.state = a.setupVals.state
		a.ref, _ = reference.Lookup(a.state)
	}
	cfg.Appearance.Theme = a.setupVals.themeName
	theme.SetActive(a.setupVals.themeName)

	// Best-effort save; the in-memory values still apply for this session.
	_ = config.Save(cfg)

	a.rateReady = false
	a.fetching = true
	a.recompute()
}
