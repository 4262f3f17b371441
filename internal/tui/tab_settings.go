package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/budget"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/cli"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/config"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/reference"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/tui/components"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldState = iota
	settingsFieldHomeCurrency
	settingsFieldStudyCurrency
	settingsFieldDuration
	settingsFieldTheme
	settingsFieldTTL
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg, _ := config.Load()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldState:
		ti.Placeholder = "California, Texas, ..."
		ti.SetValue(a.state)
	case settingsFieldHomeCurrency:
		ti.Placeholder = strings.Join(a.currencyCodes, ", ")
		ti.SetValue(a.homeCode())
	case settingsFieldStudyCurrency:
		ti.Placeholder = strings.Join(a.currencyCodes, ", ")
		ti.SetValue(a.studyCode())
	case settingsFieldDuration:
		ti.Placeholder = "12 (3-60, steps of 3)"
		ti.SetValue(strconv.Itoa(a.months))
	case settingsFieldTheme:
		names := make([]string, len(theme.All))
		for i, t := range theme.All {
			names[i] = t.Name
		}
		ti.Placeholder = strings.Join(names, ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldTTL:
		ti.Placeholder = "30 (minutes)"
		ti.SetValue(strconv.Itoa(cfg.Rates.TTLMinutes))
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		cmd := a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, cmd
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave validates and persists the edited field. Currency changes
// return a command that resolves the new pair.
func (a *App) settingsSave() tea.Cmd {
	cfg, _ := config.Load()
	val := strings.TrimSpace(a.settings.input.Value())

	var cmd tea.Cmd

	switch a.settings.cursor {
	case settingsFieldState:
		if _, ok := reference.Lookup(val); ok {
			cfg.General.State = val
			a.state = val
			a.ref, _ = reference.Lookup(val)
			a.recompute()
		}
	case settingsFieldHomeCurrency:
		code := strings.ToUpper(val)
		if reference.IsCurrency(code) {
			cfg.General.HomeCurrency = code
			a.homeIdx = indexOf(a.currencyCodes, code)
			cmd = a.startResolve()
		}
	case settingsFieldStudyCurrency:
		code := strings.ToUpper(val)
		if reference.IsCurrency(code) {
			cfg.General.StudyCurrency = code
			a.studyIdx = indexOf(a.currencyCodes, code)
			cmd = a.startResolve()
		}
	case settingsFieldDuration:
		if months, err := strconv.Atoi(val); err == nil {
			months = budget.ClampMonths(months)
			cfg.General.DurationMonths = months
			a.months = months
			a.recompute()
		}
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	case settingsFieldTTL:
		if minutes, err := strconv.Atoi(val); err == nil && minutes > 0 {
			// Applies on next launch; the running resolver keeps its window.
			cfg.Rates.TTLMinutes = minutes
		}
	}

	a.settings.saveErr = config.Save(cfg)
	return cmd
}

// startResolve kicks off a resolution for the current pair.
func (a *App) startResolve() tea.Cmd {
	a.rateReady = false
	a.fetching = true
	a.recompute()
	return tea.Batch(
		a.spinner.Tick,
		fetchRateCmd(a.resolver, a.studyCode(), a.homeCode()),
	)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg, _ := config.Load()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	fields := []field{
		{"State", a.state},
		{"Home Currency", a.homeCode()},
		{"Study Currency", a.studyCode()},
		{"Duration", cli.FormatMonths(a.months)},
		{"Theme", cfg.Appearance.Theme},
		{"Rate TTL", fmt.Sprintf("%dm", cfg.Rates.TTLMinutes)},
	}

	var formBody strings.Builder
	for i, f := range fields {
		// Show text input if currently editing this field
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-16s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(selectedLabelStyle.Render(fmt.Sprintf("%-16s ", f.label+":")))
			formBody.WriteString(selectedStyle.Render(f.value))
		} else {
			formBody.WriteString("  ")
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-16s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// Info card
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.ConfigPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Rate API:     ") + valueStyle.Render(cfg.Rates.BaseURL))
	if len(cfg.Rates.Fallback) > 0 {
		infoBody.WriteString("\n")
		infoBody.WriteString(labelStyle.Render("Overrides:    ") +
			valueStyle.Render(fmt.Sprintf("%d fallback rate(s)", len(cfg.Rates.Fallback))))
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
