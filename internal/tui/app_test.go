package tui

import (
	"strings"
	"testing"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/budget"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/exchange"
)

func testApp(t *testing.T) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	resolver := exchange.NewResolver(nil)
	return NewApp("Texas", "EUR", "USD", 12, budget.Expenses{}, resolver)
}

func TestCycleStateWraps(t *testing.T) {
	a := testApp(t)
	a.state = "Washington"
	a.cycleState(1)
	if a.state != "West Virginia" {
		t.Fatalf("state = %q, want West Virginia", a.state)
	}

	a.state = "Arizona"
	a.cycleState(-1)
	if a.state != "West Virginia" {
		t.Fatalf("state after wrap = %q, want West Virginia", a.state)
	}
}

func TestCycleStateUpdatesReference(t *testing.T) {
	a := testApp(t)
	before := a.ref.Total()
	a.cycleState(1)
	if a.ref.Total() == before {
		t.Fatalf("reference costs did not change after state cycle")
	}
}

func TestPlannerDurationClamps(t *testing.T) {
	a := testApp(t)
	a.months = budget.MaxMonths

	model, _, handled := a.updatePlanner("+")
	if !handled {
		t.Fatalf("+ not handled by planner")
	}
	got := model.(App)
	if got.months != budget.MaxMonths {
		t.Fatalf("months = %d, want clamp at %d", got.months, budget.MaxMonths)
	}

	got.months = budget.MinMonths
	model, _, _ = got.updatePlanner("-")
	got = model.(App)
	if got.months != budget.MinMonths {
		t.Fatalf("months = %d, want clamp at %d", got.months, budget.MinMonths)
	}
}

func TestPlannerAveragesAndReset(t *testing.T) {
	a := testApp(t)

	model, _, _ := a.updatePlanner("a")
	got := model.(App)
	if got.expenses.Total() != float64(got.ref.Total()) {
		t.Fatalf("averages total = %v, want %v", got.expenses.Total(), got.ref.Total())
	}
	if !got.hasComparison {
		t.Fatalf("expected comparison after applying averages")
	}
	if got.comparison.Verdict != budget.NearAverage {
		t.Fatalf("verdict at exact average = %v, want NearAverage", got.comparison.Verdict)
	}

	model, _, _ = got.updatePlanner("z")
	got = model.(App)
	if got.expenses.Total() != 0 {
		t.Fatalf("total after reset = %v, want 0", got.expenses.Total())
	}
	if got.hasComparison {
		t.Fatalf("comparison should be absent at zero total")
	}
}

func TestRateValueBeforeFirstResolve(t *testing.T) {
	a := testApp(t)
	if a.rateValue() != 1.0 {
		t.Fatalf("rateValue before resolve = %v, want 1.0", a.rateValue())
	}
}

func TestRateMsgRecomputes(t *testing.T) {
	a := testApp(t)
	model, _, _ := a.updatePlanner("a")
	a = model.(App)

	updated, _ := a.Update(RateMsg{Rate: exchange.Rate{
		From: "USD", To: "EUR", Value: 0.85, Source: exchange.SourceLive,
	}})
	got := updated.(App)

	if !got.rateReady {
		t.Fatalf("rateReady = false after RateMsg")
	}
	if got.fetching {
		t.Fatalf("fetching still true after RateMsg")
	}
	want := got.summary.MonthlyUSD * 0.85
	if got.summary.MonthlyHome != want {
		t.Fatalf("MonthlyHome = %v, want %v", got.summary.MonthlyHome, want)
	}
}

func TestTruncateAndPadHeight(t *testing.T) {
	s := "a\nb\nc\nd"
	if got := truncateHeight(s, 2); got != "a\nb" {
		t.Fatalf("truncateHeight = %q", got)
	}
	padded := padHeight("a", 3)
	if n := len(strings.Split(padded, "\n")); n != 3 {
		t.Fatalf("padHeight lines = %d, want 3", n)
	}
}

func TestIndexOfUnknownCode(t *testing.T) {
	if got := indexOf([]string{"EUR", "USD"}, "ZZZ"); got != 0 {
		t.Fatalf("indexOf unknown = %d, want 0", got)
	}
}
