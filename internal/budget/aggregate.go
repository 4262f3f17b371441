package budget

import "github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/reference"

// Summary holds monthly and whole-duration totals in both currencies.
// Every field is a pure function of its inputs; nothing here is cached.
type Summary struct {
	MonthlyUSD  float64
	MonthlyHome float64
	TotalUSD    float64
	TotalHome   float64
	Months      int
}

// Aggregate combines per-category amounts with an exchange rate and a study
// duration. Inputs are assumed pre-validated; the function is total over its
// domain and safe to call on every input change.
func Aggregate(e Expenses, rate float64, months int) Summary {
	monthlyUSD := e.Total()
	monthlyHome := monthlyUSD * rate
	return Summary{
		MonthlyUSD:  monthlyUSD,
		MonthlyHome: monthlyHome,
		TotalUSD:    monthlyUSD * float64(months),
		TotalHome:   monthlyHome * float64(months),
		Months:      months,
	}
}

// Verdict classifies a budget against the state average.
type Verdict int

const (
	// NearAverage means the total is within 10% of the reference, either side.
	NearAverage Verdict = iota
	// AboveAverage means more than 10% over the reference.
	AboveAverage
	// BelowAverage means more than 10% under the reference.
	BelowAverage
)

// String returns the display label for the verdict.
func (v Verdict) String() string {
	switch v {
	case NearAverage:
		return "near average"
	case AboveAverage:
		return "above average"
	case BelowAverage:
		return "below average"
	default:
		return "unknown"
	}
}

// nearAverageBandPct is the percentage band treated as "close to average".
const nearAverageBandPct = 10.0

// Comparison describes how a monthly total relates to a state's reference.
type Comparison struct {
	ReferenceTotal float64
	Difference     float64
	PercentDiff    float64
	Verdict        Verdict
}

// Compare classifies a monthly USD total against a state's reference costs.
// The band check wins over the sign check: anything strictly within 10% of
// the reference is near average regardless of direction. Returns false when
// the total is not positive (nothing to compare) or the reference sums to
// zero (divide-by-zero guard; cannot happen with the built-in table).
func Compare(monthlyUSD float64, ref reference.StateCosts) (Comparison, bool) {
	refTotal := float64(ref.Total())
	if monthlyUSD <= 0 || refTotal == 0 {
		return Comparison{}, false
	}

	diff := monthlyUSD - refTotal
	pct := diff / refTotal * 100

	verdict := NearAverage
	switch {
	case pct < nearAverageBandPct && pct > -nearAverageBandPct:
	case diff > 0:
		verdict = AboveAverage
	default:
		verdict = BelowAverage
	}

	return Comparison{
		ReferenceTotal: refTotal,
		Difference:     diff,
		PercentDiff:    pct,
		Verdict:        verdict,
	}, true
}

// Row is one category line in a breakdown: the USD amount, its home-currency
// equivalent, and its share of the monthly total.
type Row struct {
	Category Category
	USD      float64
	Home     float64
	Share    float64
}

// Breakdown produces per-category rows in declared category order, omitting
// zero-amount categories. The result is built fresh on every call. An empty
// slice is returned when the monthly total is zero; callers show a neutral
// prompt instead.
func Breakdown(e Expenses, rate float64) []Row {
	total := e.Total()
	if total <= 0 {
		return nil
	}

	rows := make([]Row, 0, numCategories)
	for _, c := range Categories() {
		amount := e.Amount(c)
		if amount <= 0 {
			continue
		}
		rows = append(rows, Row{
			Category: c,
			USD:      amount,
			Home:     amount * rate,
			Share:    amount / total * 100,
		})
	}
	return rows
}
