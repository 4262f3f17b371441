package exchange

// Pair identifies a from/to currency combination.
type Pair struct {
	From string
	To   string
}

// fallbackRates holds rough approximate rates used when the live source is
// unreachable. These are estimates, not quotes.
var fallbackRates = map[Pair]float64{
	{"USD", "EUR"}: 0.85,
	{"USD", "GBP"}: 0.75,
	{"USD", "JPY"}: 150,
	{"USD", "CAD"}: 1.35,
	{"USD", "AUD"}: 1.50,
	{"USD", "CHF"}: 0.90,
	{"USD", "CNY"}: 7.20,
	{"USD", "INR"}: 83.0,
	{"USD", "KRW"}: 1300,
	{"EUR", "USD"}: 1.18,
	{"GBP", "USD"}: 1.25,
	{"JPY", "USD"}: 0.0067,
	{"CAD", "USD"}: 0.74,
	{"AUD", "USD"}: 0.67,
	{"CHF", "USD"}: 1.11,
	{"CNY", "USD"}: 0.14,
	{"INR", "USD"}: 0.012,
	{"KRW", "USD"}: 0.00077,
}

// FallbackRate returns the static approximate rate for a pair, if one exists.
func FallbackRate(from, to string) (float64, bool) {
	rate, ok := fallbackRates[Pair{From: from, To: to}]
	return rate, ok
}
