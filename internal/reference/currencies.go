package reference

import "sort"

// Currency holds display metadata for a supported currency code.
type Currency struct {
	Code   string
	Name   string
	Symbol string
}

// Currencies maps ISO codes to their display metadata.
var Currencies = map[string]Currency{
	"USD": {Code: "USD", Name: "US Dollar", Symbol: "$"},
	"EUR": {Code: "EUR", Name: "Euro", Symbol: "€"},
	"GBP": {Code: "GBP", Name: "British Pound", Symbol: "£"},
	"JPY": {Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	"CAD": {Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
	"AUD": {Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	"CHF": {Code: "CHF", Name: "Swiss Franc", Symbol: "CHF"},
	"CNY": {Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
	"INR": {Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	"KRW": {Code: "KRW", Name: "South Korean Won", Symbol: "₩"},
}

// CurrencyByCode returns the metadata for a currency code.
func CurrencyByCode(code string) (Currency, bool) {
	c, ok := Currencies[code]
	return c, ok
}

// IsCurrency reports whether code is one of the supported currencies.
func IsCurrency(code string) bool {
	_, ok := Currencies[code]
	return ok
}

// Symbol returns the display symbol for a code, falling back to the code itself.
func Symbol(code string) string {
	if c, ok := Currencies[code]; ok {
		return c.Symbol
	}
	return code
}

// CurrencyCodes returns all supported codes in sorted order.
func CurrencyCodes() []string {
	codes := make([]string, 0, len(Currencies))
	for code := range Currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
