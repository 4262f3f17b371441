// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatMoney formats an amount with a currency symbol and comma grouping,
// rounded to whole units. e.g., ("$", 1234.6) -> "$1,235"
func FormatMoney(symbol string, amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(symbol, -amount)
	}
	return symbol + FormatNumber(int64(math.Round(amount)))
}

// FormatMoneyPrecise formats an amount with two decimal places.
// e.g., ("€", 1234.567) -> "€1,234.57"
func FormatMoneyPrecise(symbol string, amount float64) string {
	if amount < 0 {
		return "-" + FormatMoneyPrecise(symbol, -amount)
	}
	whole := math.Floor(amount)
	cents := int(math.Round((amount - whole) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}
	return fmt.Sprintf("%s%s.%02d", symbol, FormatNumber(int64(whole)), cents)
}

// FormatUSD formats a USD amount rounded to whole dollars.
func FormatUSD(amount float64) string {
	return FormatMoney("$", amount)
}

// FormatRate formats an exchange rate with four decimal places.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.4f", rate)
}

// FormatShare formats a 0-100 percentage with one decimal place.
func FormatShare(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatSignedPercent formats a 0-100 percentage with an explicit sign and
// no decimals, matching the comparison labels. e.g., 5.3 -> "+5%"
func FormatSignedPercent(pct float64) string {
	return fmt.Sprintf("%+.0f%%", pct)
}

// FormatMonths formats a study duration.
func FormatMonths(months int) string {
	if months == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", months)
}
