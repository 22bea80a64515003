// Package format renders monetary values and rates for display.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a whole-dollar currency string with thousands separators,
// rounding half away from zero (e.g., 1234.56 -> "$1,235", -80 -> "-$80").
func Currency(amount float64) string {
	rounded := math.Round(amount)
	formatted := printer.Sprintf("%.0f", math.Abs(rounded))
	if rounded < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// CurrencyCents returns a currency string with cents (e.g., "-$1,234.56").
func CurrencyCents(amount float64) string {
	formatted := printer.Sprintf("%.2f", math.Abs(amount))
	if amount < 0 && formatted != "0.00" {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percentage returns a rate with two decimals (e.g., 6.5 -> "6.50%").
func Percentage(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}

// Amount returns a plain two-decimal number for machine-readable exports.
func Amount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
