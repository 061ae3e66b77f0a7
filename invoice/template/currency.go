package template

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol prefixes every amount printed on an invoice.
const CurrencySymbol = "₹"

var printer = message.NewPrinter(language.English)

// FormatCurrency rounds n to two decimals (halves round up) and groups the integer part in
// comma separated triples: 1234567.005 > "₹1,234,567", 1234.5 > "₹1,234.5".
// Grouping is always Western, never lakh/crore.
func FormatCurrency(n float64) string {
	return CurrencySymbol + printer.Sprint(number.Decimal(roundCents(n), number.MaxFractionDigits(2)))
}

// The explicit conversion keeps the compiler from fusing the multiply and add,
// which would round differently on some architectures.
func roundCents(n float64) float64 {
	return math.Floor(float64(n*100)+0.5) / 100
}
