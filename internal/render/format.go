package render

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wonny/techscreener/internal/contracts"
)

// NotAvailable is shown for absent optional ratios
const NotAvailable = "N/A"

// CSS classes
const (
	ClassSuccess = "text-success"
	ClassDanger  = "text-danger"
)

var numberPrinter = message.NewPrinter(language.English)

// fixed formats v with exactly places decimals
func fixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

// Money formats a price: $12.50
func Money(v float64) string {
	return "$" + fixed(v, 2)
}

// Billions formats a market cap already expressed in billions: $3.2B
func Billions(v float64) string {
	return "$" + fixed(v, 1) + "B"
}

// Ratio formats an optional ratio, N/A when absent or zero
func Ratio(v *float64, places int32) string {
	if !contracts.HasRatio(v) {
		return NotAvailable
	}
	return fixed(*v, places)
}

// Percent formats a signed percentage with one decimal: -3.4%
func Percent(v float64) string {
	return fixed(v, 1) + "%"
}

// GrowthClass styles a growth figure by sign (zero counts as positive)
func GrowthClass(v float64) string {
	if v >= 0 {
		return ClassSuccess
	}
	return ClassDanger
}

// Score formats a sentiment score: 0.75
func Score(v float64) string {
	return fixed(v, 2)
}

// TrendClass maps a sentiment trend onto its indicator class
func TrendClass(trend string) string {
	switch trend {
	case "up":
		return "trend-up"
	case "down":
		return "trend-down"
	}
	return ""
}

// Volume formats an integer with thousands separators: 1,234,567
func Volume(n int64) string {
	return numberPrinter.Sprintf("%d", n)
}

// Plain formats a number the shortest way that round-trips
func Plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
