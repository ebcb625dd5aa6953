package cmd

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// moneyPrinter groups thousands so that larger pay amounts read as
// "$1,234.56".
var moneyPrinter = message.NewPrinter(language.English)

// formatMoney renders a pay amount with its currency symbol.
func formatMoney(currency string, amount float64) string {
	return currency + moneyPrinter.Sprintf("%.2f", amount)
}

// formatHours renders rounded hours with one decimal place.
func formatHours(hours float64) string {
	return moneyPrinter.Sprintf("%.1f", hours)
}
