// Package money renders commission amounts the way the panel shows them:
// Colombian pesos, thousands-grouped, no decimals.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP renders an amount as "$ 15.000". Fractions round to the nearest
// peso; the panel never displays cents.
func FormatCOP(amount float64) string {
	return printer.Sprintf("$ %d", int64(math.Round(amount)))
}
