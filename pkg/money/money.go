// Package money renders amounts for display. It does not parse.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts with a currency symbol and two fraction digits,
// grouping digits the way Tag's locale does.
type Formatter struct {
	Tag    language.Tag
	Symbol string
}

// USD formats US dollars with American English grouping.
var USD = Formatter{Tag: language.AmericanEnglish, Symbol: "$"}

// Format renders amount as USD, e.g. 1234.5 -> "$1,234.50".
func Format(amount float64) string {
	return USD.Format(amount)
}

// Format renders amount with f's locale and symbol. Negative amounts carry the
// sign before the symbol; non-finite amounts render as zero.
func (f Formatter) Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	sign := ""
	// round first so -0.001 does not render as "-$0.00"
	amount = math.Round(amount*100) / 100
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	p := message.NewPrinter(f.Tag)
	return sign + f.Symbol + p.Sprintf("%.2f", amount)
}
