// Package currency renders monetary amounts for display. It is presentational
// only; nothing here feeds back into order computation.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts with a currency symbol using locale-aware digit
// grouping.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter builds a formatter for the given BCP 47 locale and symbol.
// Unparseable locales fall back to British English, the storefront's default.
func NewFormatter(locale, symbol string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BritishEnglish
	}
	if symbol == "" {
		symbol = "£"
	}
	return Formatter{symbol: symbol, printer: message.NewPrinter(tag)}
}

// Format renders the amount with two decimal places, e.g. "£1,234.50".
func (f Formatter) Format(amount float64) string {
	return f.printer.Sprintf("%s%.2f", f.symbol, amount)
}

var defaultFormatter = NewFormatter("en-GB", "£")

// Format renders the amount in the storefront's default locale (GBP).
func Format(amount float64) string {
	return defaultFormatter.Format(amount)
}
