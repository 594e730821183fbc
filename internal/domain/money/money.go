package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders decimal amounts as localized currency strings.
// Every surface that shows money (quote detail, list rows, PDF) must go
// through the same Formatter instance so figures never drift between sinks.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

func NewFormatter(locale, symbol string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	return Formatter{printer: message.NewPrinter(tag), symbol: symbol}
}

// Format rounds to two decimal places and applies locale grouping and the
// currency symbol. Rounding happens here and only here; the numeric model
// keeps full precision.
func (f Formatter) Format(v decimal.Decimal) string {
	amount, _ := v.Round(2).Float64()
	return f.printer.Sprintf("%s %v", f.symbol, number.Decimal(amount, number.Scale(2)))
}

func (f Formatter) Symbol() string { return f.symbol }
