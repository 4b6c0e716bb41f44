package pkg

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders v as Brazilian currency, e.g. "R$ 1.234,50".
func FormatBRL(v decimal.Decimal) string {
	return "R$ " + ptBR.Sprint(number.Decimal(v.Round(2).InexactFloat64(), number.Scale(2)))
}

// FormatBRLFloat is FormatBRL for backend float amounts.
func FormatBRLFloat(v float64) string {
	return FormatBRL(decimal.NewFromFloat(v))
}
