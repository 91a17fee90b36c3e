// Package format textos de presentación: etiquetas de estado y montos en dólares.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// StatusLabel convierte un estado snake_case en título: "in_transit" -> "In Transit".
func StatusLabel(status string) string {
	// cases.Caser no se comparte entre goroutines.
	return cases.Title(language.English).String(strings.ReplaceAll(status, "_", " "))
}

// Money monto con separador de miles y dos decimales: "$4,499.50".
func Money(d decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("$%.2f", d.Round(2).InexactFloat64())
}

// CompactMoney monto en miles sin decimales: "$50K".
func CompactMoney(d decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("$%dK", d.Div(decimal.NewFromInt(1000)).Round(0).IntPart())
}
