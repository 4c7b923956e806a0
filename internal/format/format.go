// Package format renders values for Brazilian Portuguese readers: BRL
// currency, day/month/year dates and short month labels. It is only used at
// the edges (exports, chart labels); calculations never go through it.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
)

var shortMonths = [12]string{"Jan", "Fev", "Mar", "Abr", "Maio", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// MonthLabel returns labels like "Out/26".
func MonthLabel(year int, month time.Month) string {
	yy := year % 100
	return shortMonths[month-1] + "/" + twoDigits(yy)
}

// Date renders t as dd/mm/yyyy in UTC.
func Date(t time.Time) string {
	return t.UTC().Format("02/01/2006")
}

// Number renders d with two decimals, "." as thousands separator and ","
// as decimal separator: 1234.5 -> "1.234,50".
func Number(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

// BRL renders d as Brazilian real: "R$ 1.234,56", "-R$ 10,00".
func BRL(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-R$ " + Number(d.Abs())
	}
	return "R$ " + Number(d)
}

// Kind returns the display name of a transaction kind.
func Kind(k model.Kind) string {
	switch k {
	case model.KindIncome:
		return "Entrada"
	case model.KindExpense:
		return "Saída"
	default:
		return string(k)
	}
}

func twoDigits(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
