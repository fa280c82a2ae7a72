// Package output renders calculator results for the console, as JSON and as
// an email-export HTML body. All three read the same Result contract and the
// explicit per-detail unit, so a figure formats identically everywhere.
package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders a dollar amount with thousands separators and two
// decimal places.
func FormatCurrency(v decimal.Decimal) string {
	s := v.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	out := "$" + b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPercent renders a percentage with two decimal places.
func FormatPercent(v decimal.Decimal) string {
	return v.StringFixed(2) + "%"
}

// TitleCase turns a camelCase detail key into a human label
// ("breakEvenMonths" -> "Break Even Months"). Labels carried on the Detail
// itself take precedence; this is the fallback for ad hoc keys.
func TitleCase(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(toUpper(r))
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// formatMonths renders a month count as prose.
func formatMonths(v decimal.Decimal) string {
	months := int(v.IntPart())
	years, rem := months/12, months%12
	switch {
	case years == 0:
		return fmt.Sprintf("%d mo", rem)
	case rem == 0:
		return fmt.Sprintf("%d yr", years)
	default:
		return fmt.Sprintf("%d yr %d mo", years, rem)
	}
}
