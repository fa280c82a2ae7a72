package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Unit identifies how a detail value should be rendered. Units are explicit
// rather than inferred from key names so every consumer (console, JSON,
// email export) formats the same value the same way.
type Unit string

const (
	UnitUSD     Unit = "usd"
	UnitPercent Unit = "percent"
	UnitMonths  Unit = "months"
	UnitYears   Unit = "years"
	UnitCount   Unit = "count"
	UnitText    Unit = "text"
)

// Detail is a single labeled figure in a calculator result. Text carries the
// value for UnitText details; Value carries it for every numeric unit.
type Detail struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Text  string          `json:"text,omitempty"`
	Unit  Unit            `json:"unit"`
}

// FormatValue renders the detail value with its unit suffix or prefix.
func (d Detail) FormatValue() string {
	switch d.Unit {
	case UnitUSD:
		return "$" + groupThousands(d.Value.StringFixed(2))
	case UnitPercent:
		return d.Value.StringFixed(2) + "%"
	case UnitMonths:
		return d.Value.StringFixed(0) + " mo"
	case UnitYears:
		return d.Value.StringFixed(0) + " yr"
	case UnitText:
		return d.Text
	default:
		return d.Value.String()
	}
}

// LineItem is a categorized cost entry, used by the closing-costs and
// mortgage-cost calculators.
type LineItem struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Category   string          `json:"category"`
	IsEstimate bool            `json:"isEstimate,omitempty"`
}

// ChartPoint is one sample of a series a caller may chart. X is a month or
// year index depending on the calculator; Series distinguishes parallel runs.
type ChartPoint struct {
	Series string          `json:"series"`
	X      int             `json:"x"`
	Y      decimal.Decimal `json:"y"`
}

// Result is the uniform shape every calculator emits. Details is ordered so
// that rendering is deterministic. A nil Result means the inputs were
// degenerate and the caller should show an empty state.
type Result struct {
	Calculator string       `json:"calculator"`
	Summary    string       `json:"summary"`
	Details    []Detail     `json:"details"`
	Insights   []string     `json:"insights,omitempty"`
	ChartData  []ChartPoint `json:"chartData,omitempty"`
	LineItems  []LineItem   `json:"lineItems,omitempty"`
}

// Detail returns the detail with the given key, if present.
func (r *Result) Detail(key string) (Detail, bool) {
	for _, d := range r.Details {
		if d.Key == key {
			return d, true
		}
	}
	return Detail{}, false
}

// AddUSD appends a dollar-valued detail.
func (r *Result) AddUSD(key, label string, v decimal.Decimal) {
	r.Details = append(r.Details, Detail{Key: key, Label: label, Value: v, Unit: UnitUSD})
}

// AddPercent appends a percent-valued detail.
func (r *Result) AddPercent(key, label string, v decimal.Decimal) {
	r.Details = append(r.Details, Detail{Key: key, Label: label, Value: v, Unit: UnitPercent})
}

// AddMonths appends a month-count detail.
func (r *Result) AddMonths(key, label string, months int) {
	r.Details = append(r.Details, Detail{Key: key, Label: label, Value: decimal.NewFromInt(int64(months)), Unit: UnitMonths})
}

// AddYears appends a year-count detail.
func (r *Result) AddYears(key, label string, years int) {
	r.Details = append(r.Details, Detail{Key: key, Label: label, Value: decimal.NewFromInt(int64(years)), Unit: UnitYears})
}

// AddText appends a free-text detail.
func (r *Result) AddText(key, label, text string) {
	r.Details = append(r.Details, Detail{Key: key, Label: label, Text: text, Unit: UnitText})
}

// groupThousands inserts commas into the integer part of a fixed-point
// string ("1234567.89" -> "1,234,567.89").
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
