package calculators

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(domain.MonthsPerYear)
)

// usd renders a whole-dollar figure for summaries and insights. Detail
// values stay full precision; this is prose formatting only.
func usd(v decimal.Decimal) string {
	return "$" + v.RoundBank(0).String()
}

// pct renders a percent figure for prose.
func pct(v decimal.Decimal) string {
	return v.StringFixed(2) + "%"
}

// monthsLabel renders a month count as "N years M months" prose.
func monthsLabel(months int) string {
	years := months / domain.MonthsPerYear
	rem := months % domain.MonthsPerYear
	switch {
	case years == 0:
		return plural(rem, "month")
	case rem == 0:
		return plural(years, "year")
	default:
		return plural(years, "year") + " " + plural(rem, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
