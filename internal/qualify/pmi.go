package qualify

import (
	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
)

// PMI cancellation thresholds as a percent of the original home value.
// 80% is the borrower-requestable threshold; 78% cancels automatically.
var (
	pmiRequestLTV = decimal.NewFromFloat(0.80)
	pmiAutoLTV    = decimal.NewFromFloat(0.78)
)

// pmiRateTable holds annual PMI rates in percent by credit floor and LTV
// band. Rows are ordered best credit first; within a row rates rise with
// LTV, and at equal LTV a lower credit floor never gets a cheaper rate.
var pmiRateTable = []struct {
	creditFloor int
	ltv85       decimal.Decimal // LTV <= 85
	ltv90       decimal.Decimal // LTV <= 90
	ltv95       decimal.Decimal // LTV <= 95
	ltvAbove95  decimal.Decimal // LTV > 95
}{
	{760, decimal.NewFromFloat(0.19), decimal.NewFromFloat(0.30), decimal.NewFromFloat(0.46), decimal.NewFromFloat(0.58)},
	{740, decimal.NewFromFloat(0.25), decimal.NewFromFloat(0.41), decimal.NewFromFloat(0.59), decimal.NewFromFloat(0.70)},
	{720, decimal.NewFromFloat(0.28), decimal.NewFromFloat(0.48), decimal.NewFromFloat(0.70), decimal.NewFromFloat(0.87)},
	{700, decimal.NewFromFloat(0.33), decimal.NewFromFloat(0.57), decimal.NewFromFloat(0.87), decimal.NewFromFloat(1.03)},
	{680, decimal.NewFromFloat(0.38), decimal.NewFromFloat(0.65), decimal.NewFromFloat(0.99), decimal.NewFromFloat(1.21)},
	{660, decimal.NewFromFloat(0.45), decimal.NewFromFloat(0.79), decimal.NewFromFloat(1.20), decimal.NewFromFloat(1.46)},
	{640, decimal.NewFromFloat(0.52), decimal.NewFromFloat(0.93), decimal.NewFromFloat(1.41), decimal.NewFromFloat(1.71)},
	{300, decimal.NewFromFloat(0.58), decimal.NewFromFloat(1.04), decimal.NewFromFloat(1.58), decimal.NewFromFloat(1.86)},
}

// PMIAnnualRate returns the annual PMI rate in percent for a conventional
// loan at the given LTV percent and credit score. LTV at or below 80 carries
// no PMI. The table is monotonic in both dimensions.
func PMIAnnualRate(ltvPercent decimal.Decimal, creditScore int) decimal.Decimal {
	if ltvPercent.LessThanOrEqual(decimal.NewFromInt(80)) {
		return decimal.Zero
	}
	score := ClampCreditScore(creditScore)
	for _, row := range pmiRateTable {
		if score < row.creditFloor {
			continue
		}
		switch {
		case ltvPercent.LessThanOrEqual(decimal.NewFromInt(85)):
			return row.ltv85
		case ltvPercent.LessThanOrEqual(decimal.NewFromInt(90)):
			return row.ltv90
		case ltvPercent.LessThanOrEqual(decimal.NewFromInt(95)):
			return row.ltv95
		default:
			return row.ltvAbove95
		}
	}
	return decimal.Zero // unreachable: the 300 floor catches every clamped score
}

// PMIMonthlyPremium returns the monthly PMI premium for a loan amount at the
// given annual rate percent.
func PMIMonthlyPremium(loanAmount, annualRatePercent decimal.Decimal) decimal.Decimal {
	if loanAmount.LessThanOrEqual(decimal.Zero) || annualRatePercent.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return loanAmount.Mul(annualRatePercent).Div(hundred).Div(decimal.NewFromInt(domain.MonthsPerYear))
}

// PMIRemovalMonths walks the amortization schedule and returns the first
// month the balance reaches 80% of the original home value (borrower may
// request cancellation) and the first month it reaches 78% (automatic
// cancellation). Zero means the threshold is never reached within the term,
// or PMI never applied. The 78% month is always at or after the 80% month.
func PMIRemovalMonths(terms domain.LoanTerms, originalValue decimal.Decimal) (requestMonth, autoMonth int) {
	if !terms.Valid() || originalValue.LessThanOrEqual(decimal.Zero) {
		return 0, 0
	}
	requestAt := originalValue.Mul(pmiRequestLTV)
	autoAt := originalValue.Mul(pmiAutoLTV)
	if terms.Principal.LessThanOrEqual(requestAt) {
		return 0, 0 // started at or below 80% LTV, PMI never applied
	}
	for _, row := range finance.BuildSchedule(terms, nil) {
		if requestMonth == 0 && row.RemainingBalance.LessThanOrEqual(requestAt) {
			requestMonth = row.MonthIndex
		}
		if row.RemainingBalance.LessThanOrEqual(autoAt) {
			autoMonth = row.MonthIndex
			return requestMonth, autoMonth
		}
	}
	return requestMonth, autoMonth
}
