// Package qualify implements the lending qualification rules: DTI ratios and
// rating bands, PMI rate and removal rules, FHA MIP and eligibility, and the
// VA funding fee table.
//
// Every function here is pure and total over its documented domain.
// Out-of-range inputs (negative income, credit scores outside 300-850) are
// clamped to the nearest valid boundary rather than rejected: this is a
// consumer-education tool and must always produce a plausible answer.
package qualify

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DTI rating band breakpoints, applied to both the front-end and back-end
// ratios (the 28/36/43/50 convention).
var (
	dtiExcellent  = decimal.NewFromInt(28)
	dtiGood       = decimal.NewFromInt(36)
	dtiAcceptable = decimal.NewFromInt(43)
	dtiHigh       = decimal.NewFromInt(50)
)

// FrontEndDTI returns the housing-only debt-to-income ratio as a percent.
// Non-positive income yields zero.
func FrontEndDTI(housingPayment, grossMonthlyIncome decimal.Decimal) decimal.Decimal {
	if grossMonthlyIncome.LessThanOrEqual(decimal.Zero) || housingPayment.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return housingPayment.Div(grossMonthlyIncome).Mul(hundred)
}

// BackEndDTI returns the all-debts debt-to-income ratio as a percent.
func BackEndDTI(housingPayment, otherDebts, grossMonthlyIncome decimal.Decimal) decimal.Decimal {
	if otherDebts.IsNegative() {
		otherDebts = decimal.Zero
	}
	return FrontEndDTI(housingPayment.Add(otherDebts), grossMonthlyIncome)
}

// RateDTI maps a DTI percent to its rating band.
func RateDTI(dtiPercent decimal.Decimal) string {
	switch {
	case dtiPercent.LessThanOrEqual(dtiExcellent):
		return "Excellent"
	case dtiPercent.LessThanOrEqual(dtiGood):
		return "Good"
	case dtiPercent.LessThanOrEqual(dtiAcceptable):
		return "Acceptable"
	case dtiPercent.LessThanOrEqual(dtiHigh):
		return "High"
	default:
		return "Very High"
	}
}

// ClampCreditScore clamps a FICO score to the valid 300-850 range.
func ClampCreditScore(score int) int {
	if score < 300 {
		return 300
	}
	if score > 850 {
		return 850
	}
	return score
}
