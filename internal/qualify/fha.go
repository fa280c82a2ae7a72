package qualify

import (
	"github.com/shopspring/decimal"
)

// FHA program constants. MIP rates follow the schedule in effect since
// March 2023 for base loans at or under the standard limit.
var (
	fhaUpfrontMIPRate = decimal.NewFromFloat(1.75)

	fhaMinScoreFloor   = 500 // below this the borrower is ineligible outright
	fhaMinScoreLowDown = 580 // at or above this the 3.5% minimum down applies

	fhaMinDownLowScore = decimal.NewFromInt(10)
	fhaMinDownStandard = decimal.NewFromFloat(3.5)

	// Back-end DTI ceilings: standard underwriting and the extended ceiling
	// available with compensating factors.
	FHAStandardDTILimit = decimal.NewFromInt(43)
	FHAExtendedDTILimit = decimal.NewFromInt(57)
)

// FHAUpfrontMIP returns the upfront mortgage insurance premium: 1.75% of the
// base loan amount.
func FHAUpfrontMIP(baseLoan decimal.Decimal) decimal.Decimal {
	if baseLoan.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return baseLoan.Mul(fhaUpfrontMIPRate).Div(hundred)
}

// FHAAnnualMIPRate returns the annual MIP rate in percent for the given loan
// term and LTV. Terms over 15 years: 0.50% at or under 95% LTV, 0.55%
// above. Terms of 15 years or less: 0.15% at or under 90% LTV, 0.40% above.
func FHAAnnualMIPRate(termYears int, ltvPercent decimal.Decimal) decimal.Decimal {
	if termYears > 15 {
		if ltvPercent.LessThanOrEqual(decimal.NewFromInt(95)) {
			return decimal.NewFromFloat(0.50)
		}
		return decimal.NewFromFloat(0.55)
	}
	if ltvPercent.LessThanOrEqual(decimal.NewFromInt(90)) {
		return decimal.NewFromFloat(0.15)
	}
	return decimal.NewFromFloat(0.40)
}

// FHAMonthlyMIP returns the monthly MIP payment on the base loan.
func FHAMonthlyMIP(baseLoan decimal.Decimal, termYears int, ltvPercent decimal.Decimal) decimal.Decimal {
	if baseLoan.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	annual := baseLoan.Mul(FHAAnnualMIPRate(termYears, ltvPercent)).Div(hundred)
	return annual.Div(decimal.NewFromInt(12))
}

// FHAMinDownPaymentPercent returns the minimum down payment percent for a
// credit score: 3.5% at 580 and above, 10% from 500 to 579. Scores below
// 500 are ineligible; the caller should check FHAEligibility first, but the
// 10% tier is returned as the conservative answer.
func FHAMinDownPaymentPercent(creditScore int) decimal.Decimal {
	if ClampCreditScore(creditScore) >= fhaMinScoreLowDown {
		return fhaMinDownStandard
	}
	return fhaMinDownLowScore
}

// FHAEligibility is the outcome of the FHA qualification checks.
type FHAEligibility struct {
	Eligible bool     `json:"eligible"`
	Reasons  []string `json:"reasons,omitempty"`
}

// CheckFHAEligibility applies the FHA gates: the 500 credit floor, the
// down-payment minimum for the score tier, and the back-end DTI ceilings.
// A DTI over the standard 43% but within the extended 57% passes with a
// noted caveat rather than failing.
func CheckFHAEligibility(creditScore int, downPaymentPercent, backEndDTIPercent decimal.Decimal) FHAEligibility {
	score := ClampCreditScore(creditScore)
	out := FHAEligibility{Eligible: true}

	if score < fhaMinScoreFloor {
		out.Eligible = false
		out.Reasons = append(out.Reasons, "credit score below the FHA minimum of 500")
	}

	minDown := FHAMinDownPaymentPercent(score)
	if downPaymentPercent.LessThan(minDown) {
		out.Eligible = false
		out.Reasons = append(out.Reasons, "down payment below the "+minDown.StringFixed(1)+"% minimum for this credit score")
	}

	if backEndDTIPercent.GreaterThan(FHAExtendedDTILimit) {
		out.Eligible = false
		out.Reasons = append(out.Reasons, "back-end DTI exceeds the 57% extended ceiling")
	} else if backEndDTIPercent.GreaterThan(FHAStandardDTILimit) {
		out.Reasons = append(out.Reasons, "back-end DTI above 43% requires compensating factors")
	}

	return out
}
