package qualify

import (
	"github.com/shopspring/decimal"
)

// VAUsage distinguishes first use of the VA entitlement from subsequent use,
// which changes the zero-down funding fee tier.
type VAUsage string

const (
	VAFirstUse      VAUsage = "first"
	VASubsequentUse VAUsage = "subsequent"
)

// VAFundingFeeRate returns the funding fee as a percent of the loan amount.
// Tiers: under 5% down, 2.15% first use / 3.30% subsequent; 5% to under 10%
// down, 1.50% either way; 10% or more down, 1.25%. Negative down payments
// are clamped to zero. VA loans never carry PMI.
func VAFundingFeeRate(downPaymentPercent decimal.Decimal, usage VAUsage) decimal.Decimal {
	if downPaymentPercent.IsNegative() {
		downPaymentPercent = decimal.Zero
	}
	switch {
	case downPaymentPercent.GreaterThanOrEqual(decimal.NewFromInt(10)):
		return decimal.NewFromFloat(1.25)
	case downPaymentPercent.GreaterThanOrEqual(decimal.NewFromInt(5)):
		return decimal.NewFromFloat(1.50)
	case usage == VASubsequentUse:
		return decimal.NewFromFloat(3.30)
	default:
		return decimal.NewFromFloat(2.15)
	}
}

// VAFundingFee returns the funding fee amount for a loan.
func VAFundingFee(loanAmount, downPaymentPercent decimal.Decimal, usage VAUsage) decimal.Decimal {
	if loanAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return loanAmount.Mul(VAFundingFeeRate(downPaymentPercent, usage)).Div(hundred)
}
