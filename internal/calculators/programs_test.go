package calculators

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortcalc/mortcalc/internal/qualify"
)

func TestPMI_TwentyPercentDownNotRequired(t *testing.T) {
	r := CalculatePMI(PMIInputs{
		HomePrice:   d("400000"),
		DownPayment: d("80000"),
		AnnualRate:  d("6.5"),
		TermYears:   30,
		CreditScore: 740,
	})
	require.NotNil(t, r)

	assert.False(t, r.Required)
	assert.True(t, r.MonthlyPremium.IsZero())
	assert.Zero(t, r.AutoMonth)
}

func TestPMI_TenPercentDown(t *testing.T) {
	r := CalculatePMI(PMIInputs{
		HomePrice:   d("400000"),
		DownPayment: d("40000"),
		AnnualRate:  d("6.5"),
		TermYears:   30,
		CreditScore: 740,
	})
	require.NotNil(t, r)

	assert.True(t, r.Required)
	assert.True(t, r.MonthlyPremium.IsPositive())
	assert.Positive(t, r.RequestMonth)
	assert.GreaterOrEqual(t, r.AutoMonth, r.RequestMonth,
		"78%% cancellation can never precede the 80%% request threshold")
	assert.Equal(t,
		r.MonthlyPremium.Mul(decimal.NewFromInt(int64(r.AutoMonth))).StringFixed(2),
		r.TotalPremiums.StringFixed(2))
}

func TestFHA_PremiumArithmetic(t *testing.T) {
	r := CalculateFHA(FHAInputs{
		HomePrice:      d("300000"),
		DownPayment:    d("10500"), // 3.5%
		AnnualRate:     d("6.5"),
		TermYears:      30,
		CreditScore:    680,
		FinanceUpfront: true,
	})
	require.NotNil(t, r)

	assert.Equal(t, "289500.00", r.BaseLoan.StringFixed(2))
	assert.Equal(t, "5066.25", r.UpfrontMIP.StringFixed(2), "upfront MIP is 1.75%% of the base loan")
	assert.Equal(t, "294566.25", r.TotalLoan.StringFixed(2), "financed MIP rolls into the balance")
	// 96.5% LTV on a 30-year loan carries the 0.55% annual MIP.
	assert.Equal(t, "132.69", r.MonthlyMIP.StringFixed(2))
	assert.True(t, r.Eligibility.Eligible)
}

func TestFHA_LowScoreRaisesMinimumDown(t *testing.T) {
	r := CalculateFHA(FHAInputs{
		HomePrice:   d("300000"),
		DownPayment: d("10500"), // 3.5%, below the 10% floor for this score
		AnnualRate:  d("6.5"),
		TermYears:   30,
		CreditScore: 550,
	})
	require.NotNil(t, r)

	assert.Equal(t, "10.0", r.MinDownPercent.StringFixed(1))
	assert.False(t, r.Eligibility.Eligible)
	assert.NotEmpty(t, r.Eligibility.Reasons)
}

func TestVA_FundingFeeTiers(t *testing.T) {
	base := VAInputs{
		HomePrice:  d("400000"),
		AnnualRate: d("6.0"),
		TermYears:  30,
		Usage:      qualify.VAFirstUse,
		FinanceFee: true,
	}

	first := CalculateVA(base)
	require.NotNil(t, first)
	assert.Equal(t, "8600.00", first.FundingFee.StringFixed(2), "zero down first use pays 2.15%%")
	assert.Equal(t, "408600.00", first.TotalLoan.StringFixed(2))
	assert.True(t, first.ZeroDown)

	subsequent := base
	subsequent.Usage = qualify.VASubsequentUse
	r := CalculateVA(subsequent)
	require.NotNil(t, r)
	assert.Equal(t, "3.3", r.FundingFeeRate.StringFixed(1), "zero down subsequent use pays 3.30%%")

	tenDown := base
	tenDown.DownPayment = d("40000")
	r = CalculateVA(tenDown)
	require.NotNil(t, r)
	assert.Equal(t, "1.25", r.FundingFeeRate.StringFixed(2))

	exempt := base
	exempt.FeeExempt = true
	r = CalculateVA(exempt)
	require.NotNil(t, r)
	assert.True(t, r.FundingFee.IsZero(), "exempt borrowers pay no funding fee")
	assert.Equal(t, "400000.00", r.TotalLoan.StringFixed(2))
}

func TestVA_DescriptorParsesUsageAndExemption(t *testing.T) {
	desc := vaDescriptor()
	base := Params{"homePrice": "400000", "interestRate": "6.0"}

	first := desc.Run(base)
	require.NotNil(t, first)
	rate, ok := first.Detail("fundingFeeRate")
	require.True(t, ok)
	assert.Equal(t, "2.15", rate.Value.StringFixed(2), "defaults are first use, not exempt")

	subsequent := Params{"homePrice": "400000", "interestRate": "6.0", "usage": "subsequent"}
	r := desc.Run(subsequent)
	require.NotNil(t, r)
	rate, ok = r.Detail("fundingFeeRate")
	require.True(t, ok)
	assert.Equal(t, "3.30", rate.Value.StringFixed(2))

	exempt := Params{"homePrice": "400000", "interestRate": "6.0", "feeExempt": "yes"}
	r = desc.Run(exempt)
	require.NotNil(t, r)
	fee, ok := r.Detail("fundingFee")
	require.True(t, ok)
	assert.True(t, fee.Value.IsZero())
}

func TestDTI_RatiosAndRating(t *testing.T) {
	r := CalculateDTI(DTIInputs{
		AnnualIncome:   d("120000"),
		MonthlyHousing: d("2800"),
		MonthlyDebts:   d("800"),
	})
	require.NotNil(t, r)

	assert.Equal(t, "28.0", r.FrontEnd.StringFixed(1))
	assert.Equal(t, "36.0", r.BackEnd.StringFixed(1))
	assert.Equal(t, "Good", r.Rating)
	assert.Equal(t, "700.00", r.Headroom.StringFixed(2), "headroom to the 43%% cap")
}

func TestDTI_OverextendedHasNoHeadroom(t *testing.T) {
	r := CalculateDTI(DTIInputs{
		AnnualIncome:   d("60000"),
		MonthlyHousing: d("2000"),
		MonthlyDebts:   d("1000"),
	})
	require.NotNil(t, r)

	assert.Equal(t, "60.0", r.BackEnd.StringFixed(1))
	assert.Equal(t, "Very High", r.Rating)
	assert.True(t, r.Headroom.IsZero(), "headroom clamps at zero, never negative")
}
