package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortcalc/mortcalc/internal/domain"
)

func TestBuildSchedule_FullTerm(t *testing.T) {
	lt := terms(360000, 6.75, 30)
	schedule := BuildSchedule(lt, nil)

	require.Len(t, schedule, 360, "no extra payments means exactly termYears*12 rows")
	assert.True(t, schedule[len(schedule)-1].RemainingBalance.IsZero(), "final row should retire the balance")

	// Principal conservation: total paid = principal + total interest.
	totalPaid := schedule.TotalPaid()
	expected := lt.Principal.Add(schedule.TotalInterest())
	assert.Equal(t, expected.StringFixed(2), totalPaid.StringFixed(2))
}

func TestBuildSchedule_BalanceMonotonic(t *testing.T) {
	lt := terms(275000, 7.125, 15)
	schedule := BuildSchedule(lt, nil)
	require.NotEmpty(t, schedule)

	prev := lt.Principal
	for _, row := range schedule {
		assert.True(t, row.RemainingBalance.LessThanOrEqual(prev),
			"balance must never increase (month %d)", row.MonthIndex)
		prev = row.RemainingBalance
	}
}

func TestBuildSchedule_InterestIsBalanceTimesRate(t *testing.T) {
	lt := terms(200000, 6.0, 30)
	schedule := BuildSchedule(lt, nil)
	require.NotEmpty(t, schedule)

	rate := lt.MonthlyRate()
	assert.Equal(t, lt.Principal.Mul(rate).StringFixed(2), schedule[0].Interest.StringFixed(2))

	balance := schedule[99].RemainingBalance
	assert.Equal(t, balance.Mul(rate).StringFixed(2), schedule[100].Interest.StringFixed(2))
}

func TestBuildSchedule_ZeroRate(t *testing.T) {
	lt := terms(360000, 0, 30)
	schedule := BuildSchedule(lt, nil)

	require.Len(t, schedule, 360)
	assert.True(t, schedule.TotalInterest().IsZero(), "zero-rate loan accrues no interest")
	assert.Equal(t, "1000.00", schedule[0].Payment.StringFixed(2))
}

func TestBuildSchedule_InvalidTerms(t *testing.T) {
	assert.Nil(t, BuildSchedule(terms(0, 6.5, 30), nil))
	assert.Nil(t, BuildSchedule(terms(-5000, 6.5, 30), nil))
	assert.Nil(t, BuildSchedule(terms(300000, 6.5, 0), nil))
}

func TestBuildSchedule_ExtraMonthlyShortensPayoff(t *testing.T) {
	lt := terms(360000, 6.75, 30)
	base := BuildSchedule(lt, nil)
	require.NotEmpty(t, base)

	prevPayoff := base.PayoffMonth()
	prevInterest := base.TotalInterest()
	for _, extra := range []int64{100, 250, 500, 1000} {
		plan := &domain.ExtraPaymentPlan{ExtraMonthly: decimal.NewFromInt(extra)}
		schedule := BuildSchedule(lt, plan)
		require.NotEmpty(t, schedule)

		payoff := schedule.PayoffMonth()
		interest := schedule.TotalInterest()
		assert.LessOrEqual(t, payoff, prevPayoff, "more extra principal never lengthens payoff")
		assert.True(t, interest.LessThanOrEqual(prevInterest), "more extra principal never adds interest")
		prevPayoff, prevInterest = payoff, interest
	}
}

func TestBuildSchedule_LumpSum(t *testing.T) {
	lt := terms(300000, 6.5, 30)
	plan := &domain.ExtraPaymentPlan{LumpSum: decimal.NewFromInt(50000), LumpSumMonth: 12}
	schedule := BuildSchedule(lt, plan)
	require.NotEmpty(t, schedule)

	base := BuildSchedule(lt, nil)
	// Balance after month 12 drops by the lump sum relative to the base run.
	diff := base.BalanceAt(12).Sub(schedule.BalanceAt(12))
	assert.Equal(t, "50000.00", diff.StringFixed(2))
	assert.Less(t, schedule.PayoffMonth(), base.PayoffMonth())
}

func TestBuildSchedule_ExtraCappedAtBalance(t *testing.T) {
	lt := terms(10000, 5.0, 5)
	plan := &domain.ExtraPaymentPlan{LumpSum: decimal.NewFromInt(1000000), LumpSumMonth: 1}
	schedule := BuildSchedule(lt, plan)
	require.NotEmpty(t, schedule)

	for _, row := range schedule {
		assert.False(t, row.RemainingBalance.IsNegative(), "balance must never go negative")
	}
	assert.True(t, schedule[len(schedule)-1].RemainingBalance.IsZero())
}

func TestBuildSchedule_Deterministic(t *testing.T) {
	lt := terms(325000, 6.875, 30)
	plan := &domain.ExtraPaymentPlan{ExtraMonthly: decimal.NewFromInt(150), ExtraAnnual: decimal.NewFromInt(2000)}

	a := BuildSchedule(lt, plan)
	b := BuildSchedule(lt, plan)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.True(t, a[i].RemainingBalance.Equal(b[i].RemainingBalance))
		assert.True(t, a[i].Payment.Equal(b[i].Payment))
	}
}

func TestInterestThrough(t *testing.T) {
	lt := terms(300000, 6.5, 30)
	schedule := BuildSchedule(lt, nil)
	require.NotEmpty(t, schedule)

	assert.True(t, InterestThrough(schedule, 12).LessThan(InterestThrough(schedule, 24)))
	assert.Equal(t, schedule.TotalInterest().StringFixed(2), InterestThrough(schedule, 400).StringFixed(2))
}
