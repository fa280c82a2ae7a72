package finance

import (
	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
)

// scheduleSafetyMonths bounds the simulation loop past the nominal term so a
// residual from decimal precision can never spin the loop.
const scheduleSafetyMonths = 2

// retireTolerance absorbs sub-cent residue from decimal division so the
// final scheduled month retires the loan instead of spilling a micro-payment
// into an extra row.
var retireTolerance = decimal.NewFromFloat(0.005)

// BuildSchedule produces one row per month until the balance reaches zero.
// Each month accrues interest on the running balance, applies the scheduled
// principal, then any extra principal the plan calls for that month, capped
// so the balance never goes negative. The final payment is truncated to
// retire the balance exactly. Invalid terms return nil (empty state).
//
// Rows carry full-precision decimals; rounding to cents is a presentation
// concern.
func BuildSchedule(terms domain.LoanTerms, extra *domain.ExtraPaymentPlan) domain.Schedule {
	if !terms.Valid() {
		return nil
	}

	payment := PaymentForTerms(terms)
	rate := terms.MonthlyRate()
	balance := terms.Principal
	maxMonths := terms.TermMonths() + scheduleSafetyMonths

	schedule := make(domain.Schedule, 0, terms.TermMonths())
	for month := 1; month <= maxMonths && balance.GreaterThan(decimal.Zero); month++ {
		interest := balance.Mul(rate)
		principalPortion := payment.Sub(interest)
		paid := payment

		// Final scheduled payment: truncate to exactly retire the balance.
		if principalPortion.Add(retireTolerance).GreaterThanOrEqual(balance) || month == maxMonths {
			principalPortion = balance
			paid = interest.Add(principalPortion)
			schedule = append(schedule, domain.ScheduleRow{
				MonthIndex:       month,
				Payment:          paid,
				Interest:         interest,
				Principal:        principalPortion,
				RemainingBalance: decimal.Zero,
			})
			break
		}

		balance = balance.Sub(principalPortion)

		if extra != nil {
			extraPrincipal := extra.ExtraForMonth(month)
			if extraPrincipal.GreaterThan(decimal.Zero) {
				if extraPrincipal.GreaterThan(balance) {
					extraPrincipal = balance
				}
				balance = balance.Sub(extraPrincipal)
				principalPortion = principalPortion.Add(extraPrincipal)
				paid = paid.Add(extraPrincipal)
			}
		}

		schedule = append(schedule, domain.ScheduleRow{
			MonthIndex:       month,
			Payment:          paid,
			Interest:         interest,
			Principal:        principalPortion,
			RemainingBalance: balance,
		})
	}
	return schedule
}

// InterestThrough sums the interest portions of the first months rows.
func InterestThrough(schedule domain.Schedule, months int) decimal.Decimal {
	total := decimal.Zero
	for _, row := range schedule {
		if row.MonthIndex > months {
			break
		}
		total = total.Add(row.Interest)
	}
	return total
}

// PaidThrough sums all payments in the first months rows.
func PaidThrough(schedule domain.Schedule, months int) decimal.Decimal {
	total := decimal.Zero
	for _, row := range schedule {
		if row.MonthIndex > months {
			break
		}
		total = total.Add(row.Payment)
	}
	return total
}
