package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
)

// ARMVsFixedInputs model an adjustable teaser against a fixed quote for a
// borrower with a known expected move date.
type ARMVsFixedInputs struct {
	LoanAmount        decimal.Decimal
	TermYears         int
	FixedRatePercent  decimal.Decimal
	TeaserRatePercent decimal.Decimal
	TeaserYears       int
	AnnualStepPercent decimal.Decimal // assumed rate increase per adjustment year
	LifetimeCapPct    decimal.Decimal // ceiling above the teaser
	MoveMonth         int
}

// ARMVsFixedResult tallies payments made through the move month under each
// loan, modeling the ARM at its worst-case adjustment path.
type ARMVsFixedResult struct {
	FixedPayment  decimal.Decimal `json:"fixedPayment"`
	TeaserPayment decimal.Decimal `json:"teaserPayment"`
	FixedCost     decimal.Decimal `json:"fixedCost"`
	ARMCost       decimal.Decimal `json:"armCost"`
	Savings       decimal.Decimal `json:"savings"` // positive when the ARM wins
	MoveMonth     int             `json:"moveMonth"`
	MaxARMPayment decimal.Decimal `json:"maxArmPayment"`
	CrossoverMon  int             `json:"crossoverMonth"` // first month ARM payment exceeds fixed, 0 if never
}

// CalculateARMVsFixed walks the ARM month by month. During the teaser the
// payment is fixed at the teaser amortization. After the fixed period the
// rate climbs by the annual step each year, capped at teaser plus lifetime
// cap, and the payment re-amortizes the remaining balance over the remaining
// term at each adjustment.
func CalculateARMVsFixed(in ARMVsFixedInputs) *ARMVsFixedResult {
	if in.LoanAmount.LessThanOrEqual(decimal.Zero) || in.TermYears <= 0 ||
		in.TeaserYears <= 0 || in.MoveMonth <= 0 ||
		in.FixedRatePercent.IsNegative() || in.TeaserRatePercent.IsNegative() {
		return nil
	}
	totalMonths := in.TermYears * domain.MonthsPerYear
	moveMonth := in.MoveMonth
	if moveMonth > totalMonths {
		moveMonth = totalMonths
	}

	fixedPayment := finance.MonthlyPayment(in.LoanAmount, in.FixedRatePercent, in.TermYears)
	fixedCost := fixedPayment.Mul(decimal.NewFromInt(int64(moveMonth)))

	maxRate := in.TeaserRatePercent.Add(in.LifetimeCapPct)
	balance := in.LoanAmount
	rate := in.TeaserRatePercent
	payment := finance.MonthlyPayment(in.LoanAmount, rate, in.TermYears)
	teaserPayment := payment

	armCost := decimal.Zero
	maxPayment := payment
	crossover := 0
	for month := 1; month <= moveMonth && balance.IsPositive(); month++ {
		// Re-amortize at each anniversary past the teaser period.
		if month > in.TeaserYears*domain.MonthsPerYear && (month-1)%domain.MonthsPerYear == 0 {
			rate = rate.Add(in.AnnualStepPercent)
			if rate.GreaterThan(maxRate) {
				rate = maxRate
			}
			remainingYears := (totalMonths - month + 1 + domain.MonthsPerYear - 1) / domain.MonthsPerYear
			payment = finance.MonthlyPayment(balance, rate, remainingYears)
		}
		interest := balance.Mul(rate.Div(decimal.NewFromInt(1200)))
		principal := payment.Sub(interest)
		if principal.GreaterThan(balance) {
			payment = balance.Add(interest)
			principal = balance
		}
		balance = balance.Sub(principal)
		armCost = armCost.Add(payment)
		if payment.GreaterThan(maxPayment) {
			maxPayment = payment
		}
		if crossover == 0 && payment.GreaterThan(fixedPayment) {
			crossover = month
		}
	}

	return &ARMVsFixedResult{
		FixedPayment:  fixedPayment,
		TeaserPayment: teaserPayment,
		FixedCost:     fixedCost,
		ARMCost:       armCost,
		Savings:       fixedCost.Sub(armCost),
		MoveMonth:     moveMonth,
		MaxARMPayment: maxPayment,
		CrossoverMon:  crossover,
	}
}

// Result adapts the typed result to the common contract.
func (r *ARMVsFixedResult) Result() *domain.Result {
	out := &domain.Result{Calculator: "arm-vs-fixed"}
	if r.Savings.IsPositive() {
		out.Summary = fmt.Sprintf("The ARM saves %s through %s even on its worst-case rate path.",
			usd(r.Savings), monthsLabel(r.MoveMonth))
	} else {
		out.Summary = fmt.Sprintf("The fixed loan wins by %s through %s once the ARM adjusts.",
			usd(r.Savings.Abs()), monthsLabel(r.MoveMonth))
	}
	out.AddUSD("fixedPayment", "Fixed Monthly Payment", r.FixedPayment)
	out.AddUSD("teaserPayment", "ARM Teaser Payment", r.TeaserPayment)
	out.AddUSD("maxArmPayment", "Worst-Case ARM Payment", r.MaxARMPayment)
	out.AddUSD("fixedCost", "Fixed Cost Through Move", r.FixedCost)
	out.AddUSD("armCost", "ARM Cost Through Move", r.ARMCost)
	out.AddUSD("savings", "ARM Savings", r.Savings)
	if r.CrossoverMon > 0 {
		out.AddMonths("crossoverMonth", "ARM Payment Exceeds Fixed At", r.CrossoverMon)
		out.Insights = append(out.Insights, fmt.Sprintf(
			"Budget for the adjustment: by month %d the ARM payment passes the fixed payment and can reach %s.",
			r.CrossoverMon, usd(r.MaxARMPayment)))
	} else {
		out.AddText("crossoverMonth", "ARM Payment Exceeds Fixed At", "Never within your stay")
		out.Insights = append(out.Insights,
			"You move before the ARM payment ever passes the fixed payment, so the teaser discount is pure savings.")
	}
	return out
}

func armVsFixedDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "arm-vs-fixed",
		Name:        "ARM vs Fixed",
		Description: "Stress an adjustable teaser against a fixed quote for your expected stay.",
		Fields: []Field{
			{Key: "loanAmount", Label: "Loan Amount", Unit: domain.UnitUSD, Required: true},
			{Key: "loanTerm", Label: "Loan Term", Unit: domain.UnitYears, Default: "30"},
			{Key: "fixedRate", Label: "Fixed Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "teaserRate", Label: "ARM Teaser Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "teaserYears", Label: "Teaser Period", Unit: domain.UnitYears, Default: "5"},
			{Key: "annualStep", Label: "Annual Adjustment Step", Unit: domain.UnitPercent, Default: "1.0"},
			{Key: "lifetimeCap", Label: "Lifetime Cap Above Teaser", Unit: domain.UnitPercent, Default: "5.0"},
			{Key: "moveMonth", Label: "Expected Move Month", Unit: domain.UnitMonths, Default: "84"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateARMVsFixed(ARMVsFixedInputs{
				LoanAmount:        p.Decimal("loanAmount"),
				TermYears:         p.IntOr("loanTerm", 30),
				FixedRatePercent:  p.Decimal("fixedRate"),
				TeaserRatePercent: p.Decimal("teaserRate"),
				TeaserYears:       p.IntOr("teaserYears", 5),
				AnnualStepPercent: p.DecimalOr("annualStep", decimal.RequireFromString("1.0")),
				LifetimeCapPct:    p.DecimalOr("lifetimeCap", decimal.RequireFromString("5.0")),
				MoveMonth:         p.IntOr("moveMonth", 84),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
