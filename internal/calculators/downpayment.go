package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
	"github.com/mortcalc/mortcalc/internal/qualify"
)

// downPaymentOptions are the percent-of-price tiers the comparison runs.
var downPaymentOptions = []decimal.Decimal{
	decimal.NewFromInt(5),
	decimal.NewFromInt(10),
	decimal.NewFromInt(15),
	decimal.NewFromInt(20),
}

// DownPaymentInputs parameterize the down payment comparison.
type DownPaymentInputs struct {
	HomePrice           decimal.Decimal
	InterestRatePercent decimal.Decimal
	LoanTermYears       int
	CreditScore         int
}

// DownPaymentOption is one tier of the comparison.
type DownPaymentOption struct {
	Percent         decimal.Decimal `json:"percent"`
	DownPayment     decimal.Decimal `json:"downPayment"`
	LoanAmount      decimal.Decimal `json:"loanAmount"`
	MonthlyPayment  decimal.Decimal `json:"monthlyPayment"`
	MonthlyPMI      decimal.Decimal `json:"monthlyPmi"`
	PMIRemovalMonth int             `json:"pmiRemovalMonth"`
	TotalPMIPaid    decimal.Decimal `json:"totalPmiPaid"`
	TotalInterest   decimal.Decimal `json:"totalInterest"`
}

// DownPaymentResult holds all compared tiers.
type DownPaymentResult struct {
	HomePrice decimal.Decimal     `json:"homePrice"`
	Options   []DownPaymentOption `json:"options"`
}

// CalculateDownPayment compares 5/10/15/20% down on the same home: payment,
// PMI burden until automatic cancellation, and lifetime interest.
func CalculateDownPayment(in DownPaymentInputs) *DownPaymentResult {
	if in.HomePrice.LessThanOrEqual(decimal.Zero) || in.LoanTermYears <= 0 || in.InterestRatePercent.IsNegative() {
		return nil
	}

	res := &DownPaymentResult{HomePrice: in.HomePrice}
	for _, percent := range downPaymentOptions {
		down := in.HomePrice.Mul(percent).Div(hundred)
		loan := in.HomePrice.Sub(down)
		terms := domain.LoanTerms{Principal: loan, AnnualRatePercent: in.InterestRatePercent, TermYears: in.LoanTermYears}
		schedule := finance.BuildSchedule(terms, nil)

		ltv := loan.Div(in.HomePrice).Mul(hundred)
		pmiMonthly := qualify.PMIMonthlyPremium(loan, qualify.PMIAnnualRate(ltv, in.CreditScore))

		opt := DownPaymentOption{
			Percent:        percent,
			DownPayment:    down,
			LoanAmount:     loan,
			MonthlyPayment: finance.PaymentForTerms(terms),
			MonthlyPMI:     pmiMonthly,
			TotalInterest:  schedule.TotalInterest(),
		}
		if pmiMonthly.GreaterThan(decimal.Zero) {
			_, opt.PMIRemovalMonth = qualify.PMIRemovalMonths(terms, in.HomePrice)
			opt.TotalPMIPaid = pmiMonthly.Mul(decimal.NewFromInt(int64(opt.PMIRemovalMonth)))
		}
		res.Options = append(res.Options, opt)
	}
	return res
}

// Result adapts the typed result to the common contract.
func (r *DownPaymentResult) Result() *domain.Result {
	lowest := r.Options[0]
	highest := r.Options[len(r.Options)-1]
	out := &domain.Result{
		Calculator: "down-payment",
		Summary: fmt.Sprintf("Putting 20%% down instead of 5%% lowers the payment by %s/month and avoids PMI entirely.",
			usd(lowest.MonthlyPayment.Add(lowest.MonthlyPMI).Sub(highest.MonthlyPayment))),
	}

	for _, opt := range r.Options {
		key := "payment" + opt.Percent.StringFixed(0)
		out.AddUSD(key, fmt.Sprintf("Monthly Payment at %s%% Down", opt.Percent.StringFixed(0)),
			opt.MonthlyPayment.Add(opt.MonthlyPMI))
		out.ChartData = append(out.ChartData,
			domain.ChartPoint{Series: "monthlyPayment", X: int(opt.Percent.IntPart()), Y: opt.MonthlyPayment.Add(opt.MonthlyPMI)},
			domain.ChartPoint{Series: "totalInterest", X: int(opt.Percent.IntPart()), Y: opt.TotalInterest},
		)
	}
	out.AddUSD("pmiCost5", "Total PMI Paid at 5% Down", lowest.TotalPMIPaid)
	out.AddUSD("downPayment20", "Cash Needed for 20% Down", highest.DownPayment)

	interestSpread := lowest.TotalInterest.Sub(highest.TotalInterest)
	out.Insights = append(out.Insights,
		fmt.Sprintf("The larger loan at 5%% down costs %s more in lifetime interest than 20%% down.", usd(interestSpread)))
	if lowest.TotalPMIPaid.GreaterThan(decimal.Zero) {
		out.Insights = append(out.Insights,
			fmt.Sprintf("At 5%% down you would pay about %s of PMI before automatic cancellation at month %d.",
				usd(lowest.TotalPMIPaid), lowest.PMIRemovalMonth))
	}
	return out
}

func downPaymentDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "down-payment",
		Name:        "Down Payment Comparison",
		Description: "Payment, PMI and lifetime interest at 5, 10, 15 and 20 percent down.",
		Fields: []Field{
			{Key: "homePrice", Label: "Home Price", Unit: domain.UnitUSD, Required: true},
			{Key: "interestRate", Label: "Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "loanTerm", Label: "Loan Term", Unit: domain.UnitYears, Default: "30"},
			{Key: "creditScore", Label: "Credit Score", Unit: domain.UnitCount, Default: "720"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateDownPayment(DownPaymentInputs{
				HomePrice:           p.Decimal("homePrice"),
				InterestRatePercent: p.Decimal("interestRate"),
				LoanTermYears:       p.IntOr("loanTerm", 30),
				CreditScore:         p.IntOr("creditScore", 720),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
