package calculators

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/finance"
)

// Default appreciation offsets for the best and worst scenarios, in
// percentage points around the base rate. Overridable per run.
var (
	DefaultBestCaseOffset  = decimal.NewFromInt(2)
	DefaultWorstCaseOffset = decimal.NewFromInt(-3)
)

// RentVsBuyInputs parameterize the year-by-year net worth projection.
type RentVsBuyInputs struct {
	HomePrice        decimal.Decimal
	DownPayment      decimal.Decimal
	AnnualRate       decimal.Decimal
	TermYears        int
	MonthlyRent      decimal.Decimal
	RentInflationPct decimal.Decimal
	AppreciationPct  decimal.Decimal
	InvestReturnPct  decimal.Decimal
	PropertyTaxRate  decimal.Decimal
	AnnualInsurance  decimal.Decimal
	MaintenancePct   decimal.Decimal // percent of home value per year
	SellingCostPct   decimal.Decimal
	HorizonYears     int
	BestCaseOffset   *decimal.Decimal // nil uses DefaultBestCaseOffset
	WorstCaseOffset  *decimal.Decimal // nil uses DefaultWorstCaseOffset
}

// RentVsBuyYear is one simulated year of both paths.
type RentVsBuyYear struct {
	Year         int             `json:"year"`
	HomeValue    decimal.Decimal `json:"homeValue"`
	LoanBalance  decimal.Decimal `json:"loanBalance"`
	BuyNetWorth  decimal.Decimal `json:"buyNetWorth"`
	RentNetWorth decimal.Decimal `json:"rentNetWorth"`
	MonthlyRent  decimal.Decimal `json:"monthlyRent"`
}

// RentVsBuyScenario is one appreciation-rate run of the projection.
type RentVsBuyScenario struct {
	AppreciationPct decimal.Decimal `json:"appreciationPct"`
	Years           []RentVsBuyYear `json:"years"`
	CrossoverYear   int             `json:"crossoverYear"` // 0 means never within the horizon
}

// RentVsBuyResult holds the base projection plus best and worst appreciation
// runs sharing identical rent and investment assumptions.
type RentVsBuyResult struct {
	Base  RentVsBuyScenario `json:"base"`
	Best  RentVsBuyScenario `json:"best"`
	Worst RentVsBuyScenario `json:"worst"`
}

// CalculateRentVsBuy simulates "buy" against "rent and invest the
// difference" year by year. The buy path accumulates equity as the home
// appreciates and the balance amortizes, net of selling costs if liquidated
// that year. The rent path starts with the down-payment-equivalent invested
// and adds the monthly difference between the buy path's all-in cost and
// rent, compounded at the investment return. The crossover is the first year
// buy net worth permanently exceeds rent net worth.
func CalculateRentVsBuy(in RentVsBuyInputs) *RentVsBuyResult {
	if in.HomePrice.LessThanOrEqual(decimal.Zero) || in.DownPayment.IsNegative() ||
		in.DownPayment.GreaterThanOrEqual(in.HomePrice) ||
		in.MonthlyRent.LessThanOrEqual(decimal.Zero) ||
		in.TermYears <= 0 || in.HorizonYears <= 0 || in.AnnualRate.IsNegative() {
		return nil
	}

	bestOffset := DefaultBestCaseOffset
	if in.BestCaseOffset != nil {
		bestOffset = *in.BestCaseOffset
	}
	worstOffset := DefaultWorstCaseOffset
	if in.WorstCaseOffset != nil {
		worstOffset = *in.WorstCaseOffset
	}

	return &RentVsBuyResult{
		Base:  runRentVsBuy(in, in.AppreciationPct),
		Best:  runRentVsBuy(in, in.AppreciationPct.Add(bestOffset)),
		Worst: runRentVsBuy(in, in.AppreciationPct.Add(worstOffset)),
	}
}

func runRentVsBuy(in RentVsBuyInputs, appreciationPct decimal.Decimal) RentVsBuyScenario {
	terms := domain.LoanTerms{
		Principal:         in.HomePrice.Sub(in.DownPayment),
		AnnualRatePercent: in.AnnualRate,
		TermYears:         in.TermYears,
	}
	schedule := finance.BuildSchedule(terms, nil)
	payment := finance.PaymentForTerms(terms)

	appreciation := decimal.NewFromInt(1).Add(appreciationPct.Div(hundred))
	rentGrowth := decimal.NewFromInt(1).Add(in.RentInflationPct.Div(hundred))
	monthlyReturn := in.InvestReturnPct.Div(hundred).Div(twelve)

	homeValue := in.HomePrice
	rent := in.MonthlyRent
	invested := in.DownPayment
	monthlyInsurance := in.AnnualInsurance.Div(twelve)

	out := RentVsBuyScenario{AppreciationPct: appreciationPct}
	for year := 1; year <= in.HorizonYears; year++ {
		homeValue = homeValue.Mul(appreciation)

		// Ownership carrying cost for this year, spread monthly.
		monthlyTax := homeValue.Mul(in.PropertyTaxRate).Div(hundred).Div(twelve)
		monthlyMaintenance := homeValue.Mul(in.MaintenancePct).Div(hundred).Div(twelve)
		monthlyOwnCost := payment.Add(monthlyTax).Add(monthlyInsurance).Add(monthlyMaintenance)
		if year*domain.MonthsPerYear > schedule.PayoffMonth() {
			monthlyOwnCost = monthlyOwnCost.Sub(payment) // loan retired, P&I drops out
		}

		// The renter invests the gap between owning and renting each month.
		for m := 0; m < domain.MonthsPerYear; m++ {
			invested = invested.Mul(decimal.NewFromInt(1).Add(monthlyReturn))
			diff := monthlyOwnCost.Sub(rent)
			invested = invested.Add(diff) // negative when rent costs more than owning
		}
		rent = rent.Mul(rentGrowth)

		balance := schedule.BalanceAt(year * domain.MonthsPerYear)
		equity := homeValue.Sub(balance)
		sellingCosts := homeValue.Mul(in.SellingCostPct).Div(hundred)
		buyNetWorth := equity.Sub(sellingCosts)

		out.Years = append(out.Years, RentVsBuyYear{
			Year:         year,
			HomeValue:    homeValue,
			LoanBalance:  balance,
			BuyNetWorth:  buyNetWorth,
			RentNetWorth: invested,
			MonthlyRent:  rent,
		})
	}

	// The crossover must be permanent: scan backward for the last year rent
	// wins, the crossover is the year after it.
	crossover := 0
	for i := len(out.Years) - 1; i >= 0; i-- {
		if !out.Years[i].BuyNetWorth.GreaterThan(out.Years[i].RentNetWorth) {
			break
		}
		crossover = out.Years[i].Year
	}
	out.CrossoverYear = crossover
	return out
}

func crossoverLabel(year int) string {
	if year == 0 {
		return "Never"
	}
	return fmt.Sprintf("Year %d", year)
}

// Result adapts the typed result to the common contract.
func (r *RentVsBuyResult) Result() *domain.Result {
	out := &domain.Result{Calculator: "rent-vs-buy"}
	if r.Base.CrossoverYear > 0 {
		out.Summary = fmt.Sprintf("Buying pulls ahead of renting in year %d under base-case appreciation.", r.Base.CrossoverYear)
	} else {
		out.Summary = "Renting and investing the difference stays ahead for your whole horizon under base-case appreciation."
	}
	out.AddText("baseCrossover", "Base Case Crossover", crossoverLabel(r.Base.CrossoverYear))
	out.AddText("bestCrossover", "Best Case Crossover", crossoverLabel(r.Best.CrossoverYear))
	out.AddText("worstCrossover", "Worst Case Crossover", crossoverLabel(r.Worst.CrossoverYear))
	out.AddPercent("baseAppreciation", "Base Appreciation", r.Base.AppreciationPct)
	out.AddPercent("bestAppreciation", "Best Case Appreciation", r.Best.AppreciationPct)
	out.AddPercent("worstAppreciation", "Worst Case Appreciation", r.Worst.AppreciationPct)
	if n := len(r.Base.Years); n > 0 {
		last := r.Base.Years[n-1]
		out.AddUSD("finalBuyNetWorth", "Buy Net Worth At Horizon", last.BuyNetWorth)
		out.AddUSD("finalRentNetWorth", "Rent Net Worth At Horizon", last.RentNetWorth)
	}
	for _, y := range r.Base.Years {
		out.ChartData = append(out.ChartData,
			domain.ChartPoint{Series: "buy", X: y.Year, Y: y.BuyNetWorth},
			domain.ChartPoint{Series: "rent", X: y.Year, Y: y.RentNetWorth},
		)
	}
	if r.Worst.CrossoverYear == 0 && r.Best.CrossoverYear > 0 {
		out.Insights = append(out.Insights,
			"The answer hinges on appreciation: buying wins in the best case but never catches up in the worst case.")
	}
	out.Insights = append(out.Insights,
		"Staying put longer favors buying; selling costs and slow early equity make short stays expensive.",
		"The rent path assumes you actually invest the monthly difference every month; most renters do not.")
	return out
}

func rentVsBuyDescriptor() *Descriptor {
	return &Descriptor{
		Slug:        "rent-vs-buy",
		Name:        "Rent vs Buy",
		Description: "Project net worth renting versus buying across best, base and worst appreciation.",
		Fields: []Field{
			{Key: "homePrice", Label: "Home Price", Unit: domain.UnitUSD, Required: true},
			{Key: "downPayment", Label: "Down Payment", Unit: domain.UnitUSD, Required: true},
			{Key: "interestRate", Label: "Interest Rate", Unit: domain.UnitPercent, Required: true},
			{Key: "loanTerm", Label: "Loan Term", Unit: domain.UnitYears, Default: "30"},
			{Key: "monthlyRent", Label: "Comparable Monthly Rent", Unit: domain.UnitUSD, Required: true},
			{Key: "rentInflation", Label: "Annual Rent Inflation", Unit: domain.UnitPercent, Default: "3.0"},
			{Key: "appreciation", Label: "Annual Home Appreciation", Unit: domain.UnitPercent, Default: "3.5"},
			{Key: "investReturn", Label: "Investment Return", Unit: domain.UnitPercent, Default: "7.0"},
			{Key: "propertyTaxRate", Label: "Property Tax Rate", Unit: domain.UnitPercent, Default: "1.1"},
			{Key: "annualInsurance", Label: "Annual Homeowners Insurance", Unit: domain.UnitUSD, Default: "1500"},
			{Key: "maintenancePct", Label: "Annual Maintenance", Unit: domain.UnitPercent, Default: "1.0"},
			{Key: "sellingCostPct", Label: "Selling Costs", Unit: domain.UnitPercent, Default: "6.0"},
			{Key: "horizonYears", Label: "Projection Horizon", Unit: domain.UnitYears, Default: "30"},
		},
		Run: func(p Params) *domain.Result {
			r := CalculateRentVsBuy(RentVsBuyInputs{
				HomePrice:        p.Decimal("homePrice"),
				DownPayment:      p.Decimal("downPayment"),
				AnnualRate:       p.Decimal("interestRate"),
				TermYears:        p.IntOr("loanTerm", 30),
				MonthlyRent:      p.Decimal("monthlyRent"),
				RentInflationPct: p.DecimalOr("rentInflation", decimal.RequireFromString("3.0")),
				AppreciationPct:  p.DecimalOr("appreciation", decimal.RequireFromString("3.5")),
				InvestReturnPct:  p.DecimalOr("investReturn", decimal.RequireFromString("7.0")),
				PropertyTaxRate:  p.DecimalOr("propertyTaxRate", decimal.RequireFromString("1.1")),
				AnnualInsurance:  p.DecimalOr("annualInsurance", decimal.NewFromInt(1500)),
				MaintenancePct:   p.DecimalOr("maintenancePct", decimal.RequireFromString("1.0")),
				SellingCostPct:   p.DecimalOr("sellingCostPct", decimal.RequireFromString("6.0")),
				HorizonYears:     p.IntOr("horizonYears", 30),
			})
			if r == nil {
				return nil
			}
			return r.Result()
		},
	}
}
