// Package metrics scans a finished projection for the headline numbers shown
// next to it.
package metrics

import (
	"math"

	"DealProjector/internal/calculator"
	"DealProjector/internal/model"
	"DealProjector/internal/strategy"
)

// PeakCashInvested is the largest running cash position over the horizon,
// never below 0.
func PeakCashInvested(proj *model.Projection) float64 {
	peak := 0.0
	proj.Each(func(_, _ int, r *model.MonthRecord) {
		peak = math.Max(peak, r.TotalCashInvested)
	})
	return peak
}

// MinCashInvested is the smallest running cash position over the horizon.
func MinCashInvested(proj *model.Projection) float64 {
	low := math.Inf(1)
	proj.Each(func(_, _ int, r *model.MonthRecord) {
		low = math.Min(low, r.TotalCashInvested)
	})
	return low
}

// CashInvestedAfterRefinance is the cash left in a BRRRR deal once the
// refinance has paid the investor back. For other strategies it is the
// lowest running cash position.
func CashInvestedAfterRefinance(proj *model.Projection, p model.InvestmentParameters) float64 {
	if p.InvestmentType != model.BRRRR {
		return MinCashInvested(proj)
	}
	month := strategy.RefinanceMonth(p)
	if month > model.TotalMonths {
		return 0
	}
	return proj.At(month).TotalCashInvested
}

// TotalCashFlow sums every month's cash flow. An overflowing sum is 0.
func TotalCashFlow(proj *model.Projection) float64 {
	total := 0.0
	proj.Each(func(_, _ int, r *model.MonthRecord) {
		total += r.CashFlow
	})
	return calculator.Finite(total)
}

// FlipProfit is the spread between ARV and all-in cost, less selling costs,
// plus the cash flow collected while holding.
func FlipProfit(proj *model.Projection, p model.InvestmentParameters) float64 {
	d := p.Deal
	selling := d.AfterRepairValue * model.Pct(p.Sale.AgentCommission+p.Sale.ClosingCosts)
	return calculator.Finite((d.AfterRepairValue - d.RehabCost - d.PurchasePrice - d.ClosingCosts) - selling + TotalCashFlow(proj))
}

// AfterTax applies the marginal tax rate to a profit.
func AfterTax(profit float64, p model.InvestmentParameters) float64 {
	return calculator.Finite(profit * (1 - model.Pct(p.Sale.MarginalTaxRate)))
}

// CashRecoveredPct measures how much of the equity a lender leaves in the
// deal the refinance recovered: 100 means every dollar came back. It is 0
// when the deal leaves no equity and never negative.
func CashRecoveredPct(proj *model.Projection, p model.InvestmentParameters) float64 {
	base := p.Deal.AfterRepairValue * (1 - model.Pct(p.LongTerm.LoanToValue))
	if base == 0 {
		return 0
	}
	pct := (base - CashInvestedAfterRefinance(proj, p)) / base * 100
	return math.Max(0, calculator.Finite(pct))
}

// Summarize computes every headline figure for p's strategy. Every figure is
// finite.
func Summarize(proj *model.Projection, p model.InvestmentParameters) model.Summary {
	year1 := proj.Year(1).Totals
	last := proj.Month(model.ProjectionYears, model.MonthsPerYear)

	s := model.Summary{
		InvestmentType:    proj.Type,
		PeakCashInvested:  PeakCashInvested(proj),
		TotalCashFlow:     TotalCashFlow(proj),
		Year1DSCR:         year1.DSCR,
		Year1CashFlow:     year1.CashFlow,
		Year1TotalReturn:  year1.TotalReturn,
		Year1ReturnOnCash: year1.ReturnOnInvestedCash,
		FinalEquity:       last.Equity,
	}

	switch proj.Type {
	case model.BRRRR:
		s.CashAfterRefinance = CashInvestedAfterRefinance(proj, p)
		s.CashRecoveredPct = CashRecoveredPct(proj, p)
		s.RefinanceMonth = strategy.RefinanceMonth(p)
	case model.Flip:
		s.FlipProfit = FlipProfit(proj, p)
		s.FlipProfitAfterTax = AfterTax(s.FlipProfit, p)
		s.SaleMonth = strategy.SaleMonth(p)
	default:
		s.CashAfterRefinance = CashInvestedAfterRefinance(proj, p)
	}
	return finite(s)
}

func finite(s model.Summary) model.Summary {
	for _, v := range []*float64{
		&s.PeakCashInvested, &s.CashAfterRefinance, &s.CashRecoveredPct,
		&s.TotalCashFlow, &s.FlipProfit, &s.FlipProfitAfterTax,
		&s.Year1DSCR, &s.Year1CashFlow, &s.Year1TotalReturn, &s.FinalEquity,
	} {
		*v = calculator.Finite(*v)
	}
	if !s.Year1ReturnOnCash.Infinite {
		s.Year1ReturnOnCash.Percent = calculator.Finite(s.Year1ReturnOnCash.Percent)
	}
	return s
}
