package strategy

import (
	"DealProjector/internal/calculator"
	"DealProjector/internal/model"
)

// Project runs the 360-month fold for p and rolls every year up. It is a pure
// function of p: the same parameters always produce the same projection.
func Project(p model.InvestmentParameters) *model.Projection {
	strat := For(p)
	proj := &model.Projection{Type: strat.Type()}

	var state State
	for t := 1; t <= model.TotalMonths; t++ {
		var rec model.MonthRecord
		state, rec = strat.ComputeMonth(state, NewMonth(t))
		Sanitize(&rec)
		state = state.remember(rec)
		*proj.At(t) = rec
	}

	for y := range proj.Years {
		aggregateYear(&proj.Years[y])
	}
	return proj
}

// Sanitize replaces every non-finite number in rec with 0 and re-derives
// equity and total return from the cleaned values.
func Sanitize(rec *model.MonthRecord) {
	rec.Value = calculator.Finite(rec.Value)
	rec.Debt = calculator.Finite(rec.Debt)
	rec.Equity = calculator.Finite(rec.Value - rec.Debt)
	rec.CashInvested = calculator.Finite(rec.CashInvested)
	rec.TotalCashInvested = calculator.Finite(rec.TotalCashInvested)
	rec.InterestPaid = calculator.Finite(rec.InterestPaid)
	rec.Rent = calculator.Finite(rec.Rent)
	rec.Expenses = calculator.Finite(rec.Expenses)
	rec.CashFlow = calculator.Finite(rec.CashFlow)
	rec.EquityGrowth = calculator.Finite(rec.EquityGrowth)
	rec.TotalReturn = calculator.Finite(rec.CashFlow + rec.EquityGrowth)
	if !rec.ReturnOnInvestedCash.Infinite {
		rec.ReturnOnInvestedCash.Percent = calculator.Finite(rec.ReturnOnInvestedCash.Percent)
	}
	rec.DSCR = calculator.Finite(rec.DSCR)
}

// aggregateYear sums the stored month records of one year. Sums of finite
// months can still overflow, so every total is passed through Finite.
func aggregateYear(yr *model.YearRecord) {
	var t model.YearlyTotals
	for _, m := range yr.Months {
		t.InterestPaid += m.InterestPaid
		t.Rent += m.Rent
		t.Expenses += m.Expenses
		t.CashFlow += m.CashFlow
		t.EquityGrowth += m.EquityGrowth
		t.CashInvested += m.CashInvested
	}
	t.InterestPaid = calculator.Finite(t.InterestPaid)
	t.Rent = calculator.Finite(t.Rent)
	t.Expenses = calculator.Finite(t.Expenses)
	t.CashFlow = calculator.Finite(t.CashFlow)
	t.EquityGrowth = calculator.Finite(t.EquityGrowth)
	t.CashInvested = calculator.Finite(t.CashInvested)
	t.TotalReturn = calculator.Finite(t.CashFlow + t.EquityGrowth)

	last := yr.Months[model.MonthsPerYear-1]
	t.TotalCashInvested = last.TotalCashInvested
	t.DSCR = last.DSCR
	t.ReturnOnInvestedCash = calculator.ReturnOnCash(t.TotalReturn, t.TotalCashInvested)
	yr.Totals = t
}
