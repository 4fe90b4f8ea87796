package strategy

import (
	"DealProjector/internal/calculator"
	"DealProjector/internal/model"
)

// flip carries the short-term loan until the sale at 2·rehab+1. Months
// between the end of rehab and the sale keep paying short-term interest on
// the unchanged balance; the sale absorbs it.
type flip struct {
	deal
	saleMonth int
}

func newFlip(p model.InvestmentParameters) *flip {
	return &flip{deal: newDeal(p), saleMonth: SaleMonth(p)}
}

func (f *flip) Name() string               { return "Flip" }
func (f *flip) Type() model.InvestmentType { return model.Flip }

func (f *flip) ComputeMonth(s State, t Month) (State, model.MonthRecord) {
	p := f.p
	flows := monthFlows{
		IsRehab:             t.Total <= f.rehab,
		ChargeRehabInterest: true,
	}

	switch {
	case t.Total < f.saleMonth:
		flows.Value = p.Deal.AfterRepairValue
		if flows.IsRehab {
			flows.Value = p.Deal.PurchasePrice
		}
		flows.Debt = f.stDebt
		flows.NextDebt = f.stDebt
		flows.Service = calculator.DebtService{Interest: f.stDebt * f.stRate}
		if t.Total == 1 {
			flows.CashInvested = f.stCashIn
		}

	case t.Total == f.saleMonth:
		net := p.Deal.AfterRepairValue * (1 - model.Pct(p.Sale.AgentCommission) - model.Pct(p.Sale.ClosingCosts))
		flows.CashInvested = s.PrevDebt - net
		flows.FlatFlows = true

	default:
		flows.FlatFlows = true
		flows.Closed = true
	}

	return f.settle(s, t, flows)
}
