package strategy

import (
	"DealProjector/internal/calculator"
	"DealProjector/internal/model"
)

// brrrr carries the short-term loan through rehab, then cash-out refinances
// into the long-term loan at ARV·LTV the month after.
type brrrr struct {
	deal
	refinanced float64
	payment    float64
}

func newBRRRR(p model.InvestmentParameters) *brrrr {
	d := newDeal(p)
	refinanced := p.Deal.AfterRepairValue * d.ltv
	return &brrrr{
		deal:       d,
		refinanced: refinanced,
		payment:    calculator.MortgagePayment(refinanced, d.ltRate, d.termMonths()),
	}
}

func (b *brrrr) Name() string               { return "BRRRR" }
func (b *brrrr) Type() model.InvestmentType { return model.BRRRR }

func (b *brrrr) ComputeMonth(s State, t Month) (State, model.MonthRecord) {
	p := b.p
	f := monthFlows{
		IsRehab:             t.Total <= b.rehab,
		ChargeRehabInterest: true,
	}

	switch {
	case f.IsRehab:
		f.Value = p.Deal.PurchasePrice
		f.Debt = b.stDebt
		f.NextDebt = b.stDebt
		f.Service = calculator.DebtService{Interest: b.stDebt * b.stRate}
		if t.Total == 1 {
			f.CashInvested = b.stCashIn
		}
		return b.settle(s, t, f)

	case t.Total == b.rehab+1:
		// Refinance: the new loan pays off the carried short-term balance.
		f.Value = p.Deal.AfterRepairValue
		f.Debt = b.refinanced
		proceeds := b.refinanced - s.Debt - model.Pct(p.LongTerm.LenderPoints)*b.refinanced
		f.CashInvested = -proceeds

	default:
		f.Value = p.Deal.AfterRepairValue * pow1p(b.mApp, t.Total-b.rehab-1)
		f.Debt = s.Debt
	}

	interest, principal, remaining := calculator.Amortize(f.Debt, b.ltRate, b.payment)
	f.Service = calculator.DebtService{Interest: interest, Principal: principal}
	f.NextDebt = remaining

	return b.settle(s, t, f)
}
