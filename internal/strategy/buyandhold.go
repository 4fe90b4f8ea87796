package strategy

import (
	"DealProjector/internal/calculator"
	"DealProjector/internal/model"
)

// buyAndHold finances the purchase with the long-term loan from month 1 and
// amortizes it for the whole horizon, including any rehab months.
type buyAndHold struct {
	deal
	loan    float64
	payment float64
}

func newBuyAndHold(p model.InvestmentParameters) *buyAndHold {
	d := newDeal(p)
	loan := p.Deal.PurchasePrice * d.ltv
	return &buyAndHold{
		deal:    d,
		loan:    loan,
		payment: calculator.MortgagePayment(loan, d.ltRate, d.termMonths()),
	}
}

func (b *buyAndHold) Name() string               { return "Buy and Hold" }
func (b *buyAndHold) Type() model.InvestmentType { return model.BuyAndHold }

func (b *buyAndHold) ComputeMonth(s State, t Month) (State, model.MonthRecord) {
	p := b.p
	f := monthFlows{IsRehab: t.Total <= b.rehab}

	f.Debt = s.Debt
	if t.Total == 1 {
		f.Debt = b.loan
		f.CashInvested = p.Deal.PurchasePrice - b.loan +
			p.Deal.ClosingCosts +
			model.Pct(p.LongTerm.LenderPoints)*b.loan +
			p.Deal.RehabCost
	}

	switch {
	case t.Total == 1 && b.rehab == 0:
		f.Value = p.Deal.AfterRepairValue
	case t.Total == 1, t.Total <= b.rehab:
		f.Value = p.Deal.PurchasePrice
	case t.Total == b.rehab+1:
		f.Value = p.Deal.AfterRepairValue
	default:
		prev := s.PrevValue
		if prev == 0 {
			prev = p.Deal.AfterRepairValue
		}
		f.Value = prev * (1 + b.mApp)
	}

	interest, principal, remaining := calculator.Amortize(f.Debt, b.ltRate, b.payment)
	f.Service = calculator.DebtService{Interest: interest, Principal: principal}
	f.NextDebt = remaining

	return b.settle(s, t, f)
}
