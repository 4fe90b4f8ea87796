package strategy

import (
	"math"

	"DealProjector/internal/calculator"
	"DealProjector/internal/model"
)

// Month is a position in the 30-year horizon.
type Month struct {
	Year  int // 1..30
	Month int // 1..12
	Total int // 1..360
}

// NewMonth builds a Month from a 1-based absolute month.
func NewMonth(total int) Month {
	y, m := model.SplitMonth(total)
	return Month{Year: y, Month: m, Total: total}
}

// State is the accumulator threaded from one month to the next.
type State struct {
	// Debt is the loan balance entering the month.
	Debt float64

	// TotalCashInvested is the running sum of every month's cash invested.
	TotalCashInvested float64

	PrevValue  float64
	PrevEquity float64
	PrevDebt   float64
}

// remember records the stored month so the next one can compute growth and
// sale proceeds against it.
func (s State) remember(rec model.MonthRecord) State {
	s.PrevValue = rec.Value
	s.PrevEquity = rec.Equity
	s.PrevDebt = rec.Debt
	s.TotalCashInvested = rec.TotalCashInvested
	return s
}

// Strategy computes one month of a deal.
type Strategy interface {
	Name() string
	Type() model.InvestmentType
	// RehabDuration is the number of leading months treated as rehab.
	RehabDuration() int
	ComputeMonth(s State, t Month) (State, model.MonthRecord)
}

// For returns the strategy for p.InvestmentType. Unknown types project as
// buy-and-hold.
func For(p model.InvestmentParameters) Strategy {
	switch p.InvestmentType {
	case model.BRRRR:
		return newBRRRR(p)
	case model.Flip:
		return newFlip(p)
	default:
		return newBuyAndHold(p)
	}
}

// RehabDuration is the strategy-specific rehab length. BRRRR and Flip need
// at least one month so the refinance and sale months are well defined.
func RehabDuration(p model.InvestmentParameters) int {
	switch p.InvestmentType {
	case model.BRRRR, model.Flip:
		return max(1, p.Deal.HoldingPeriod)
	default:
		return p.Deal.HoldingPeriod
	}
}

// RefinanceMonth is the absolute month of the BRRRR cash-out refinance.
func RefinanceMonth(p model.InvestmentParameters) int {
	return RehabDuration(p) + 1
}

// SaleMonth is the absolute month a flip is sold.
func SaleMonth(p model.InvestmentParameters) int {
	return 2*RehabDuration(p) + 1
}

// deal holds the per-calculation constants shared by all strategies.
type deal struct {
	p      model.InvestmentParameters
	rehab  int
	ltRate float64 // monthly long-term rate
	stRate float64 // monthly short-term rate
	mApp   float64 // monthly appreciation
	ltv    float64

	stDebt   float64 // short-term loan on purchase and rehab
	stCashIn float64 // unfinanced share plus short-term points
}

func newDeal(p model.InvestmentParameters) deal {
	purchaseLoaned := model.Pct(p.ShortTerm.PurchaseLoaned)
	rehabLoaned := model.Pct(p.ShortTerm.RehabLoaned)
	stDebt := purchaseLoaned*p.Deal.PurchasePrice + rehabLoaned*p.Deal.RehabCost
	cashIn := (1-purchaseLoaned)*p.Deal.PurchasePrice +
		(1-rehabLoaned)*p.Deal.RehabCost +
		model.Pct(p.ShortTerm.LenderPoints)*stDebt

	return deal{
		p:        p,
		rehab:    RehabDuration(p),
		ltRate:   calculator.MonthlyRate(p.LongTerm.InterestRate),
		stRate:   calculator.MonthlyRate(p.ShortTerm.InterestRate),
		mApp:     calculator.MonthlyAppreciation(p.Rental.AnnualAppreciation),
		ltv:      model.Pct(p.LongTerm.LoanToValue),
		stDebt:   stDebt,
		stCashIn: cashIn,
	}
}

func (d deal) RehabDuration() int { return d.rehab }

func (d deal) termMonths() int { return d.p.LongTerm.LoanTermYears * model.MonthsPerYear }

// monthFlows is what a strategy decides for a month; settle derives the rest.
type monthFlows struct {
	Value        float64
	Debt         float64 // balance reported for the month
	NextDebt     float64 // balance carried into the next month
	Service      calculator.DebtService
	CashInvested float64
	IsRehab      bool

	// ChargeRehabInterest expenses short-term interest during rehab.
	ChargeRehabInterest bool

	// FlatFlows forces cash flow, equity growth and total return to zero.
	FlatFlows bool

	// Closed means the property is gone: no rent, no expenses.
	Closed bool
}

// settle fills in rent, expenses, returns and ratios shared by every strategy.
func (d deal) settle(s State, t Month, f monthFlows) (State, model.MonthRecord) {
	var rent, expenses float64
	if !f.Closed {
		rent = calculator.MonthlyRent(d.p.Rental, d.p.Deal.HoldingPeriod, t.Total)
		expenses = calculator.MonthlyExpenses(d.p.Rental, calculator.ExpenseInput{
			Year:                t.Year,
			Rent:                rent,
			Service:             f.Service,
			IsRehabPeriod:       f.IsRehab,
			ChargeRehabInterest: f.ChargeRehabInterest,
		})
	}

	cashFlow := rent - expenses
	equity := f.Value - f.Debt
	var equityGrowth float64
	if t.Total > 1 {
		equityGrowth = equity - s.PrevEquity
	}
	if f.FlatFlows {
		cashFlow, equityGrowth = 0, 0
	}

	s.Debt = calculator.Finite(f.NextDebt)
	s.TotalCashInvested += calculator.Finite(f.CashInvested)

	var dscr float64
	if !f.Closed {
		dscr = calculator.DSCR(rent, expenses, f.Service)
	}

	rec := model.MonthRecord{
		Value:                f.Value,
		Debt:                 f.Debt,
		Equity:               equity,
		CashInvested:         f.CashInvested,
		TotalCashInvested:    s.TotalCashInvested,
		InterestPaid:         negative(f.Service.Interest),
		Rent:                 rent,
		Expenses:             negative(expenses),
		CashFlow:             cashFlow,
		EquityGrowth:         equityGrowth,
		TotalReturn:          cashFlow + equityGrowth,
		ReturnOnInvestedCash: calculator.ReturnOnCash(cashFlow+equityGrowth, s.TotalCashInvested),
		DSCR:                 dscr,
		IsRehabPeriod:        f.IsRehab,
	}
	return s, rec
}

// negative stores an amount as a non-positive number without producing -0.
func negative(v float64) float64 {
	if v == 0 {
		return 0
	}
	if v > 0 {
		return -v
	}
	return v
}

// pow1p is (1+rate)^n for whole n.
func pow1p(rate float64, n int) float64 {
	return math.Pow(1+rate, float64(n))
}
