package calculator

import (
	"math"

	"DealProjector/internal/model"
)

// MonthlyRent returns the rent collected in a 1-based absolute month. Rent
// starts after the deal's holding period and grows by the annual appreciation
// once per full year elapsed since then.
func MonthlyRent(r model.RentalAssumptions, holdingPeriod, totalMonths int) float64 {
	if r.RentalType == model.NoRental {
		return 0
	}
	if totalMonths <= holdingPeriod {
		return 0
	}
	yearsElapsed := (totalMonths - holdingPeriod) / model.MonthsPerYear
	return Finite(r.MonthlyRent * math.Pow(1+model.Pct(r.AnnualAppreciation), float64(yearsElapsed)))
}

// Debt service paid in a month, as positive magnitudes.
type DebtService struct {
	Interest  float64
	Principal float64
}

// Total is |interest| + |principal|.
func (d DebtService) Total() float64 {
	return math.Abs(d.Interest) + math.Abs(d.Principal)
}

// ExpenseInput is everything MonthlyExpenses needs for one month.
type ExpenseInput struct {
	Year          int
	Rent          float64
	Service       DebtService
	IsRehabPeriod bool

	// ChargeRehabInterest expenses interest during rehab (BRRRR and Flip).
	ChargeRehabInterest bool
}

// MonthlyExpenses returns the month's expenses as a positive amount:
// appreciated insurance and tax, rent-driven operating costs for the rental
// type, rehab interest where the strategy carries it, and the full debt
// service once rehab is over.
func MonthlyExpenses(r model.RentalAssumptions, in ExpenseInput) float64 {
	factor := AppreciationFactor(r.AnnualAppreciation, in.Year)
	expenses := factor * (r.AnnualInsurance/12 + r.AnnualPropertyTax/12)

	switch r.RentalType {
	case model.LongTerm:
		leaseLength := r.AverageLeaseLength
		if leaseLength == 0 {
			leaseLength = 1
		}
		pct := model.Pct(r.AnnualMaintenance + r.VacancyRate + r.AnnualCapex + r.PMFee)
		expenses += in.Rent*pct + r.LeaseUpFee/(12*leaseLength)
	case model.ShortMidTerm:
		pct := model.Pct(r.AnnualMaintenance + r.VacancyRate + r.AnnualCapex + r.ShortTermPMFee + r.PersonalUsage)
		expenses += in.Rent * pct
	}

	if in.IsRehabPeriod && in.ChargeRehabInterest {
		expenses += math.Abs(in.Service.Interest)
	}
	if !in.IsRehabPeriod {
		expenses += in.Service.Total()
	}
	return Finite(expenses)
}
