package inputs

import (
	"strconv"

	"DealProjector/internal/model"
)

// Defaults returns the form as it is first shown to a user.
func Defaults() model.RawInputs {
	return model.RawInputs{
		InvestmentType: string(model.BuyAndHold),
		ShortTerm: model.RawShortTerm{
			InterestRate:   "10",
			LenderPoints:   "1",
			PurchaseLoaned: "80",
			RehabLoaned:    "80",
		},
		LongTerm: model.RawLongTerm{
			LoanTerm:     "30",
			InterestRate: "7",
			LenderPoints: "0",
			LoanToValue:  "75",
		},
		Rental: model.RawRental{
			RentalType:         string(model.LongTerm),
			AnnualAppreciation: "2",
			AnnualInsurance:    "1200",
			AnnualMaintenance:  "7",
			AnnualCapex:        "7",
			PMFee:              "10",
			VacancyRate:        "3",
			AverageLeaseLength: "3",
			ShortTermPMFee:     "20",
			PersonalUsage:      "0",
		},
		Sale: model.RawSale{
			AgentCommission: "6",
			ClosingCosts:    "1",
			MarginalTaxRate: "24",
			TimeOnMarket:    "2",
		},
	}
}

// WithDefaults fills every blank field of raw from Defaults.
func WithDefaults(raw model.RawInputs) model.RawInputs {
	d := Defaults()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&raw.InvestmentType, d.InvestmentType)
	fill(&raw.ShortTerm.InterestRate, d.ShortTerm.InterestRate)
	fill(&raw.ShortTerm.LenderPoints, d.ShortTerm.LenderPoints)
	fill(&raw.ShortTerm.PurchaseLoaned, d.ShortTerm.PurchaseLoaned)
	fill(&raw.ShortTerm.RehabLoaned, d.ShortTerm.RehabLoaned)
	fill(&raw.LongTerm.LoanTerm, d.LongTerm.LoanTerm)
	fill(&raw.LongTerm.InterestRate, d.LongTerm.InterestRate)
	fill(&raw.LongTerm.LenderPoints, d.LongTerm.LenderPoints)
	fill(&raw.LongTerm.LoanToValue, d.LongTerm.LoanToValue)
	fill(&raw.Rental.RentalType, d.Rental.RentalType)
	fill(&raw.Rental.AnnualAppreciation, d.Rental.AnnualAppreciation)
	fill(&raw.Rental.AnnualInsurance, d.Rental.AnnualInsurance)
	fill(&raw.Rental.AnnualMaintenance, d.Rental.AnnualMaintenance)
	fill(&raw.Rental.AnnualCapex, d.Rental.AnnualCapex)
	fill(&raw.Rental.PMFee, d.Rental.PMFee)
	fill(&raw.Rental.VacancyRate, d.Rental.VacancyRate)
	fill(&raw.Rental.AverageLeaseLength, d.Rental.AverageLeaseLength)
	fill(&raw.Rental.ShortTermPMFee, d.Rental.ShortTermPMFee)
	fill(&raw.Rental.PersonalUsage, d.Rental.PersonalUsage)
	fill(&raw.Sale.AgentCommission, d.Sale.AgentCommission)
	fill(&raw.Sale.ClosingCosts, d.Sale.ClosingCosts)
	fill(&raw.Sale.MarginalTaxRate, d.Sale.MarginalTaxRate)
	fill(&raw.Sale.TimeOnMarket, d.Sale.TimeOnMarket)
	return raw
}

// SuggestRehabDuration maps a rehab budget to a typical number of months.
func SuggestRehabDuration(rehabCost float64) int {
	switch {
	case rehabCost == 0:
		return 0
	case rehabCost <= 25000:
		return 2
	case rehabCost <= 50000:
		return 3
	case rehabCost <= 75000:
		return 4
	case rehabCost <= 100000:
		return 5
	default:
		return 6
	}
}

// ApplyDerived fills blank fields the form derives from other fields: ARV is
// purchase + 1.5x rehab, closing costs 1% of purchase, property tax 1% of
// ARV, lease-up fee half a month's rent, holding period from the rehab budget.
func ApplyDerived(raw model.RawInputs) model.RawInputs {
	purchase := ParseOrZero(raw.Deal.PurchasePrice)
	rehab := ParseOrZero(raw.Deal.RehabCost)

	if raw.Deal.AfterRepairValue == "" && raw.Deal.PurchasePrice != "" {
		raw.Deal.AfterRepairValue = money(purchase + 1.5*rehab)
	}
	if raw.Deal.ClosingCosts == "" && raw.Deal.PurchasePrice != "" {
		raw.Deal.ClosingCosts = money(purchase * 0.01)
	}
	if raw.Deal.HoldingPeriod == "" && raw.Deal.RehabCost != "" {
		raw.Deal.HoldingPeriod = strconv.Itoa(SuggestRehabDuration(rehab))
	}
	if raw.Rental.AnnualPropertyTax == "" && raw.Deal.AfterRepairValue != "" {
		raw.Rental.AnnualPropertyTax = money(ParseOrZero(raw.Deal.AfterRepairValue) * 0.01)
	}
	if raw.Rental.LeaseUpFee == "" && raw.Rental.MonthlyRent != "" {
		raw.Rental.LeaseUpFee = money(ParseOrZero(raw.Rental.MonthlyRent) * 0.5)
	}
	return raw
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
