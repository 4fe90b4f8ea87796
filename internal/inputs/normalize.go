// Package inputs is the boundary between the calculator form and the
// projection engine. Anything a user can type is accepted: blank or
// malformed numbers become 0 so half-filled forms still project.
package inputs

import (
	"math"
	"strconv"
	"strings"

	"DealProjector/internal/model"
)

// ParseOrZero parses s as a float. Empty, unparsable or non-finite input is 0.
func ParseOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseMonths parses a whole count (months, years), truncating fractions.
// Counts are clamped to 0..TotalMonths: nothing longer than the horizon
// changes a projection, and the clamp keeps the float to int conversion
// in range.
func ParseMonths(s string) int {
	v := math.Trunc(ParseOrZero(s))
	return int(math.Min(math.Max(v, 0), model.TotalMonths))
}

// ParseInvestmentType maps the form value to a strategy. Unknown values fall
// back to buy-and-hold, the form's initial selection.
func ParseInvestmentType(s string) model.InvestmentType {
	switch model.InvestmentType(strings.TrimSpace(s)) {
	case model.BRRRR:
		return model.BRRRR
	case model.Flip:
		return model.Flip
	default:
		return model.BuyAndHold
	}
}

// ParseRentalType maps the form value to a rental type, defaulting to long term.
func ParseRentalType(s string) model.RentalType {
	switch model.RentalType(strings.TrimSpace(s)) {
	case model.ShortMidTerm:
		return model.ShortMidTerm
	case model.NoRental:
		return model.NoRental
	default:
		return model.LongTerm
	}
}

// Normalize converts raw form values into the engine's parameter snapshot.
// It never fails.
func Normalize(raw model.RawInputs) model.InvestmentParameters {
	return model.InvestmentParameters{
		InvestmentType: ParseInvestmentType(raw.InvestmentType),
		Property: model.PropertyDetails{
			Address:       strings.TrimSpace(raw.Property.Address),
			SquareFootage: ParseOrZero(raw.Property.SquareFootage),
			Bedrooms:      ParseOrZero(raw.Property.Bedrooms),
			Bathrooms:     ParseOrZero(raw.Property.Bathrooms),
		},
		Deal: model.DealDetails{
			PurchasePrice:    ParseOrZero(raw.Deal.PurchasePrice),
			RehabCost:        ParseOrZero(raw.Deal.RehabCost),
			HoldingPeriod:    ParseMonths(raw.Deal.HoldingPeriod),
			ClosingCosts:     ParseOrZero(raw.Deal.ClosingCosts),
			AfterRepairValue: ParseOrZero(raw.Deal.AfterRepairValue),
		},
		ShortTerm: model.ShortTermFinancing{
			InterestRate:   ParseOrZero(raw.ShortTerm.InterestRate),
			LenderPoints:   ParseOrZero(raw.ShortTerm.LenderPoints),
			PurchaseLoaned: ParseOrZero(raw.ShortTerm.PurchaseLoaned),
			RehabLoaned:    ParseOrZero(raw.ShortTerm.RehabLoaned),
		},
		LongTerm: model.LongTermFinancing{
			LoanTermYears: ParseMonths(raw.LongTerm.LoanTerm),
			InterestRate:  ParseOrZero(raw.LongTerm.InterestRate),
			LenderPoints:  ParseOrZero(raw.LongTerm.LenderPoints),
			LoanToValue:   ParseOrZero(raw.LongTerm.LoanToValue),
		},
		Rental: model.RentalAssumptions{
			RentalType:         ParseRentalType(raw.Rental.RentalType),
			MonthlyRent:        ParseOrZero(raw.Rental.MonthlyRent),
			AnnualAppreciation: ParseOrZero(raw.Rental.AnnualAppreciation),
			AnnualInsurance:    ParseOrZero(raw.Rental.AnnualInsurance),
			AnnualPropertyTax:  ParseOrZero(raw.Rental.AnnualPropertyTax),
			AnnualMaintenance:  ParseOrZero(raw.Rental.AnnualMaintenance),
			AnnualCapex:        ParseOrZero(raw.Rental.AnnualCapex),
			PMFee:              ParseOrZero(raw.Rental.PMFee),
			VacancyRate:        ParseOrZero(raw.Rental.VacancyRate),
			AverageLeaseLength: ParseOrZero(raw.Rental.AverageLeaseLength),
			LeaseUpFee:         ParseOrZero(raw.Rental.LeaseUpFee),
			ShortTermPMFee:     ParseOrZero(raw.Rental.ShortTermPMFee),
			PersonalUsage:      ParseOrZero(raw.Rental.PersonalUsage),
		},
		Sale: model.SaleAssumptions{
			AgentCommission: ParseOrZero(raw.Sale.AgentCommission),
			ClosingCosts:    ParseOrZero(raw.Sale.ClosingCosts),
			MarginalTaxRate: ParseOrZero(raw.Sale.MarginalTaxRate),
			TimeOnMarket:    ParseMonths(raw.Sale.TimeOnMarket),
		},
	}
}
