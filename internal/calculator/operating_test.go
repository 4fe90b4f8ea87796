package calculator

import (
	"math"
	"testing"

	"DealProjector/internal/model"
)

func longTermRental() model.RentalAssumptions {
	return model.RentalAssumptions{
		RentalType:         model.LongTerm,
		MonthlyRent:        1200,
		AnnualAppreciation: 2,
		AnnualInsurance:    1200,
		AnnualPropertyTax:  2400,
		AnnualMaintenance:  7,
		AnnualCapex:        7,
		PMFee:              10,
		VacancyRate:        3,
		AverageLeaseLength: 3,
		LeaseUpFee:         600,
		ShortTermPMFee:     20,
		PersonalUsage:      10,
	}
}

func TestMonthlyRent(t *testing.T) {
	r := longTermRental()
	tests := []struct {
		name          string
		holdingPeriod int
		month         int
		want          float64
	}{
		{"during holding period", 3, 3, 0},
		{"first rented month", 3, 4, 1200},
		{"end of first rented year", 3, 14, 1200},
		{"second rented year", 3, 15, 1224},
		{"no holding period", 0, 1, 1200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyRent(r, tt.holdingPeriod, tt.month)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	r.RentalType = model.NoRental
	if got := MonthlyRent(r, 0, 50); got != 0 {
		t.Errorf("no rental collected %v", got)
	}
}

func TestMonthlyExpenses_LongTerm(t *testing.T) {
	r := longTermRental()
	got := MonthlyExpenses(r, ExpenseInput{Year: 1, Rent: 1200})
	// 100 + 200 fixed, 27% of rent, 600/36 lease-up.
	want := 300 + 1200*0.27 + 600.0/36
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}

	year2 := MonthlyExpenses(r, ExpenseInput{Year: 2, Rent: 1200})
	if math.Abs(year2-got-300*0.02) > 1e-9 {
		t.Errorf("year 2 fixed costs not appreciated: %v vs %v", year2, got)
	}
}

func TestMonthlyExpenses_ZeroLeaseLength(t *testing.T) {
	r := longTermRental()
	r.AverageLeaseLength = 0
	got := MonthlyExpenses(r, ExpenseInput{Year: 1})
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("expenses not finite: %v", got)
	}
	if want := 300 + 600.0/12; math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMonthlyExpenses_ShortMidTerm(t *testing.T) {
	r := longTermRental()
	r.RentalType = model.ShortMidTerm
	got := MonthlyExpenses(r, ExpenseInput{Year: 1, Rent: 3000})
	want := 300 + 3000*0.47
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMonthlyExpenses_DebtService(t *testing.T) {
	r := longTermRental()
	r.RentalType = model.NoRental
	service := DebtService{Interest: 400, Principal: 100}

	tests := []struct {
		name string
		in   ExpenseInput
		want float64
	}{
		{"post rehab pays full service", ExpenseInput{Year: 1, Service: service}, 800},
		{"rehab without interest charge", ExpenseInput{Year: 1, Service: service, IsRehabPeriod: true}, 300},
		{"rehab with interest charge", ExpenseInput{Year: 1, Service: service, IsRehabPeriod: true, ChargeRehabInterest: true}, 700},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthlyExpenses(r, tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDebtServiceTotal(t *testing.T) {
	if got := (DebtService{Interest: -40, Principal: 60}).Total(); got != 100 {
		t.Errorf("got %v, want 100", got)
	}
}
