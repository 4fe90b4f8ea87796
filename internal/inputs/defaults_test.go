package inputs

import (
	"testing"

	"DealProjector/internal/model"
)

func TestWithDefaults_KeepsUserValues(t *testing.T) {
	raw := model.RawInputs{
		LongTerm: model.RawLongTerm{InterestRate: "6.5"},
		Rental:   model.RawRental{RentalType: "shortMidTerm"},
	}
	got := WithDefaults(raw)

	if got.LongTerm.InterestRate != "6.5" {
		t.Errorf("user rate overwritten: %s", got.LongTerm.InterestRate)
	}
	if got.LongTerm.LoanToValue != "75" || got.LongTerm.LoanTerm != "30" {
		t.Errorf("blank long term fields not defaulted: %+v", got.LongTerm)
	}
	if got.Rental.RentalType != "shortMidTerm" || got.Rental.ShortTermPMFee != "20" {
		t.Errorf("rental = %+v", got.Rental)
	}
	if got.InvestmentType != string(model.BuyAndHold) {
		t.Errorf("type = %s", got.InvestmentType)
	}
}

func TestSuggestRehabDuration(t *testing.T) {
	tests := []struct {
		cost float64
		want int
	}{
		{0, 0},
		{10000, 2},
		{25000, 2},
		{25001, 3},
		{50000, 3},
		{75000, 4},
		{100000, 5},
		{250000, 6},
	}
	for _, tt := range tests {
		if got := SuggestRehabDuration(tt.cost); got != tt.want {
			t.Errorf("SuggestRehabDuration(%v) = %d, want %d", tt.cost, got, tt.want)
		}
	}
}

func TestApplyDerived(t *testing.T) {
	raw := model.RawInputs{
		Deal:   model.RawDeal{PurchasePrice: "200000", RehabCost: "40000"},
		Rental: model.RawRental{MonthlyRent: "2000"},
	}
	got := ApplyDerived(raw)

	want := map[string]string{
		"arv":      "260000.00",
		"closing":  "2000.00",
		"holding":  "3",
		"tax":      "2600.00",
		"lease up": "1000.00",
	}
	have := map[string]string{
		"arv":      got.Deal.AfterRepairValue,
		"closing":  got.Deal.ClosingCosts,
		"holding":  got.Deal.HoldingPeriod,
		"tax":      got.Rental.AnnualPropertyTax,
		"lease up": got.Rental.LeaseUpFee,
	}
	for k, w := range want {
		if have[k] != w {
			t.Errorf("%s = %q, want %q", k, have[k], w)
		}
	}

	raw.Deal.AfterRepairValue = "300000"
	if got := ApplyDerived(raw); got.Deal.AfterRepairValue != "300000" || got.Rental.AnnualPropertyTax != "3000.00" {
		t.Errorf("explicit ARV overwritten or ignored: %+v", got.Deal)
	}
}
