package calculator

import (
	"math"
	"testing"

	"DealProjector/internal/model"
)

func TestMortgagePayment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		annualPct float64
		months    int
		want      float64
	}{
		{"30yr 7%", 75000, 7, 360, 498.98},
		{"15yr 6%", 200000, 6, 180, 1687.71},
		{"zero rate is straight line", 36000, 0, 360, 100},
		{"zero term", 75000, 7, 0, 0},
		{"negative term", 75000, 7, -12, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MortgagePayment(tt.principal, MonthlyRate(tt.annualPct), tt.months)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("got %.4f, want %.2f", got, tt.want)
			}
		})
	}
}

func TestAmortize(t *testing.T) {
	rate := MonthlyRate(7)
	payment := MortgagePayment(75000, rate, 360)

	interest, principal, remaining := Amortize(75000, rate, payment)
	if math.Abs(interest-437.5) > 1e-9 {
		t.Errorf("interest = %v, want 437.5", interest)
	}
	if math.Abs(interest+principal-payment) > 1e-9 {
		t.Errorf("interest + principal = %v, want payment %v", interest+principal, payment)
	}
	if math.Abs(remaining-(75000-principal)) > 1e-9 {
		t.Errorf("remaining = %v", remaining)
	}

	balance := 75000.0
	for i := 0; i < 360; i++ {
		_, _, balance = Amortize(balance, rate, payment)
	}
	if balance != 0 {
		t.Errorf("balance after full term = %v, want 0", balance)
	}
	if i, p, r := Amortize(balance, rate, payment); i != 0 || p != 0 || r != 0 {
		t.Errorf("paid-off loan accrued %v/%v/%v", i, p, r)
	}
}

func TestAmortize_ZeroPaymentIsInterestOnly(t *testing.T) {
	interest, principal, remaining := Amortize(1200, 0.01, 0)
	if interest != 12 || principal != 0 || remaining != 1200 {
		t.Errorf("got %v/%v/%v, want 12/0/1200", interest, principal, remaining)
	}
}

func TestMonthlyAppreciation(t *testing.T) {
	m := MonthlyAppreciation(2)
	if got := math.Pow(1+m, 12); math.Abs(got-1.02) > 1e-12 {
		t.Errorf("12 months compound to %v, want 1.02", got)
	}
	if MonthlyAppreciation(0) != 0 {
		t.Error("zero appreciation should be 0")
	}
}

func TestAppreciationFactor(t *testing.T) {
	if AppreciationFactor(2, 1) != 1 || AppreciationFactor(2, 0) != 1 {
		t.Error("year 1 must not grow")
	}
	if got := AppreciationFactor(2, 3); math.Abs(got-1.0404) > 1e-12 {
		t.Errorf("year 3 factor = %v, want 1.0404", got)
	}
}

func TestFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if Finite(v) != 0 {
			t.Errorf("Finite(%v) = %v", v, Finite(v))
		}
	}
	if Finite(-3.5) != -3.5 {
		t.Error("finite values must pass through")
	}
}

func TestMonthlyRate(t *testing.T) {
	if got := MonthlyRate(12); math.Abs(got-0.01) > 1e-15 {
		t.Errorf("got %v", got)
	}
	if model.Pct(75) != 0.75 {
		t.Error("Pct(75) != 0.75")
	}
}
