package calculator

import (
	"math"

	"DealProjector/internal/model"
)

// MonthlyRate converts an annual percent rate to a monthly fraction.
func MonthlyRate(annualPct float64) float64 {
	return model.Pct(annualPct) / 12
}

// MortgagePayment returns the fixed monthly payment of a fully amortizing loan:
//
//	P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate degenerates to straight-line P/n; a non-positive term yields 0.
func MortgagePayment(principal, rate float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	if rate == 0 {
		return principal / float64(termMonths)
	}
	growth := math.Pow(1+rate, float64(termMonths))
	return principal * rate * growth / (growth - 1)
}

// BalanceTolerance is the balance below which a loan counts as paid off.
const BalanceTolerance = 0.01

// Amortize splits one payment into interest and principal and returns the
// balance after the payment. A paid-off loan accrues nothing, and a zero
// payment is treated as interest-only.
func Amortize(balance, rate, payment float64) (interest, principal, remaining float64) {
	if balance <= BalanceTolerance {
		return 0, 0, 0
	}
	interest = balance * rate
	if payment <= 0 {
		return interest, 0, balance
	}
	principal = payment - interest
	remaining = balance - principal
	if remaining < BalanceTolerance {
		remaining = 0
	}
	return interest, principal, remaining
}

// MonthlyAppreciation converts an annual percent appreciation to the
// equivalent compounded monthly rate: (1+annual)^(1/12) - 1.
func MonthlyAppreciation(annualPct float64) float64 {
	return math.Pow(1+model.Pct(annualPct), 1.0/12) - 1
}

// AppreciationFactor is the compounded growth applied to fixed costs in a
// 1-based projection year. Year 1 is never grown.
func AppreciationFactor(annualPct float64, year int) float64 {
	if year <= 1 {
		return 1
	}
	return math.Pow(1+model.Pct(annualPct), float64(year-1))
}

// Finite returns v, or 0 when v is NaN or infinite.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
