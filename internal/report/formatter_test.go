package report

import (
	"math"
	"strings"
	"testing"

	"DealProjector/internal/model"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{1234.4, "$1,234"},
		{1234.5, "$1,235"},
		{-27040.2, "-$27,040"},
		{1e6, "$1,000,000"},
		{math.NaN(), "No Input"},
		{math.Inf(1), "∞"},
	}
	for _, tt := range tests {
		if got := Money(tt.in); got != tt.want {
			t.Errorf("Money(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(108.8); got != "108.80%" {
		t.Errorf("got %q", got)
	}
}

func TestFormatSummary(t *testing.T) {
	tests := []struct {
		name    string
		s       model.Summary
		want    []string
		missing []string
	}{
		{
			name: "buy and hold",
			s: model.Summary{
				InvestmentType:    model.BuyAndHold,
				PeakCashInvested:  26000,
				Year1ReturnOnCash: model.CashReturn{Percent: 4.25},
				Year1DSCR:         1.31,
			},
			want:    []string{"Buy and Hold", "Cash Required: $26,000", "4.25%", "Year 1 DSCR: 1.31"},
			missing: []string{"Profit", "BRRRR"},
		},
		{
			name: "brrrr",
			s: model.Summary{
				InvestmentType:     model.BRRRR,
				PeakCashInvested:   27040,
				CashAfterRefinance: -3960,
				CashRecoveredPct:   108.8,
				Year1ReturnOnCash:  model.InfiniteReturn,
				RefinanceMonth:     4,
			},
			want: []string{"After Refinance Cash Invested: -$3,960 (month 4)", "∞", "BRRRR Percentage: 108.80%"},
		},
		{
			name: "flip",
			s: model.Summary{
				InvestmentType:     model.Flip,
				PeakCashInvested:   61000,
				FlipProfit:         40000,
				FlipProfitAfterTax: 30400,
				SaleMonth:          7,
			},
			want:    []string{"Profit: $40,000", "Profit After Tax: $30,400", "month 7"},
			missing: []string{"DSCR", "Equity at Year 30"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := FormatSummary("Elm St", tt.s)
			if !strings.HasPrefix(out, "Elm St | ") {
				t.Errorf("missing header: %q", out)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("missing %q in:\n%s", w, out)
				}
			}
			for _, m := range tt.missing {
				if strings.Contains(out, m) {
					t.Errorf("unexpected %q in:\n%s", m, out)
				}
			}
		})
	}
}

func TestFormatYearTable(t *testing.T) {
	var p model.Projection
	p.Year(1).Totals.Rent = 14400
	p.Year(1).Totals.ReturnOnInvestedCash = model.InfiniteReturn
	p.Month(1, 12).Equity = 30000

	out := FormatYearTable(&p)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != model.ProjectionYears+1 {
		t.Fatalf("expected %d lines, got %d", model.ProjectionYears+1, len(lines))
	}
	if !strings.Contains(lines[0], "Cash Flow") {
		t.Errorf("header = %q", lines[0])
	}
	for _, w := range []string{"$14,400", "$30,000", "∞"} {
		if !strings.Contains(lines[1], w) {
			t.Errorf("year 1 row missing %q: %q", w, lines[1])
		}
	}
}
