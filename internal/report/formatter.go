// Package report renders projections as plain text for logs and exports.
package report

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"DealProjector/internal/model"
)

var typeLabels = map[model.InvestmentType]string{
	model.BuyAndHold: "Buy and Hold",
	model.BRRRR:      "BRRRR",
	model.Flip:       "Flip",
}

// TypeLabel is the display name of an investment type.
func TypeLabel(t model.InvestmentType) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Money formats a dollar amount rounded to the dollar: -$1,234.
func Money(v float64) string {
	if math.IsNaN(v) {
		return "No Input"
	}
	if math.IsInf(v, 0) {
		return "∞"
	}
	r := math.Round(v)
	if r < 0 {
		return "-$" + humanize.Comma(int64(-r))
	}
	return "$" + humanize.Comma(int64(r))
}

// Percent formats a percentage with two decimals.
func Percent(v float64) string {
	return humanize.FormatFloat("#,###.##", v) + "%"
}

// FormatSummary renders the key metrics block for one projection.
func FormatSummary(name string, s model.Summary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s | %s\n\n", name, TypeLabel(s.InvestmentType)))

	switch s.InvestmentType {
	case model.BRRRR:
		b.WriteString(fmt.Sprintf("Cash Required: %s\n", Money(s.PeakCashInvested)))
		b.WriteString(fmt.Sprintf("After Refinance Cash Invested: %s (month %d)\n", Money(s.CashAfterRefinance), s.RefinanceMonth))
		b.WriteString(fmt.Sprintf("Annual Return on Invested Cash: %s\n", s.Year1ReturnOnCash))
		b.WriteString(fmt.Sprintf("Total Return: %s\n", Money(s.Year1TotalReturn)))
		b.WriteString(fmt.Sprintf("BRRRR Percentage: %s\n", Percent(s.CashRecoveredPct)))
	case model.Flip:
		b.WriteString(fmt.Sprintf("Cash Required: %s\n", Money(s.PeakCashInvested)))
		b.WriteString(fmt.Sprintf("Profit: %s\n", Money(s.FlipProfit)))
		b.WriteString(fmt.Sprintf("Profit After Tax: %s\n", Money(s.FlipProfitAfterTax)))
		b.WriteString(fmt.Sprintf("Sold in month %d\n", s.SaleMonth))
		return b.String()
	default:
		b.WriteString(fmt.Sprintf("Annual Return on Invested Cash: %s\n", s.Year1ReturnOnCash))
		b.WriteString(fmt.Sprintf("Total Return: %s\n", Money(s.Year1TotalReturn)))
		b.WriteString(fmt.Sprintf("Cash Required: %s\n", Money(s.PeakCashInvested)))
	}

	b.WriteString(fmt.Sprintf("Year 1 DSCR: %.2f\n", s.Year1DSCR))
	b.WriteString(fmt.Sprintf("Total Cash Flow (30y): %s\n", Money(s.TotalCashFlow)))
	b.WriteString(fmt.Sprintf("Equity at Year 30: %s\n", Money(s.FinalEquity)))
	return b.String()
}

// FormatYearTable renders one row per year: totals plus the year-end
// balance sheet.
func FormatYearTable(p *model.Projection) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Year\tRent\tExpenses\tCash Flow\tEquity\tCash Invested\tReturn\tDSCR\t")
	for y := 1; y <= model.ProjectionYears; y++ {
		yr := p.Year(y)
		end := yr.Months[model.MonthsPerYear-1]
		t := yr.Totals
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%.2f\t\n",
			y, Money(t.Rent), Money(t.Expenses), Money(t.CashFlow),
			Money(end.Equity), Money(t.TotalCashInvested), t.ReturnOnInvestedCash, t.DSCR)
	}
	w.Flush()
	return b.String()
}
