package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	ProjectionYears = 30
	MonthsPerYear   = 12
	TotalMonths     = ProjectionYears * MonthsPerYear
)

// CashReturn is a return-on-invested-cash percentage. Infinite is set when the
// running cash invested is zero or negative, i.e. the investor has all their
// money back.
type CashReturn struct {
	Percent  float64
	Infinite bool
}

// InfiniteReturn is the sentinel for a non-positive cash position.
var InfiniteReturn = CashReturn{Infinite: true}

// MarshalJSON renders the sentinel as the string "infinite".
func (c CashReturn) MarshalJSON() ([]byte, error) {
	if c.Infinite {
		return []byte(`"infinite"`), nil
	}
	return json.Marshal(c.Percent)
}

func (c *CashReturn) UnmarshalJSON(data []byte) error {
	if string(data) == `"infinite"` {
		*c = InfiniteReturn
		return nil
	}
	var pct float64
	if err := json.Unmarshal(data, &pct); err != nil {
		return fmt.Errorf("cash return: %w", err)
	}
	*c = CashReturn{Percent: pct}
	return nil
}

func (c CashReturn) String() string {
	if c.Infinite {
		return "∞"
	}
	return strconv.FormatFloat(c.Percent, 'f', 2, 64) + "%"
}

// MonthRecord is the financial state of one month. InterestPaid and Expenses
// are stored as non-positive numbers; CashInvested is negative when cash
// flows back to the investor.
type MonthRecord struct {
	Value                float64    `json:"value"`
	Debt                 float64    `json:"debt"`
	Equity               float64    `json:"equity"`
	CashInvested         float64    `json:"cashInvested"`
	TotalCashInvested    float64    `json:"totalCashInvested"`
	InterestPaid         float64    `json:"interestPaid"`
	Rent                 float64    `json:"rent"`
	Expenses             float64    `json:"expenses"`
	CashFlow             float64    `json:"cashFlow"`
	EquityGrowth         float64    `json:"equityGrowth"`
	TotalReturn          float64    `json:"totalReturn"`
	ReturnOnInvestedCash CashReturn `json:"returnOnInvestedCash"`
	DSCR                 float64    `json:"dscr"`
	IsRehabPeriod        bool       `json:"isRehabPeriod"`
}

// YearlyTotals rolls up a year of MonthRecords.
type YearlyTotals struct {
	InterestPaid         float64    `json:"interestPaid"`
	Rent                 float64    `json:"rent"`
	Expenses             float64    `json:"expenses"`
	CashFlow             float64    `json:"cashFlow"`
	EquityGrowth         float64    `json:"equityGrowth"`
	TotalReturn          float64    `json:"totalReturn"`
	CashInvested         float64    `json:"cashInvested"`
	TotalCashInvested    float64    `json:"totalCashInvested"`
	ReturnOnInvestedCash CashReturn `json:"returnOnInvestedCash"`
	DSCR                 float64    `json:"dscr"`
}

type YearRecord struct {
	Months [MonthsPerYear]MonthRecord
	Totals YearlyTotals
}

// Projection is the 30-year output of the engine. It is built once per
// calculation and never mutated afterwards.
type Projection struct {
	Type  InvestmentType
	Years [ProjectionYears]YearRecord
}

// Month returns the record for a 1-based year and month.
func (p *Projection) Month(year, month int) *MonthRecord {
	return &p.Years[year-1].Months[month-1]
}

// Year returns the record for a 1-based year.
func (p *Projection) Year(year int) *YearRecord {
	return &p.Years[year-1]
}

// At returns the record for a 1-based absolute month (1..360).
func (p *Projection) At(totalMonths int) *MonthRecord {
	year, month := SplitMonth(totalMonths)
	return p.Month(year, month)
}

// SplitMonth converts a 1-based absolute month into a 1-based (year, month).
func SplitMonth(totalMonths int) (year, month int) {
	return (totalMonths-1)/MonthsPerYear + 1, (totalMonths-1)%MonthsPerYear + 1
}

// Each calls fn for every month in chronological order.
func (p *Projection) Each(fn func(year, month int, rec *MonthRecord)) {
	for y := range p.Years {
		for m := range p.Years[y].Months {
			fn(y+1, m+1, &p.Years[y].Months[m])
		}
	}
}

type yearJSON struct {
	Months       map[string]MonthRecord `json:"months"`
	YearlyTotals YearlyTotals           `json:"yearlyTotals"`
}

// MarshalJSON keys the output by year then month, the shape the UI reads.
func (p Projection) MarshalJSON() ([]byte, error) {
	out := make(map[string]yearJSON, ProjectionYears)
	for y := range p.Years {
		months := make(map[string]MonthRecord, MonthsPerYear)
		for m, rec := range p.Years[y].Months {
			months[strconv.Itoa(m+1)] = rec
		}
		out[strconv.Itoa(y+1)] = yearJSON{Months: months, YearlyTotals: p.Years[y].Totals}
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the year/month keyed shape written by MarshalJSON.
// Type is not part of that shape and is left unchanged.
func (p *Projection) UnmarshalJSON(data []byte) error {
	var in map[string]yearJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("projection: %w", err)
	}
	for ys, yr := range in {
		y, err := strconv.Atoi(ys)
		if err != nil || y < 1 || y > ProjectionYears {
			return fmt.Errorf("projection: bad year %q", ys)
		}
		for ms, rec := range yr.Months {
			m, err := strconv.Atoi(ms)
			if err != nil || m < 1 || m > MonthsPerYear {
				return fmt.Errorf("projection: bad month %q in year %d", ms, y)
			}
			p.Years[y-1].Months[m-1] = rec
		}
		p.Years[y-1].Totals = yr.YearlyTotals
	}
	return nil
}
