package model

// Summary holds the headline figures derived from a finished projection.
type Summary struct {
	InvestmentType     InvestmentType `json:"investmentType"`
	PeakCashInvested   float64        `json:"peakCashInvested"`
	CashAfterRefinance float64        `json:"cashAfterRefinance"`
	CashRecoveredPct   float64        `json:"cashRecoveredPct"`
	TotalCashFlow      float64        `json:"totalCashFlow"`
	FlipProfit         float64        `json:"flipProfit"`
	FlipProfitAfterTax float64        `json:"flipProfitAfterTax"`
	Year1DSCR          float64        `json:"year1Dscr"`
	Year1CashFlow      float64        `json:"year1CashFlow"`
	Year1TotalReturn   float64        `json:"year1TotalReturn"`
	Year1ReturnOnCash  CashReturn     `json:"year1ReturnOnCash"`
	FinalEquity        float64        `json:"finalEquity"`
	RefinanceMonth     int            `json:"refinanceMonth,omitempty"`
	SaleMonth          int            `json:"saleMonth,omitempty"`
}
