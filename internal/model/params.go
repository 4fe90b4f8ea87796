package model

// InvestmentType selects the strategy branch of the projection engine.
type InvestmentType string

const (
	BuyAndHold InvestmentType = "buyAndHold"
	BRRRR      InvestmentType = "brrrr"
	Flip       InvestmentType = "flip"
)

// RentalType selects which operating cost percentages apply to rent.
type RentalType string

const (
	LongTerm     RentalType = "longTerm"
	ShortMidTerm RentalType = "shortMidTerm"
	NoRental     RentalType = "noRental"
)

// PropertyDetails is display and rehab-estimator data. The engine never reads it.
type PropertyDetails struct {
	Address       string
	SquareFootage float64
	Bedrooms      float64
	Bathrooms     float64
}

// DealDetails holds acquisition amounts. HoldingPeriod is in months.
type DealDetails struct {
	PurchasePrice    float64
	RehabCost        float64
	HoldingPeriod    int
	ClosingCosts     float64
	AfterRepairValue float64
}

// ShortTermFinancing is the hard-money loan used during rehab (BRRRR, Flip).
// All fields are percent numbers: 10 means 10%.
type ShortTermFinancing struct {
	InterestRate   float64
	LenderPoints   float64
	PurchaseLoaned float64
	RehabLoaned    float64
}

// LongTermFinancing is the amortizing mortgage. LoanTermYears is whole years,
// the rest are percent numbers.
type LongTermFinancing struct {
	LoanTermYears int
	InterestRate  float64
	LenderPoints  float64
	LoanToValue   float64
}

// RentalAssumptions drive rent and operating expenses. Amounts are currency,
// everything ending in Pct or Rate is a percent number.
type RentalAssumptions struct {
	RentalType         RentalType
	MonthlyRent        float64
	AnnualAppreciation float64
	AnnualInsurance    float64
	AnnualPropertyTax  float64
	AnnualMaintenance  float64
	AnnualCapex        float64
	PMFee              float64
	VacancyRate        float64
	AverageLeaseLength float64
	LeaseUpFee         float64
	ShortTermPMFee     float64
	PersonalUsage      float64
}

// SaleAssumptions apply to Flip only.
type SaleAssumptions struct {
	AgentCommission float64
	ClosingCosts    float64
	MarginalTaxRate float64
	TimeOnMarket    int
}

// InvestmentParameters is the normalized, immutable input snapshot of one
// projection. Percentages are stored undivided and converted with Pct at the
// point of use.
type InvestmentParameters struct {
	Property       PropertyDetails
	Deal           DealDetails
	ShortTerm      ShortTermFinancing
	LongTerm       LongTermFinancing
	Rental         RentalAssumptions
	Sale           SaleAssumptions
	InvestmentType InvestmentType
}

// Pct converts a percent number to a fraction.
func Pct(v float64) float64 { return v / 100 }
