package model

// RawInputs mirrors the calculator form: every numeric field is the string the
// user typed, possibly empty or half-typed. Scenario files and API bodies
// decode straight into it.
type RawInputs struct {
	InvestmentType string       `yaml:"investment_type" json:"investmentType"`
	Property       RawProperty  `yaml:"property" json:"propertyDetails"`
	Deal           RawDeal      `yaml:"deal" json:"dealDetails"`
	ShortTerm      RawShortTerm `yaml:"short_term" json:"shortTermFinancing"`
	LongTerm       RawLongTerm  `yaml:"long_term" json:"financingDetails"`
	Rental         RawRental    `yaml:"rental" json:"rentalDetails"`
	Sale           RawSale      `yaml:"sale" json:"saleInputs"`
}

type RawProperty struct {
	Address       string `yaml:"address" json:"address"`
	SquareFootage string `yaml:"square_footage" json:"squareFootage"`
	Bedrooms      string `yaml:"bedrooms" json:"bedrooms"`
	Bathrooms     string `yaml:"bathrooms" json:"bathrooms"`
}

type RawDeal struct {
	PurchasePrice    string `yaml:"purchase_price" json:"purchasePrice"`
	RehabCost        string `yaml:"rehab_cost" json:"rehabCost"`
	HoldingPeriod    string `yaml:"holding_period" json:"holdingPeriod"`
	ClosingCosts     string `yaml:"closing_costs" json:"closingCosts"`
	AfterRepairValue string `yaml:"after_repair_value" json:"afterRepairValue"`
}

type RawShortTerm struct {
	InterestRate   string `yaml:"interest_rate" json:"interestRate"`
	LenderPoints   string `yaml:"lender_points" json:"lendersPoints"`
	PurchaseLoaned string `yaml:"purchase_loaned" json:"purchaseLoaned"`
	RehabLoaned    string `yaml:"rehab_loaned" json:"rehabLoaned"`
}

type RawLongTerm struct {
	LoanTerm     string `yaml:"loan_term" json:"loanTerm"`
	InterestRate string `yaml:"interest_rate" json:"interestRate"`
	LenderPoints string `yaml:"lender_points" json:"lenderPoints"`
	LoanToValue  string `yaml:"loan_to_value" json:"loanToValue"`
}

type RawRental struct {
	RentalType         string `yaml:"rental_type" json:"rentalType"`
	MonthlyRent        string `yaml:"monthly_rent" json:"monthlyRent"`
	AnnualAppreciation string `yaml:"annual_appreciation" json:"annualAppreciation"`
	AnnualInsurance    string `yaml:"annual_insurance" json:"annualInsurance"`
	AnnualPropertyTax  string `yaml:"annual_property_tax" json:"annualPropertyTax"`
	AnnualMaintenance  string `yaml:"annual_maintenance" json:"annualMaintenance"`
	AnnualCapex        string `yaml:"annual_capex" json:"annualCapex"`
	PMFee              string `yaml:"pm_fee" json:"pmFee"`
	VacancyRate        string `yaml:"vacancy_rate" json:"vacancyRate"`
	AverageLeaseLength string `yaml:"average_lease_length" json:"averageLeaseLength"`
	LeaseUpFee         string `yaml:"lease_up_fee" json:"leaseUpFee"`
	ShortTermPMFee     string `yaml:"short_term_pm_fee" json:"shortTermPmFee"`
	PersonalUsage      string `yaml:"personal_usage" json:"personalUsage"`
}

type RawSale struct {
	AgentCommission string `yaml:"agent_commission" json:"agentCommission"`
	ClosingCosts    string `yaml:"closing_costs" json:"closingCosts"`
	MarginalTaxRate string `yaml:"marginal_tax_rate" json:"marginalTaxRate"`
	TimeOnMarket    string `yaml:"time_on_market" json:"timeOnMarket"`
}

// Scenario is a named deal as stored in a scenario file.
type Scenario struct {
	Name   string          `yaml:"name" json:"name"`
	Inputs RawInputs       `yaml:"inputs" json:"inputs"`
	Rehab  *RehabSelection `yaml:"rehab,omitempty" json:"rehab,omitempty"`
}
