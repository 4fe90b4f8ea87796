package model

// RehabStrategy picks which unit price column of the rehab catalog applies.
type RehabStrategy string

const (
	RehabRental     RehabStrategy = "rental"
	RehabFlipAirbnb RehabStrategy = "flipAirbnb"
)

// RehabCategory groups catalog items the way the estimator displays them.
type RehabCategory string

const (
	CategoryFlooring    RehabCategory = "flooring"
	CategoryKitchen     RehabCategory = "kitchen"
	CategoryBathrooms   RehabCategory = "bathrooms"
	CategoryGeneral     RehabCategory = "general"
	CategoryContingency RehabCategory = "contingency"
)

// RehabItem is one line of the rehab estimate.
type RehabItem struct {
	ID          string        `yaml:"id" json:"id"`
	Category    RehabCategory `yaml:"category" json:"category"`
	Description string        `yaml:"description" json:"description"`
	Quantity    float64       `yaml:"quantity" json:"quantity"`
	RentalPrice float64       `yaml:"rental_price" json:"rentalPrice"`
	AirbnbPrice float64       `yaml:"airbnb_price" json:"airbnbPrice"`
	Price       float64       `yaml:"price" json:"price"`
	Extended    float64       `yaml:"extended" json:"extended"`
	Checked     bool          `yaml:"checked" json:"checked"`
}

// CustomRehabItem is a user-entered contingency line.
type CustomRehabItem struct {
	Description string  `yaml:"description" json:"description"`
	Quantity    float64 `yaml:"quantity" json:"quantity"`
	Price       float64 `yaml:"price" json:"price"`
}

// RehabSelection is what a scenario or API caller picks from the catalog.
type RehabSelection struct {
	Strategy RehabStrategy     `yaml:"strategy" json:"strategy"`
	Checked  []string          `yaml:"checked" json:"checked"`
	Custom   []CustomRehabItem `yaml:"custom,omitempty" json:"custom,omitempty"`
}

// RehabEstimate is the priced rehab line items and their checked total.
type RehabEstimate struct {
	Strategy RehabStrategy `json:"strategy"`
	Items    []RehabItem   `json:"items"`
	Total    float64       `json:"total"`
}
