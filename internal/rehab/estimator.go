package rehab

import (
	"fmt"
	"strings"

	"DealProjector/internal/model"
)

// ParseStrategy maps a form value to a price column, defaulting to rental.
func ParseStrategy(s string) model.RehabStrategy {
	if model.RehabStrategy(strings.TrimSpace(s)) == model.RehabFlipAirbnb {
		return model.RehabFlipAirbnb
	}
	return model.RehabRental
}

func (it catalogItem) price(s model.RehabStrategy) float64 {
	if s == model.RehabFlipAirbnb {
		return it.airbnb
	}
	return it.rental
}

// Catalog lists every catalog line priced for strategy with quantities
// filled in from the property, nothing checked.
func Catalog(strategy model.RehabStrategy, property model.PropertyDetails) []model.RehabItem {
	r := roomsOf(property)
	items := make([]model.RehabItem, 0, len(catalog))
	for _, it := range catalog {
		items = append(items, model.RehabItem{
			ID:          it.id,
			Category:    it.category,
			Description: it.description,
			Quantity:    it.quantity(r),
			RentalPrice: it.rental,
			AirbnbPrice: it.airbnb,
			Price:       it.price(strategy),
		})
	}
	return items
}

// Estimate prices the checked catalog lines plus any custom contingency lines.
// Unchecked lines are returned with an extended price of 0.
func Estimate(sel model.RehabSelection, property model.PropertyDetails) (*model.RehabEstimate, error) {
	strategy := ParseStrategy(string(sel.Strategy))

	checked := make(map[string]bool, len(sel.Checked))
	for _, id := range sel.Checked {
		if _, ok := lookup(id); !ok {
			return nil, fmt.Errorf("unknown rehab item %q", id)
		}
		checked[id] = true
	}

	est := &model.RehabEstimate{Strategy: strategy, Items: Catalog(strategy, property)}
	for i := range est.Items {
		item := &est.Items[i]
		if checked[item.ID] {
			item.Checked = true
			item.Extended = item.Price * item.Quantity
		}
		est.Total += item.Extended
	}

	for i, c := range sel.Custom {
		if c.Quantity < 0 || c.Price < 0 {
			return nil, fmt.Errorf("custom rehab item %d: negative quantity or price", i+1)
		}
		item := model.RehabItem{
			ID:          fmt.Sprintf("customItem%d", i+1),
			Category:    model.CategoryContingency,
			Description: c.Description,
			Quantity:    c.Quantity,
			RentalPrice: c.Price,
			AirbnbPrice: c.Price,
			Price:       c.Price,
			Extended:    c.Price * c.Quantity,
			Checked:     true,
		}
		est.Items = append(est.Items, item)
		est.Total += item.Extended
	}
	return est, nil
}
