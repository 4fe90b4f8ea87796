// Package rehab prices a renovation from a fixed catalog of line items. Unit
// prices differ between a rental-grade and a flip/Airbnb-grade finish, and
// quantities are filled in from the property's size and room counts.
package rehab

import (
	"math"

	"DealProjector/internal/model"
)

// rooms is what quantity rules read from the property.
type rooms struct {
	squareFeet float64
	bedrooms   float64
	bathrooms  float64
}

func roomsOf(p model.PropertyDetails) rooms {
	return rooms{
		squareFeet: math.Max(0, p.SquareFootage),
		bedrooms:   math.Max(0, math.Ceil(p.Bedrooms)),
		bathrooms:  math.Max(0, math.Ceil(p.Bathrooms)),
	}
}

type quantityRule func(r rooms) float64

var (
	perSquareFoot quantityRule = func(r rooms) float64 { return r.squareFeet }
	perBathroom   quantityRule = func(r rooms) float64 { return r.bathrooms }
	perDoor       quantityRule = func(r rooms) float64 { return r.bedrooms + r.bathrooms + 1 }
	perDetector   quantityRule = func(r rooms) float64 { return r.bedrooms + 2 }
)

func fixed(n float64) quantityRule {
	return func(rooms) float64 { return n }
}

type catalogItem struct {
	id          string
	category    model.RehabCategory
	description string
	rental      float64
	airbnb      float64
	quantity    quantityRule
}

var catalog = []catalogItem{
	{"lvpFlooring", model.CategoryFlooring, "LVP Flooring", 6, 7, perSquareFoot},
	{"carpeting", model.CategoryFlooring, "Carpeting", 2.5, 3.5, perSquareFoot},

	{"newKitchen", model.CategoryKitchen, "New Kitchen", 7000, 12500, fixed(1)},
	{"kitchenAppliances", model.CategoryKitchen, "Kitchen Appliances", 3000, 3500, fixed(1)},
	{"newCountertops", model.CategoryKitchen, "New Countertops", 1500, 3500, fixed(1)},
	{"paintCabinets", model.CategoryKitchen, "Paint Cabinets + Pulls", 1200, 1200, fixed(1)},

	{"newBathroom", model.CategoryBathrooms, "New Bathroom", 5500, 7500, perBathroom},
	{"newVanity", model.CategoryBathrooms, "New Vanity", 400, 600, perBathroom},
	{"newMirrorLight", model.CategoryBathrooms, "New Mirror/Light", 300, 300, perBathroom},
	{"newToilet", model.CategoryBathrooms, "New Toilet", 450, 450, perBathroom},

	{"doorKnobs", model.CategoryGeneral, "Door Knobs", 40, 60, perDoor},
	{"newInteriorDoors", model.CategoryGeneral, "New Interior Doors", 275, 275, perDoor},
	{"newExteriorDoors", model.CategoryGeneral, "New Exterior Doors", 500, 750, fixed(2)},
	{"newWindows", model.CategoryGeneral, "New Windows", 450, 450, fixed(10)},
	{"drywall", model.CategoryGeneral, "Drywall", 15.5, 17, perSquareFoot},
	{"interiorPaint", model.CategoryGeneral, "Interior Paint", 3, 3, perSquareFoot},
	{"exteriorPaint", model.CategoryGeneral, "Exterior Paint", 5500, 5500, fixed(1)},
	{"electrical", model.CategoryGeneral, "Electrical", 8000, 8000, fixed(1)},
	{"newRoof", model.CategoryGeneral, "New Roof", 10000, 10000, fixed(1)},
	{"newSidingFascia", model.CategoryGeneral, "New Siding + Fascia", 15000, 20000, fixed(1)},
	{"landscaping", model.CategoryGeneral, "Landscaping", 1500, 2500, fixed(1)},
	{"basementDryLock", model.CategoryGeneral, "Basement Dry Lock", 2000, 2000, fixed(1)},
	{"concretePorchWork", model.CategoryGeneral, "Concrete Porch Work", 1500, 1500, fixed(1)},
	{"newAC", model.CategoryGeneral, "New AC", 3500, 3500, fixed(1)},
	{"newFurnace", model.CategoryGeneral, "New Furnace", 3500, 3500, fixed(1)},
	{"waterHeater", model.CategoryGeneral, "Water Heater", 1500, 1500, fixed(1)},
	{"smokeCoDetectors", model.CategoryGeneral, "Smoke/CO2 Detectors", 50, 50, perDetector},
	{"windowBlinds", model.CategoryGeneral, "Window Blinds", 35, 60, fixed(10)},

	{"unexpectedPerFoot", model.CategoryContingency, "Unexpected Per Foot", 5, 5, perSquareFoot},
}

func lookup(id string) (catalogItem, bool) {
	for _, it := range catalog {
		if it.id == id {
			return it, true
		}
	}
	return catalogItem{}, false
}
