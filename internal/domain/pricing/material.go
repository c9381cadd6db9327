package pricing

import (
	"math"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
)

// GallonsRequired derives the paint volume for a painted area, rounded up to
// the nearest half gallon.
//
// The rounding rule is load-bearing: paint is bought in half-gallon
// increments, so the result must never be below the exact requirement.
func GallonsRequired(quantity float64, coats int, coverage float64) float64 {
	if quantity <= 0 || coats <= 0 || coverage <= 0 {
		return 0
	}
	raw := quantity * float64(coats) / coverage
	return math.Ceil(raw*2) / 2
}

// materialCost is the per-surface material result. RawCost and MarkupAmount
// are kept separate: the proposal template shows the split.
type materialCost struct {
	Gallons      float64
	RawCost      float64
	MarkupAmount float64
	Cost         float64
	// Coats is the effective coat count the gallons were computed with,
	// after the scheme default was applied.
	Coats int
}

// materialForSurface prices paint for one selected surface.
//
// Only square-footage surfaces consume paint here; linear and unit surfaces
// carry no material cost. A user-entered gallons value (manual override) is
// honored as-is and never recomputed from quantity/coats.
func materialForSurface(item entities.SurfaceLineItem, quantity float64, rules entities.PricingRules) materialCost {
	if rules.ExcludeMaterials || item.Unit != entities.UnitSquareFoot {
		return materialCost{}
	}

	coats := item.Coats
	if coats == 0 {
		coats = rules.Coats
	}

	gallons := GallonsRequired(quantity, coats, rules.Coverage)
	if item.AllowManualGallons {
		gallons = item.Gallons
	}
	if gallons <= 0 {
		return materialCost{}
	}

	raw := gallons * rules.CostPerGallon
	markup := raw * rules.MaterialMarkupPercent / 100
	return materialCost{
		Gallons:      gallons,
		RawCost:      raw,
		MarkupAmount: markup,
		Cost:         raw + markup,
		Coats:        coats,
	}
}
