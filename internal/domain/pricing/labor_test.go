package pricing

import (
	"math"
	"testing"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
)

func TestLaborForSurface_RateBased(t *testing.T) {
	rules := entities.PricingRules{
		LaborRates: map[string]float64{"Exterior Walls": 1.75},
		GBBRates: map[entities.Tier]map[string]float64{
			entities.TierBest: {"Exterior Walls": 2.40},
		},
	}
	wall := entities.SurfaceLineItem{CategoryName: "Exterior Walls", Unit: entities.UnitSquareFoot}

	t.Run("quantity times rate", func(t *testing.T) {
		got := laborForSurface(wall, 352, entities.PricingModelRateBasedSqft, rules, entities.TierNone)
		if got.Cost != 616 {
			t.Fatalf("expected 616, got %v", got.Cost)
		}
		if got.Rate != 1.75 {
			t.Fatalf("expected rate 1.75, got %v", got.Rate)
		}
	})

	t.Run("tier override reprices", func(t *testing.T) {
		got := laborForSurface(wall, 100, entities.PricingModelProductionBased, rules, entities.TierBest)
		if got.Cost != 240 {
			t.Fatalf("expected 240, got %v", got.Cost)
		}
	})

	t.Run("missing rate degrades to zero with warning", func(t *testing.T) {
		item := entities.SurfaceLineItem{CategoryName: "Gutters", Unit: entities.UnitLinearFoot}
		got := laborForSurface(item, 80, entities.PricingModelRateBasedSqft, rules, entities.TierNone)
		if got.Cost != 0 {
			t.Fatalf("expected zero cost, got %v", got.Cost)
		}
		if got.Warning == "" {
			t.Fatalf("expected a configuration warning")
		}
	})
}

func TestLaborForSurface_FlatRateUnit(t *testing.T) {
	rules := entities.PricingRules{
		UnitPrices: map[string]float64{"Doors": 85},
	}
	doors := entities.SurfaceLineItem{CategoryName: "Doors", Unit: entities.UnitCount}

	got := laborForSurface(doors, 3, entities.PricingModelFlatRateUnit, rules, entities.TierNone)
	if got.Cost != 255 {
		t.Fatalf("expected 255, got %v", got.Cost)
	}
	if got.Hours != 0 {
		t.Fatalf("flat rate should not estimate hours, got %v", got.Hours)
	}
}

func TestLaborForSurface_Hourly(t *testing.T) {
	rules := entities.PricingRules{
		ProductionRates:   map[string]float64{"Interior Walls": 150},
		BillableLaborRate: 65,
		CrewSize:          3,
	}
	wall := entities.SurfaceLineItem{CategoryName: "Interior Walls", Unit: entities.UnitSquareFoot}

	t.Run("hours from production rate", func(t *testing.T) {
		got := laborForSurface(wall, 450, entities.PricingModelHourly, rules, entities.TierNone)
		if got.Hours != 3 {
			t.Fatalf("expected 3 hours, got %v", got.Hours)
		}
		// Crew size never multiplies the billed cost.
		if got.Cost != 195 {
			t.Fatalf("expected 195, got %v", got.Cost)
		}
	})

	t.Run("fallback production rate by unit", func(t *testing.T) {
		trim := entities.SurfaceLineItem{CategoryName: "Baseboards", Unit: entities.UnitLinearFoot}
		got := laborForSurface(trim, 120, entities.PricingModelHourly, rules, entities.TierNone)
		wantHours := 120.0 / defaultProductionRates[entities.UnitLinearFoot]
		if math.Abs(got.Hours-wantHours) > 1e-9 {
			t.Fatalf("expected %v hours, got %v", wantHours, got.Hours)
		}
	})

	t.Run("tier hourly rate override", func(t *testing.T) {
		r := rules
		r.GBBHourlyRates = map[entities.Tier]float64{entities.TierBest: 80}
		got := laborForSurface(wall, 150, entities.PricingModelHourly, r, entities.TierBest)
		if got.Cost != 80 {
			t.Fatalf("expected 80, got %v", got.Cost)
		}
	})
}

func TestTurnkeyLaborTotal(t *testing.T) {
	rules := entities.PricingRules{
		TurnkeyRate:  3.50,
		ExteriorRate: 4.25,
		GBBTurnkeyRates: map[entities.Tier]float64{
			entities.TierBest: 5.00,
		},
	}

	t.Run("base rate", func(t *testing.T) {
		got, warning := turnkeyLaborTotal(2000, "", rules, entities.TierNone)
		if got != 7000 || warning != "" {
			t.Fatalf("expected 7000, got %v (warning %q)", got, warning)
		}
	})

	t.Run("job type override", func(t *testing.T) {
		got, _ := turnkeyLaborTotal(2000, entities.JobTypeExterior, rules, entities.TierNone)
		if got != 8500 {
			t.Fatalf("expected 8500, got %v", got)
		}
	})

	t.Run("tier override wins last", func(t *testing.T) {
		got, _ := turnkeyLaborTotal(2000, entities.JobTypeExterior, rules, entities.TierBest)
		if got != 10000 {
			t.Fatalf("expected 10000, got %v", got)
		}
	})

	t.Run("no rate configured warns", func(t *testing.T) {
		got, warning := turnkeyLaborTotal(2000, "", entities.PricingRules{}, entities.TierNone)
		if got != 0 || warning == "" {
			t.Fatalf("expected zero with warning, got %v (warning %q)", got, warning)
		}
	})
}
