package pricing

import (
	"math"
	"testing"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
)

func TestGallonsRequired(t *testing.T) {
	t.Run("perimeter walls example", func(t *testing.T) {
		// 2×(12+10)×8 = 352 sqft at 350 sqft/gal, 2 coats:
		// raw ≈ 2.0114, ×2 = 4.0229, ceil = 5, /2 = 2.5.
		got := GallonsRequired(352, 2, 350)
		if got != 2.5 {
			t.Fatalf("expected 2.5 gallons, got %v", got)
		}
	})

	t.Run("exact half gallon is not rounded up", func(t *testing.T) {
		got := GallonsRequired(350, 1, 700) // exactly 0.5
		if got != 0.5 {
			t.Fatalf("expected 0.5 gallons, got %v", got)
		}
	})

	t.Run("zero inputs yield zero", func(t *testing.T) {
		for _, got := range []float64{
			GallonsRequired(0, 2, 350),
			GallonsRequired(352, 0, 350),
			GallonsRequired(352, 2, 0),
		} {
			if got != 0 {
				t.Fatalf("expected 0 gallons, got %v", got)
			}
		}
	})

	t.Run("rounding law", func(t *testing.T) {
		// Result is always a non-negative multiple of 0.5 and never below the
		// exact requirement.
		quantities := []float64{1, 37.5, 120, 352, 999.25, 2048}
		coverages := []float64{200, 350, 400.5}
		for _, q := range quantities {
			for _, cov := range coverages {
				for coats := 1; coats <= 3; coats++ {
					got := GallonsRequired(q, coats, cov)
					exact := q * float64(coats) / cov
					if got < exact {
						t.Fatalf("under-supplied: qty=%v coats=%d cov=%v got=%v exact=%v", q, coats, cov, got, exact)
					}
					if rem := math.Mod(got*2, 1); rem != 0 {
						t.Fatalf("not a half-gallon multiple: qty=%v coats=%d cov=%v got=%v", q, coats, cov, got)
					}
				}
			}
		}
	})
}

func TestMaterialForSurface(t *testing.T) {
	rules := entities.PricingRules{
		Coverage:              350,
		CostPerGallon:         45,
		Coats:                 2,
		MaterialMarkupPercent: 20,
	}
	wall := entities.SurfaceLineItem{
		CategoryName: "Exterior Walls",
		Unit:         entities.UnitSquareFoot,
	}

	t.Run("raw cost and markup kept separate", func(t *testing.T) {
		got := materialForSurface(wall, 352, rules)
		if got.Gallons != 2.5 {
			t.Fatalf("expected 2.5 gallons, got %v", got.Gallons)
		}
		if got.RawCost != 112.5 {
			t.Fatalf("expected raw cost 112.5, got %v", got.RawCost)
		}
		if got.MarkupAmount != 22.5 {
			t.Fatalf("expected markup 22.5, got %v", got.MarkupAmount)
		}
		if got.Cost != 135 {
			t.Fatalf("expected cost 135, got %v", got.Cost)
		}
	})

	t.Run("item coats override scheme coats", func(t *testing.T) {
		item := wall
		item.Coats = 1
		got := materialForSurface(item, 352, rules)
		if got.Gallons != 1.5 {
			t.Fatalf("expected 1.5 gallons for single coat, got %v", got.Gallons)
		}
	})

	t.Run("manual gallons override suppresses recomputation", func(t *testing.T) {
		item := wall
		item.AllowManualGallons = true
		item.Gallons = 4
		got := materialForSurface(item, 352, rules)
		if got.Gallons != 4 {
			t.Fatalf("expected manual 4 gallons, got %v", got.Gallons)
		}
		if got.RawCost != 180 {
			t.Fatalf("expected raw cost 180, got %v", got.RawCost)
		}
	})

	t.Run("linear surface has no material cost", func(t *testing.T) {
		trim := entities.SurfaceLineItem{CategoryName: "Trim", Unit: entities.UnitLinearFoot}
		got := materialForSurface(trim, 120, rules)
		if got.Cost != 0 || got.Gallons != 0 {
			t.Fatalf("expected zero material, got %+v", got)
		}
	})

	t.Run("scheme can exclude materials", func(t *testing.T) {
		r := rules
		r.ExcludeMaterials = true
		got := materialForSurface(wall, 352, r)
		if got.Cost != 0 {
			t.Fatalf("expected zero material, got %+v", got)
		}
	})
}
