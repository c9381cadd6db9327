package pricing

import (
	"fmt"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
)

// Fallback production rates per measurement unit, used by hourly schemes when
// a category has no configured production rate. Values are units-per-hour for
// an average crew member (sqft of wall, linear feet of trim, doors).
var defaultProductionRates = map[entities.MeasurementUnit]float64{
	entities.UnitSquareFoot: 125,
	entities.UnitLinearFoot: 60,
	entities.UnitCount:      2,
	entities.UnitHour:       1,
}

// laborCost is the per-surface labor result.
type laborCost struct {
	Cost    float64
	Rate    float64
	Hours   float64
	Warning string
}

// laborForSurface prices one selected surface under the scheme's model.
//
// Turnkey schemes return zero here: turnkey labor is priced once at the
// aggregate level from total home square footage, never per surface.
//
// A missing rate degrades to a zero cost instead of failing the calculation
// (an incomplete pricing configuration must not block quoting), but the
// warning names the category so the contractor knows the quote under-prices.
func laborForSurface(item entities.SurfaceLineItem, quantity float64, model entities.PricingModel, rules entities.PricingRules, tier entities.Tier) laborCost {
	switch model {
	case entities.PricingModelRateBasedSqft, entities.PricingModelProductionBased:
		rate := EffectiveCategoryRate(rules.LaborRates, rules.GBBRates, item.CategoryName, tier)
		if rate == 0 {
			return laborCost{Warning: missingRateWarning(item.CategoryName, "labor rate")}
		}
		return laborCost{Cost: quantity * rate, Rate: rate}

	case entities.PricingModelFlatRateUnit:
		price := EffectiveCategoryRate(rules.UnitPrices, rules.GBBUnitPrices, item.CategoryName, tier)
		if price == 0 {
			return laborCost{Warning: missingRateWarning(item.CategoryName, "unit price")}
		}
		return laborCost{Cost: quantity * price, Rate: price}

	case entities.PricingModelHourly:
		production := EffectiveCategoryRate(rules.ProductionRates, rules.GBBProductionRates, item.CategoryName, tier)
		if production == 0 {
			production = defaultProductionRates[item.Unit]
		}
		if production == 0 {
			return laborCost{Warning: missingRateWarning(item.CategoryName, "production rate")}
		}
		hours := quantity / production
		billable := EffectiveRate(rules.BillableLaborRate, rules.GBBHourlyRates, tier)
		if billable == 0 {
			return laborCost{Hours: hours, Warning: missingRateWarning(item.CategoryName, "billable labor rate")}
		}
		// Crew size shortens the calendar duration of the job, not the billed
		// hours: cost stays estimated hours × billable rate.
		return laborCost{Cost: hours * billable, Rate: billable, Hours: hours}

	case entities.PricingModelTurnkey:
		return laborCost{}
	}
	return laborCost{Warning: fmt.Sprintf("unknown pricing model %q", model)}
}

// turnkeyLaborTotal prices the whole home under a turnkey scheme.
//
// Rate resolution order: turnkeyRate, overridden by the job-type rate
// (interior/exterior) when configured, then by the tier override.
func turnkeyLaborTotal(totalHomeSqft float64, jobType entities.JobType, rules entities.PricingRules, tier entities.Tier) (float64, string) {
	base := rules.TurnkeyRate
	switch jobType {
	case entities.JobTypeInterior:
		if rules.InteriorRate != 0 {
			base = rules.InteriorRate
		}
	case entities.JobTypeExterior:
		if rules.ExteriorRate != 0 {
			base = rules.ExteriorRate
		}
	}
	rate := EffectiveRate(base, rules.GBBTurnkeyRates, tier)
	if rate == 0 {
		return 0, "no turnkey rate configured"
	}
	return totalHomeSqft * rate, ""
}

func missingRateWarning(category, kind string) string {
	return fmt.Sprintf("no %s configured for %q; surface priced at 0", kind, category)
}
