package pricing

import "github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"

// EffectiveCategoryRate resolves the rate for a (category, tier) pair against a
// base rate table and sparse per-tier overrides.
//
// Overrides are sparse on purpose: a contractor may reprice only a few
// categories for "best" and inherit the rest. A missing override (or a missing
// tier table entirely) falls back to the base rate; a missing base rate
// resolves to zero and is surfaced as a configuration warning by the caller.
func EffectiveCategoryRate(base map[string]float64, overrides map[entities.Tier]map[string]float64, category string, tier entities.Tier) float64 {
	if tier != entities.TierNone {
		if tierRates, ok := overrides[tier]; ok {
			if rate, ok := tierRates[category]; ok {
				return rate
			}
		}
	}
	return base[category]
}

// EffectiveRate resolves a single scalar rate (hourly rate, turnkey rate) with
// the same fallback behavior as EffectiveCategoryRate.
func EffectiveRate(base float64, overrides map[entities.Tier]float64, tier entities.Tier) float64 {
	if tier != entities.TierNone {
		if rate, ok := overrides[tier]; ok {
			return rate
		}
	}
	return base
}
