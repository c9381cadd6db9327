package request

import (
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
)

// PricingSchemeRequest is the admin-screen payload for creating or updating a
// pricing scheme. Rules pass through as the engine-shaped rules object; the
// use case validates model type and percentage ranges.
type PricingSchemeRequest struct {
	Name         string                `json:"name" binding:"required"`
	Type         string                `json:"type" binding:"required"`
	PricingRules entities.PricingRules `json:"pricing_rules"`
}

func (r PricingSchemeRequest) ToEntity() entities.PricingScheme {
	return entities.PricingScheme{
		Name:  r.Name,
		Model: entities.PricingModel(r.Type),
		Rules: r.PricingRules,
	}
}
