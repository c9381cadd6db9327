package response

import (
	"time"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
)

type PricingSchemeResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Type         string                `json:"type"`
	PricingRules entities.PricingRules `json:"pricing_rules"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func FromPricingScheme(s entities.PricingScheme) PricingSchemeResponse {
	return PricingSchemeResponse{
		ID:           s.ID,
		Name:         s.Name,
		Type:         string(s.Model),
		PricingRules: s.Rules,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func FromPricingSchemes(schemes []entities.PricingScheme) []PricingSchemeResponse {
	out := make([]PricingSchemeResponse, 0, len(schemes))
	for _, s := range schemes {
		out = append(out, FromPricingScheme(s))
	}
	return out
}
