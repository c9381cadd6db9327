package interfaces

import (
	"context"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
)

// IPricingSchemeRepository abstracts DynamoDB persistence for PricingScheme.
//
// The service must be able to:
//   - create/update a scheme from the contractor admin screens
//   - fetch a scheme by id when a quote is calculated against it
//   - list a contractor's schemes for the quote builder dropdown

type IPricingSchemeRepository interface {
	Create(ctx context.Context, s entities.PricingScheme) (entities.PricingScheme, error)
	GetByID(ctx context.Context, id string) (entities.PricingScheme, error)
	ListByContractorID(ctx context.Context, contractorID string) ([]entities.PricingScheme, error)
	Update(ctx context.Context, s entities.PricingScheme) (entities.PricingScheme, error)
	Delete(ctx context.Context, id string) error
}
