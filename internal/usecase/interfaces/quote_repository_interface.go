package interfaces

import (
	"context"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Quotes are written whole (areas, product sets and the breakdown snapshot are
// JSON documents on the item); status transitions update in place so the
// lifecycle timestamps stay consistent.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByContractorID(ctx context.Context, contractorID string) ([]entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
}
