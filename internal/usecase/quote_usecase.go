package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/pricing"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound            = errors.New("quote not found")
	ErrInvalidQuoteID           = errors.New("invalid quote id")
	ErrInvalidCustomerName      = errors.New("invalid customer name")
	ErrQuoteNotEditable         = errors.New("quote is no longer editable")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrQuoteSchemeNotConfigured = errors.New("quote has no pricing scheme")
)

// allowedTransitions is the quote lifecycle. A quote leaves draft exactly once
// (send); customer-driven states follow, and archive is the terminal state
// reachable from anywhere after sending.
var allowedTransitions = map[entities.QuoteStatus][]entities.QuoteStatus{
	entities.QuoteStatusDraft:     {entities.QuoteStatusSent},
	entities.QuoteStatusSent:      {entities.QuoteStatusViewed, entities.QuoteStatusAccepted, entities.QuoteStatusDeclined, entities.QuoteStatusArchived},
	entities.QuoteStatusViewed:    {entities.QuoteStatusViewed, entities.QuoteStatusAccepted, entities.QuoteStatusDeclined, entities.QuoteStatusArchived},
	entities.QuoteStatusAccepted:  {entities.QuoteStatusScheduled, entities.QuoteStatusArchived},
	entities.QuoteStatusScheduled: {entities.QuoteStatusArchived},
	entities.QuoteStatusDeclined:  {entities.QuoteStatusArchived},
}

// IQuoteUseCase exposes quote building, calculation and lifecycle operations.
//
// Calculate is the stateless single source of truth for pricing math: the same
// engine runs whether a quote is being previewed in the builder or persisted.

type IQuoteUseCase interface {
	CreateDraft(ctx context.Context, contractorID string, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, contractorID, id string) (entities.Quote, error)
	List(ctx context.Context, contractorID string) ([]entities.Quote, error)
	UpdateDraft(ctx context.Context, contractorID string, q entities.Quote) (entities.Quote, error)
	Calculate(ctx context.Context, contractorID string, q entities.Quote) (entities.QuoteBreakdown, error)
	RecalculateTotals(ctx context.Context, contractorID, id string) (entities.Quote, error)
	Transition(ctx context.Context, contractorID, id string, to entities.QuoteStatus) (entities.Quote, error)
	Delete(ctx context.Context, contractorID, id string) error
}

type QuoteUseCase struct {
	repo       interfaces.IQuoteRepository
	schemeRepo interfaces.IPricingSchemeRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, schemeRepo interfaces.IPricingSchemeRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, schemeRepo: schemeRepo}
}

func (u *QuoteUseCase) CreateDraft(ctx context.Context, contractorID string, q entities.Quote) (entities.Quote, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return entities.Quote{}, ErrInvalidContractorID
	}
	if strings.TrimSpace(q.CustomerName) == "" {
		return entities.Quote{}, ErrInvalidCustomerName
	}

	now := time.Now().UTC()
	q.ID = uuid.NewString()
	q.ContractorID = contractorID
	q.Status = entities.QuoteStatusDraft
	q.Breakdown = nil
	q.CreatedAt = now
	q.UpdatedAt = now
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, contractorID, id string) (entities.Quote, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return entities.Quote{}, ErrInvalidContractorID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" || q.ContractorID != contractorID {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context, contractorID string) ([]entities.Quote, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return nil, ErrInvalidContractorID
	}
	return u.repo.ListByContractorID(ctx, contractorID)
}

// UpdateDraft replaces the editable parts of a draft quote (customer info,
// areas, scheme/tier selection). The breakdown snapshot is cleared: edits
// invalidate previously computed totals until the quote is recalculated.
func (u *QuoteUseCase) UpdateDraft(ctx context.Context, contractorID string, q entities.Quote) (entities.Quote, error) {
	existing, err := u.GetByID(ctx, contractorID, q.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	if existing.Status != entities.QuoteStatusDraft {
		return entities.Quote{}, ErrQuoteNotEditable
	}
	if strings.TrimSpace(q.CustomerName) == "" {
		return entities.Quote{}, ErrInvalidCustomerName
	}

	q.ContractorID = existing.ContractorID
	q.Status = existing.Status
	q.Breakdown = nil
	q.CreatedAt = existing.CreatedAt
	q.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// Calculate runs the pricing engine against the quote's scheme without
// persisting anything. Validation errors from the engine pass through
// unwrapped so handlers can name the offending areas.
func (u *QuoteUseCase) Calculate(ctx context.Context, contractorID string, q entities.Quote) (entities.QuoteBreakdown, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return entities.QuoteBreakdown{}, ErrInvalidContractorID
	}
	schemeID := strings.TrimSpace(q.PricingSchemeID)
	if schemeID == "" {
		return entities.QuoteBreakdown{}, ErrQuoteSchemeNotConfigured
	}

	scheme, err := u.schemeRepo.GetByID(ctx, schemeID)
	if err != nil {
		return entities.QuoteBreakdown{}, err
	}
	if scheme.ID == "" || scheme.ContractorID != contractorID {
		return entities.QuoteBreakdown{}, ErrSchemeNotFound
	}

	breakdown, err := pricing.Calculate(q, scheme)
	if err != nil {
		return entities.QuoteBreakdown{}, err
	}
	if len(breakdown.Warnings) > 0 {
		log.Printf("[quote][usecase] calculate produced warnings scheme_id=%s warnings=%d", scheme.ID, len(breakdown.Warnings))
	}
	return breakdown, nil
}

// RecalculateTotals recomputes a stored quote's breakdown and persists the
// snapshot. Allowed on drafts only; sent quotes keep the totals the customer
// saw.
func (u *QuoteUseCase) RecalculateTotals(ctx context.Context, contractorID, id string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, contractorID, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusDraft {
		return entities.Quote{}, ErrQuoteNotEditable
	}

	breakdown, err := u.Calculate(ctx, contractorID, q)
	if err != nil {
		return entities.Quote{}, err
	}

	q.Breakdown = &breakdown
	q.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// Transition moves a quote through its lifecycle, rejecting jumps the state
// machine does not allow (e.g. draft straight to accepted).
func (u *QuoteUseCase) Transition(ctx context.Context, contractorID, id string, to entities.QuoteStatus) (entities.Quote, error) {
	q, err := u.GetByID(ctx, contractorID, id)
	if err != nil {
		return entities.Quote{}, err
	}

	if !transitionAllowed(q.Status, to) {
		log.Printf("[quote][usecase] rejected transition quote_id=%s from=%s to=%s", q.ID, q.Status, to)
		return entities.Quote{}, ErrInvalidStatusTransition
	}
	if q.Status == to {
		return q, nil
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, to)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, contractorID, id string) error {
	if _, err := u.GetByID(ctx, contractorID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func transitionAllowed(from, to entities.QuoteStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
