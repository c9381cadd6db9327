package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSchemeNotFound      = errors.New("pricing scheme not found")
	ErrInvalidSchemeID     = errors.New("invalid pricing scheme id")
	ErrInvalidSchemeName   = errors.New("invalid pricing scheme name")
	ErrInvalidPricingModel = errors.New("invalid pricing model")
	ErrInvalidPercentage   = errors.New("percentage fields must be between 0 and 100")
	ErrInvalidContractorID = errors.New("invalid contractor id")
)

// IPricingSchemeUseCase exposes contractor pricing configuration operations.
//
// Every operation is scoped by contractor: a scheme owned by another tenant
// behaves exactly like a missing scheme.

type IPricingSchemeUseCase interface {
	Create(ctx context.Context, contractorID string, s entities.PricingScheme) (entities.PricingScheme, error)
	GetByID(ctx context.Context, contractorID, id string) (entities.PricingScheme, error)
	List(ctx context.Context, contractorID string) ([]entities.PricingScheme, error)
	Update(ctx context.Context, contractorID string, s entities.PricingScheme) (entities.PricingScheme, error)
	Delete(ctx context.Context, contractorID, id string) error
}

type PricingSchemeUseCase struct {
	repo interfaces.IPricingSchemeRepository
}

var _ IPricingSchemeUseCase = (*PricingSchemeUseCase)(nil)

func NewPricingSchemeUseCase(repo interfaces.IPricingSchemeRepository) *PricingSchemeUseCase {
	return &PricingSchemeUseCase{repo: repo}
}

func (u *PricingSchemeUseCase) Create(ctx context.Context, contractorID string, s entities.PricingScheme) (entities.PricingScheme, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return entities.PricingScheme{}, ErrInvalidContractorID
	}
	if err := validateScheme(s); err != nil {
		return entities.PricingScheme{}, err
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.ContractorID = contractorID
	s.CreatedAt = now
	s.UpdatedAt = now
	return u.repo.Create(ctx, s)
}

func (u *PricingSchemeUseCase) GetByID(ctx context.Context, contractorID, id string) (entities.PricingScheme, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return entities.PricingScheme{}, ErrInvalidContractorID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PricingScheme{}, ErrInvalidSchemeID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PricingScheme{}, err
	}
	if s.ID == "" || s.ContractorID != contractorID {
		return entities.PricingScheme{}, ErrSchemeNotFound
	}
	return s, nil
}

func (u *PricingSchemeUseCase) List(ctx context.Context, contractorID string) ([]entities.PricingScheme, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return nil, ErrInvalidContractorID
	}
	return u.repo.ListByContractorID(ctx, contractorID)
}

func (u *PricingSchemeUseCase) Update(ctx context.Context, contractorID string, s entities.PricingScheme) (entities.PricingScheme, error) {
	existing, err := u.GetByID(ctx, contractorID, s.ID)
	if err != nil {
		return entities.PricingScheme{}, err
	}
	if err := validateScheme(s); err != nil {
		return entities.PricingScheme{}, err
	}

	s.ContractorID = existing.ContractorID
	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return entities.PricingScheme{}, err
	}
	if updated.ID == "" {
		return entities.PricingScheme{}, ErrSchemeNotFound
	}
	return updated, nil
}

func (u *PricingSchemeUseCase) Delete(ctx context.Context, contractorID, id string) error {
	if _, err := u.GetByID(ctx, contractorID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func validateScheme(s entities.PricingScheme) error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrInvalidSchemeName
	}
	if !s.Model.Valid() {
		return ErrInvalidPricingModel
	}
	for _, pct := range []float64{
		s.Rules.OverheadPercent,
		s.Rules.ProfitMarginPercent,
		s.Rules.TaxPercent,
		s.Rules.DepositPercent,
		s.Rules.MaterialMarkupPercent,
	} {
		if pct < 0 || pct > 100 {
			return ErrInvalidPercentage
		}
	}
	return nil
}
