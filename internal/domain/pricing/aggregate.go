package pricing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
)

// ValidationError reports a user-correctable input state. It names every
// offending area so the builder UI can highlight them; it is never treated as
// a fatal error.
type ValidationError struct {
	Areas   []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Areas) > 0 {
		return fmt.Sprintf("areas without a selected, measured surface: %s", strings.Join(e.Areas, ", "))
	}
	return e.Message
}

// Validate gates aggregation: every area must contribute at least one selected
// surface with a positive resolved quantity. Turnkey schemes skip per-surface
// validation and require total home square footage instead.
func Validate(q entities.Quote, scheme entities.PricingScheme) error {
	if scheme.Model == entities.PricingModelTurnkey {
		if q.TotalHomeSqft <= 0 {
			return &ValidationError{Message: "total home square footage is required for turnkey pricing"}
		}
		return nil
	}

	if len(q.Areas) == 0 {
		return &ValidationError{Message: "quote has no areas"}
	}

	var offending []string
	for _, area := range q.Areas {
		ok := false
		for _, item := range area.Surfaces {
			if item.Selected && ResolveQuantity(item) > 0 {
				ok = true
				break
			}
		}
		if !ok {
			offending = append(offending, area.Name)
		}
	}
	if len(offending) > 0 {
		return &ValidationError{Areas: offending}
	}
	return nil
}

// Calculate runs the full aggregation for a quote against a pricing scheme.
//
// The step order is fixed and must not be reordered: overhead applies to
// labor+material, profit applies on top of overhead, tax applies on the final
// subtotal, and the deposit splits the taxed total. Intermediates keep full
// precision; rounding is presentation-only.
//
// The function is pure: identical input always yields an identical breakdown.
func Calculate(q entities.Quote, scheme entities.PricingScheme) (entities.QuoteBreakdown, error) {
	if err := Validate(q, scheme); err != nil {
		return entities.QuoteBreakdown{}, err
	}

	rules := scheme.Rules
	b := entities.QuoteBreakdown{
		MaterialMarkupPercent: rules.MaterialMarkupPercent,
		OverheadPercent:       rules.OverheadPercent,
		ProfitMarginPercent:   rules.ProfitMarginPercent,
		TaxPercent:            rules.TaxPercent,
		DepositPercent:        rules.DepositPercent,
	}

	warnings := map[string]bool{}

	if scheme.Model == entities.PricingModelTurnkey {
		total, warning := turnkeyLaborTotal(q.TotalHomeSqft, q.JobType, rules, q.Tier)
		b.LaborTotal = total
		if warning != "" {
			warnings[warning] = true
		}
	} else {
		for _, area := range q.Areas {
			for _, item := range area.Surfaces {
				if !item.Selected {
					continue
				}
				quantity := ResolveQuantity(item)
				if quantity <= 0 {
					continue
				}

				labor := laborForSurface(item, quantity, scheme.Model, rules, q.Tier)
				material := materialForSurface(item, quantity, rules)
				if labor.Warning != "" {
					warnings[labor.Warning] = true
				}

				b.LaborTotal += labor.Cost
				b.MaterialCost += material.RawCost
				b.MaterialMarkupAmount += material.MarkupAmount
				b.MaterialTotal += material.Cost
				b.GallonsTotal += material.Gallons
				b.EstimatedHours += labor.Hours

				// Report the coat count the material math used, not the raw
				// input (0 means the scheme default applied).
				coats := item.Coats
				if material.Coats > 0 {
					coats = material.Coats
				}

				b.Surfaces = append(b.Surfaces, entities.SurfaceCost{
					Area:           area.Name,
					Category:       item.CategoryName,
					Quantity:       quantity,
					Unit:           item.Unit,
					Coats:          coats,
					Gallons:        material.Gallons,
					LaborRate:      labor.Rate,
					LaborCost:      labor.Cost,
					MaterialCost:   material.Cost,
					EstimatedHours: labor.Hours,
				})
			}
		}
	}

	b.SubtotalBeforeOverhead = b.LaborTotal + b.MaterialTotal
	b.Overhead = b.SubtotalBeforeOverhead * rules.OverheadPercent / 100
	b.SubtotalBeforeProfit = b.SubtotalBeforeOverhead + b.Overhead
	b.ProfitAmount = b.SubtotalBeforeProfit * rules.ProfitMarginPercent / 100
	b.Subtotal = b.SubtotalBeforeProfit + b.ProfitAmount
	b.Tax = b.Subtotal * rules.TaxPercent / 100
	b.Total = b.Subtotal + b.Tax
	b.Deposit = b.Total * rules.DepositPercent / 100
	b.Balance = b.Total - b.Deposit

	for w := range warnings {
		b.Warnings = append(b.Warnings, w)
	}
	sort.Strings(b.Warnings)

	return b, nil
}
