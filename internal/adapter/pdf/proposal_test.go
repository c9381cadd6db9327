package pdf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
)

func TestRenderProposal(t *testing.T) {
	t.Run("renders a pdf document for a priced quote", func(t *testing.T) {
		q := entities.Quote{
			ID:           "q-1",
			CustomerName: "Dana Whitfield",
			JobAddress:   "12 Cedar Ln",
			JobType:      entities.JobTypeInterior,
			Breakdown: &entities.QuoteBreakdown{
				LaborTotal:            1000,
				MaterialCost:          500,
				MaterialMarkupPercent: 10,
				MaterialMarkupAmount:  50,
				MaterialTotal:         550,
				GallonsTotal:          7.5,
				Subtotal:              1897.5,
				TaxPercent:            8,
				Tax:                   151.8,
				Total:                 2049.3,
				DepositPercent:        30,
				Deposit:               614.79,
				Balance:               1434.51,
				Surfaces: []entities.SurfaceCost{
					{Area: "Living Room", Category: "Walls", Quantity: 352, Unit: entities.UnitSquareFoot, LaborCost: 880, MaterialCost: 275},
				},
			},
		}

		doc, err := RenderProposal(q)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(doc) == 0 {
			t.Fatalf("expected non-empty pdf output")
		}
		if !bytes.HasPrefix(doc, []byte("%PDF")) {
			t.Fatalf("expected pdf magic header, got %q", doc[:8])
		}
	})

	t.Run("rejects a quote without a breakdown", func(t *testing.T) {
		_, err := RenderProposal(entities.Quote{ID: "q-2", CustomerName: "Dana"})
		if !errors.Is(err, ErrNoBreakdown) {
			t.Fatalf("expected ErrNoBreakdown, got %v", err)
		}
	})
}
