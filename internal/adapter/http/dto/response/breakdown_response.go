package response

import (
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// BreakdownResponse is the step-by-step cost breakdown returned to the builder
// and the customer portal. Currency values are rounded to 2 decimals here, at
// the presentation boundary; the engine keeps full precision internally.
type BreakdownResponse struct {
	LaborTotal float64 `json:"labor_total"`

	MaterialCost          float64 `json:"material_cost"`
	MaterialMarkupPercent float64 `json:"material_markup_percent"`
	MaterialMarkupAmount  float64 `json:"material_markup_amount"`
	MaterialTotal         float64 `json:"material_total"`
	GallonsTotal          float64 `json:"gallons_total"`

	EstimatedHours float64 `json:"estimated_hours,omitempty"`

	SubtotalBeforeOverhead float64 `json:"subtotal_before_overhead"`
	OverheadPercent        float64 `json:"overhead_percent"`
	Overhead               float64 `json:"overhead"`
	SubtotalBeforeProfit   float64 `json:"subtotal_before_profit"`
	ProfitMarginPercent    float64 `json:"profit_margin_percent"`
	ProfitAmount           float64 `json:"profit_amount"`
	Subtotal               float64 `json:"subtotal"`
	TaxPercent             float64 `json:"tax_percent"`
	Tax                    float64 `json:"tax"`
	Total                  float64 `json:"total"`
	DepositPercent         float64 `json:"deposit_percent"`
	Deposit                float64 `json:"deposit"`
	Balance                float64 `json:"balance"`

	Surfaces []SurfaceCostResponse `json:"surfaces,omitempty"`
	Warnings []string              `json:"warnings,omitempty"`
}

type SurfaceCostResponse struct {
	Area           string  `json:"area"`
	Category       string  `json:"category"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	Coats          int     `json:"coats,omitempty"`
	Gallons        float64 `json:"gallons,omitempty"`
	LaborRate      float64 `json:"labor_rate,omitempty"`
	LaborCost      float64 `json:"labor_cost"`
	MaterialCost   float64 `json:"material_cost,omitempty"`
	EstimatedHours float64 `json:"estimated_hours,omitempty"`
}

func FromBreakdown(b entities.QuoteBreakdown) BreakdownResponse {
	resp := BreakdownResponse{
		LaborTotal:            round2(b.LaborTotal),
		MaterialCost:          round2(b.MaterialCost),
		MaterialMarkupPercent: b.MaterialMarkupPercent,
		MaterialMarkupAmount:  round2(b.MaterialMarkupAmount),
		MaterialTotal:         round2(b.MaterialTotal),
		GallonsTotal:          b.GallonsTotal,

		EstimatedHours: round2(b.EstimatedHours),

		SubtotalBeforeOverhead: round2(b.SubtotalBeforeOverhead),
		OverheadPercent:        b.OverheadPercent,
		Overhead:               round2(b.Overhead),
		SubtotalBeforeProfit:   round2(b.SubtotalBeforeProfit),
		ProfitMarginPercent:    b.ProfitMarginPercent,
		ProfitAmount:           round2(b.ProfitAmount),
		Subtotal:               round2(b.Subtotal),
		TaxPercent:             b.TaxPercent,
		Tax:                    round2(b.Tax),
		Total:                  round2(b.Total),
		DepositPercent:         b.DepositPercent,
		Deposit:                round2(b.Deposit),
		Balance:                round2(b.Balance),

		Warnings: b.Warnings,
	}
	for _, s := range b.Surfaces {
		resp.Surfaces = append(resp.Surfaces, SurfaceCostResponse{
			Area:           s.Area,
			Category:       s.Category,
			Quantity:       round2(s.Quantity),
			Unit:           string(s.Unit),
			Coats:          s.Coats,
			Gallons:        s.Gallons,
			LaborRate:      s.LaborRate,
			LaborCost:      round2(s.LaborCost),
			MaterialCost:   round2(s.MaterialCost),
			EstimatedHours: round2(s.EstimatedHours),
		})
	}
	return resp
}

// round2 does display rounding only. Gallons and percentages are passed
// through untouched: gallons are already half-gallon multiples and
// percentages are configuration echoes.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
