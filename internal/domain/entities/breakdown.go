package entities

// SurfaceCost is the per-surface slice of a breakdown, kept for proposal display.
type SurfaceCost struct {
	Area           string          `json:"area"`
	Category       string          `json:"category"`
	Quantity       float64         `json:"quantity"`
	Unit           MeasurementUnit `json:"unit"`
	Coats          int             `json:"coats,omitempty"`
	Gallons        float64         `json:"gallons,omitempty"`
	LaborRate      float64         `json:"labor_rate,omitempty"`
	LaborCost      float64         `json:"labor_cost"`
	MaterialCost   float64         `json:"material_cost,omitempty"`
	EstimatedHours float64         `json:"estimated_hours,omitempty"`
}

// QuoteBreakdown is the full cost breakdown produced by the aggregator.
//
// Monetary representation:
//   - Values carry full float64 precision; rounding to 2 decimals happens only
//     at the presentation boundary (response DTOs, proposal PDF), never between
//     aggregation steps.
//   - MaterialCost is the raw (pre-markup) cost; MaterialTotal includes markup.
//     The proposal template depends on this split.
type QuoteBreakdown struct {
	LaborTotal float64 `json:"labor_total"`

	MaterialCost          float64 `json:"material_cost"`
	MaterialMarkupPercent float64 `json:"material_markup_percent,omitempty"`
	MaterialMarkupAmount  float64 `json:"material_markup_amount"`
	MaterialTotal         float64 `json:"material_total"`
	GallonsTotal          float64 `json:"gallons_total,omitempty"`

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

	Surfaces []SurfaceCost `json:"surfaces,omitempty"`

	// Warnings names categories that priced at zero because the scheme has no
	// rate configured for them. The quote still calculates; the contractor is
	// told the configuration is incomplete instead of silently under-pricing.
	Warnings []string `json:"warnings,omitempty"`
}
