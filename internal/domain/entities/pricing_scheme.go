package entities

import "time"

// PricingModel selects the labor pricing strategy a contractor configured.
//
// Domain notes:
//   - rate_based_sqft and production_based share the quantity×rate strategy.
//   - hourly_time_materials derives hours from per-category production rates.
//   - turnkey bypasses per-surface labor and prices total home square footage.

type PricingModel string

const (
	PricingModelTurnkey         PricingModel = "turnkey"
	PricingModelRateBasedSqft   PricingModel = "rate_based_sqft"
	PricingModelProductionBased PricingModel = "production_based"
	PricingModelFlatRateUnit    PricingModel = "flat_rate_unit"
	PricingModelHourly          PricingModel = "hourly_time_materials"
)

func (m PricingModel) Valid() bool {
	switch m {
	case PricingModelTurnkey, PricingModelRateBasedSqft, PricingModelProductionBased,
		PricingModelFlatRateUnit, PricingModelHourly:
		return true
	}
	return false
}

// Tier is a good/better/best quality level. The empty tier means base pricing.

type Tier string

const (
	TierNone   Tier = ""
	TierGood   Tier = "good"
	TierBetter Tier = "better"
	TierBest   Tier = "best"
)

func (t Tier) Valid() bool {
	switch t {
	case TierNone, TierGood, TierBetter, TierBest:
		return true
	}
	return false
}

// PricingRules holds every knob the calculation engine reads.
//
// Rate tables are keyed by surface category name ("Exterior Walls", "Trim", ...).
// GBB tables are sparse per-tier overrides layered on top of the base tables;
// a missing override falls back to the base value.
type PricingRules struct {
	Coverage      float64 `json:"coverage"`
	CostPerGallon float64 `json:"cost_per_gallon"`
	Coats         int     `json:"coats"`

	LaborRates      map[string]float64 `json:"labor_rates,omitempty"`
	UnitPrices      map[string]float64 `json:"unit_prices,omitempty"`
	ProductionRates map[string]float64 `json:"production_rates,omitempty"`

	BillableLaborRate float64 `json:"billable_labor_rate,omitempty"`
	CrewSize          int     `json:"crew_size,omitempty"`

	TurnkeyRate  float64 `json:"turnkey_rate,omitempty"`
	InteriorRate float64 `json:"interior_rate,omitempty"`
	ExteriorRate float64 `json:"exterior_rate,omitempty"`

	GBBRates           map[Tier]map[string]float64 `json:"gbb_rates,omitempty"`
	GBBHourlyRates     map[Tier]float64            `json:"gbb_hourly_rates,omitempty"`
	GBBUnitPrices      map[Tier]map[string]float64 `json:"gbb_unit_prices,omitempty"`
	GBBProductionRates map[Tier]map[string]float64 `json:"gbb_production_rates,omitempty"`
	GBBTurnkeyRates    map[Tier]float64            `json:"gbb_turnkey_rates,omitempty"`

	MaterialMarkupPercent float64 `json:"material_markup_percent,omitempty"`
	ExcludeMaterials      bool    `json:"exclude_materials,omitempty"`

	OverheadPercent     float64 `json:"overhead_percent"`
	ProfitMarginPercent float64 `json:"profit_margin_percent"`
	TaxPercent          float64 `json:"tax_percent"`
	DepositPercent      float64 `json:"deposit_percent"`
}

// TieringEnabled reports whether any per-tier override table is populated.
func (r PricingRules) TieringEnabled() bool {
	return len(r.GBBRates) > 0 || len(r.GBBHourlyRates) > 0 || len(r.GBBUnitPrices) > 0 ||
		len(r.GBBProductionRates) > 0 || len(r.GBBTurnkeyRates) > 0
}

// PricingScheme is a contractor-owned pricing configuration persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - contractor_id attribute scopes schemes per tenant.
//
// Rules are stored as a JSON document attribute.
type PricingScheme struct {
	ID           string       `json:"id"`
	ContractorID string       `json:"contractor_id"`
	Name         string       `json:"name"`
	Model        PricingModel `json:"type"`
	Rules        PricingRules `json:"pricing_rules"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
