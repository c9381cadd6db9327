package entities

import "time"

// QuoteStatus represents the quote lifecycle.
//
// Domain notes:
//   - A quote starts as draft and is recalculated freely until sent.
//   - Once sent it is immutable in spirit; status still advances as the
//     customer views/accepts and the contractor schedules the job.

type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusSent      QuoteStatus = "sent"
	QuoteStatusViewed    QuoteStatus = "viewed"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusScheduled QuoteStatus = "scheduled"
	QuoteStatusDeclined  QuoteStatus = "declined"
	QuoteStatusArchived  QuoteStatus = "archived"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusViewed, QuoteStatusAccepted,
		QuoteStatusScheduled, QuoteStatusDeclined, QuoteStatusArchived:
		return true
	}
	return false
}

// JobType tags a quote or area as interior or exterior work.

type JobType string

const (
	JobTypeInterior JobType = "interior"
	JobTypeExterior JobType = "exterior"
)

// MeasurementUnit is the native unit a surface is measured and priced in.

type MeasurementUnit string

const (
	UnitSquareFoot MeasurementUnit = "sqft"
	UnitLinearFoot MeasurementUnit = "linear_foot"
	UnitCount      MeasurementUnit = "unit"
	UnitHour       MeasurementUnit = "hour"
)

// CalcMode selects how structured dimensions combine into a quantity.

type CalcMode string

const (
	CalcModePerimeter CalcMode = "perimeter"
	CalcModeArea      CalcMode = "area"
	CalcModeLinear    CalcMode = "linear"
	CalcModeUnit      CalcMode = "unit"
)

// Dimensions is the measurement input for one surface.
//
// Exactly one representation is active: when DirectEntry is set the literal
// DirectValue wins regardless of calc mode; otherwise the structured fields
// are combined according to the surface's CalcMode. Absent fields are zero.
type Dimensions struct {
	DirectEntry bool    `json:"direct_entry,omitempty"`
	DirectValue float64 `json:"direct_value,omitempty"`

	Length     float64 `json:"length,omitempty"`
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	LinearFeet float64 `json:"linear_feet,omitempty"`
	Count      float64 `json:"count,omitempty"`
}

// SurfaceLineItem is one paintable surface within an area.
//
// Invariant: a line item contributes to totals only when Selected is true and
// its resolved quantity is positive.
type SurfaceLineItem struct {
	CategoryName string          `json:"category_name"`
	Unit         MeasurementUnit `json:"measurement_unit"`
	CalcMode     CalcMode        `json:"calc_mode"`
	Dimensions   Dimensions      `json:"dimensions"`
	Selected     bool            `json:"selected"`
	Coats        int             `json:"number_of_coats,omitempty"`

	// Resolved values, filled by calculation.
	Quantity  float64 `json:"quantity,omitempty"`
	Gallons   float64 `json:"gallons,omitempty"`
	LaborRate float64 `json:"labor_rate,omitempty"`

	// When set, Gallons is user-entered and must not be recomputed.
	AllowManualGallons bool `json:"allow_manual_gallons,omitempty"`
}

// Area is a named physical region of the job ("Exterior Walls", "Kitchen").
type Area struct {
	ID       string            `json:"id,omitempty"`
	Name     string            `json:"name"`
	JobType  JobType           `json:"job_type,omitempty"`
	Surfaces []SurfaceLineItem `json:"labor_items"`
	Notes    string            `json:"notes,omitempty"`
}

// ProductSelection maps a surface to the product chosen for a tier.
type ProductSelection struct {
	Surface string  `json:"surface"`
	Tier    Tier    `json:"tier"`
	Brand   string  `json:"brand,omitempty"`
	Product string  `json:"product"`
	Price   float64 `json:"price"`
}

// Quote is the aggregate root persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - contractor_id attribute scopes quotes per tenant.
//
// Areas, product sets and the computed breakdown are stored as JSON documents.
// The breakdown is a snapshot from the last calculation; editing areas or
// switching schemes invalidates it until totals are recomputed.
type Quote struct {
	ID           string `json:"id"`
	ContractorID string `json:"contractor_id"`

	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email,omitempty"`
	CustomerPhone string  `json:"customer_phone,omitempty"`
	JobAddress    string  `json:"job_address,omitempty"`
	JobType       JobType `json:"job_type,omitempty"`

	PricingSchemeID string  `json:"pricing_scheme_id"`
	Tier            Tier    `json:"tier,omitempty"`
	TotalHomeSqft   float64 `json:"total_home_sqft,omitempty"`

	Areas       []Area             `json:"areas"`
	ProductSets []ProductSelection `json:"product_sets,omitempty"`

	Breakdown *QuoteBreakdown `json:"breakdown,omitempty"`
	Status    QuoteStatus     `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
