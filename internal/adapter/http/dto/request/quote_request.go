package request

import (
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
)

// SurfaceLineItemRequest mirrors one surface row of the quote builder form.
type SurfaceLineItemRequest struct {
	CategoryName       string              `json:"category_name" binding:"required"`
	MeasurementUnit    string              `json:"measurement_unit"`
	CalcMode           string              `json:"calc_mode"`
	Selected           bool                `json:"selected"`
	NumberOfCoats      int                 `json:"number_of_coats"`
	Dimensions         entities.Dimensions `json:"dimensions"`
	Gallons            float64             `json:"gallons"`
	AllowManualGallons bool                `json:"allow_manual_gallons"`
}

// AreaRequest is one named region of the job with its surface rows.
type AreaRequest struct {
	Name       string                   `json:"name" binding:"required"`
	JobType    string                   `json:"job_type"`
	LaborItems []SurfaceLineItemRequest `json:"labor_items"`
	Notes      string                   `json:"notes"`
}

// ProductSelectionRequest maps a surface to a chosen product under a tier.
type ProductSelectionRequest struct {
	Surface string  `json:"surface"`
	Tier    string  `json:"tier"`
	Brand   string  `json:"brand"`
	Product string  `json:"product"`
	Price   float64 `json:"price"`
}

// QuoteRequest is the full builder payload for creating or updating a draft.
type QuoteRequest struct {
	CustomerName    string                    `json:"customer_name" binding:"required"`
	CustomerEmail   string                    `json:"customer_email"`
	CustomerPhone   string                    `json:"customer_phone"`
	JobAddress      string                    `json:"job_address"`
	JobType         string                    `json:"job_type"`
	PricingSchemeID string                    `json:"pricing_scheme_id"`
	Tier            string                    `json:"tier"`
	TotalHomeSqft   float64                   `json:"total_home_sqft"`
	Areas           []AreaRequest             `json:"areas"`
	ProductSets     []ProductSelectionRequest `json:"product_sets"`
}

// CalculateQuoteRequest is the stateless calculation payload: the same form
// state without customer fields. The scheme id may come from the body or the
// route.
type CalculateQuoteRequest struct {
	PricingSchemeID string        `json:"pricing_scheme_id"`
	JobType         string        `json:"job_type"`
	Tier            string        `json:"tier"`
	TotalHomeSqft   float64       `json:"total_home_sqft"`
	Areas           []AreaRequest `json:"areas"`
}

func (r QuoteRequest) ToEntity() entities.Quote {
	return entities.Quote{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		JobAddress:      r.JobAddress,
		JobType:         entities.JobType(r.JobType),
		PricingSchemeID: r.PricingSchemeID,
		Tier:            entities.Tier(r.Tier),
		TotalHomeSqft:   r.TotalHomeSqft,
		Areas:           toAreas(r.Areas),
		ProductSets:     toProductSets(r.ProductSets),
	}
}

func (r CalculateQuoteRequest) ToEntity() entities.Quote {
	return entities.Quote{
		PricingSchemeID: r.PricingSchemeID,
		JobType:         entities.JobType(r.JobType),
		Tier:            entities.Tier(r.Tier),
		TotalHomeSqft:   r.TotalHomeSqft,
		Areas:           toAreas(r.Areas),
	}
}

func toAreas(in []AreaRequest) []entities.Area {
	areas := make([]entities.Area, 0, len(in))
	for _, a := range in {
		area := entities.Area{
			Name:    a.Name,
			JobType: entities.JobType(a.JobType),
			Notes:   a.Notes,
		}
		for _, item := range a.LaborItems {
			area.Surfaces = append(area.Surfaces, entities.SurfaceLineItem{
				CategoryName:       item.CategoryName,
				Unit:               entities.MeasurementUnit(item.MeasurementUnit),
				CalcMode:           entities.CalcMode(item.CalcMode),
				Dimensions:         item.Dimensions,
				Selected:           item.Selected,
				Coats:              item.NumberOfCoats,
				Gallons:            item.Gallons,
				AllowManualGallons: item.AllowManualGallons,
			})
		}
		areas = append(areas, area)
	}
	return areas
}

func toProductSets(in []ProductSelectionRequest) []entities.ProductSelection {
	if len(in) == 0 {
		return nil
	}
	sets := make([]entities.ProductSelection, 0, len(in))
	for _, p := range in {
		sets = append(sets, entities.ProductSelection{
			Surface: p.Surface,
			Tier:    entities.Tier(p.Tier),
			Brand:   p.Brand,
			Product: p.Product,
			Price:   p.Price,
		})
	}
	return sets
}
