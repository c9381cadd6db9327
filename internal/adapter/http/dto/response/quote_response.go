package response

import (
	"time"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
)

type QuoteResponse struct {
	ID              string             `json:"id"`
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email,omitempty"`
	CustomerPhone   string             `json:"customer_phone,omitempty"`
	JobAddress      string             `json:"job_address,omitempty"`
	JobType         string             `json:"job_type,omitempty"`
	PricingSchemeID string             `json:"pricing_scheme_id,omitempty"`
	Tier            string             `json:"tier,omitempty"`
	TotalHomeSqft   float64            `json:"total_home_sqft,omitempty"`
	Areas           []entities.Area    `json:"areas"`
	Breakdown       *BreakdownResponse `json:"breakdown,omitempty"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	resp := QuoteResponse{
		ID:              q.ID,
		CustomerName:    q.CustomerName,
		CustomerEmail:   q.CustomerEmail,
		CustomerPhone:   q.CustomerPhone,
		JobAddress:      q.JobAddress,
		JobType:         string(q.JobType),
		PricingSchemeID: q.PricingSchemeID,
		Tier:            string(q.Tier),
		TotalHomeSqft:   q.TotalHomeSqft,
		Areas:           q.Areas,
		Status:          string(q.Status),
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
	if q.Breakdown != nil {
		b := FromBreakdown(*q.Breakdown)
		resp.Breakdown = &b
	}
	return resp
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
