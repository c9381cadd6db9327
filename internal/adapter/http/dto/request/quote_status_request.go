package request

// QuoteStatusRequest carries the target lifecycle state for a quote.
type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
