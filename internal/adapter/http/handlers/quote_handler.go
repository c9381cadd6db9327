package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "github.com/Tiers-Limited/Cadence-Quote-sub009/internal/adapter/http/dto/request"
	response "github.com/Tiers-Limited/Cadence-Quote-sub009/internal/adapter/http/dto/response"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/adapter/http/middleware"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/adapter/pdf"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/pricing"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/usecase"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles HTTP requests for quotes: draft CRUD, pricing
// calculation, lifecycle transitions and the customer proposal PDF.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote creates a draft quote for the authenticated contractor.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	contractorID := middleware.ContractorID(c)
	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[quote][handler] create invalid payload contractor_id=%s err=%v", contractorID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateDraft(c.Request.Context(), contractorID, req.ToEntity())
	if err != nil {
		log.Printf("[quote][handler] create failed contractor_id=%s err=%v", contractorID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] create success contractor_id=%s quote_id=%s", contractorID, created.ID)

	c.JSON(http.StatusCreated, response.FromQuote(created))
}

// GetQuoteByID returns one quote by id.
func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	contractorID := middleware.ContractorID(c)
	id := c.Param("id")

	q, err := h.usecase.GetByID(c.Request.Context(), contractorID, id)
	if err != nil {
		log.Printf("[quote][handler] get failed contractor_id=%s quote_id=%s err=%v", contractorID, id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ListQuotes lists every quote owned by the authenticated contractor.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	contractorID := middleware.ContractorID(c)

	quotes, err := h.usecase.List(c.Request.Context(), contractorID)
	if err != nil {
		log.Printf("[quote][handler] list failed contractor_id=%s err=%v", contractorID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// UpdateQuote replaces the editable fields of a draft quote.
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	contractorID := middleware.ContractorID(c)
	id := c.Param("id")
	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[quote][handler] update invalid payload contractor_id=%s quote_id=%s err=%v", contractorID, id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	q := req.ToEntity()
	q.ID = id
	updated, err := h.usecase.UpdateDraft(c.Request.Context(), contractorID, q)
	if err != nil {
		log.Printf("[quote][handler] update failed contractor_id=%s quote_id=%s err=%v", contractorID, id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] update success contractor_id=%s quote_id=%s", contractorID, updated.ID)

	c.JSON(http.StatusOK, response.FromQuote(updated))
}

// CalculateQuote runs the pricing engine over the posted builder state without
// persisting anything. The builder calls this on every form change.
func (h *QuoteHandler) CalculateQuote(c *gin.Context) {
	contractorID := middleware.ContractorID(c)
	var req request.CalculateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[quote][handler] calculate invalid payload contractor_id=%s err=%v", contractorID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if schemeID := c.Param("id"); schemeID != "" {
		req.PricingSchemeID = schemeID
	}

	breakdown, err := h.usecase.Calculate(c.Request.Context(), contractorID, req.ToEntity())
	if err != nil {
		var vErr *pricing.ValidationError
		if errors.As(err, &vErr) {
			log.Printf("[quote][handler] calculate rejected contractor_id=%s areas=%v", contractorID, vErr.Areas)
			appErr := pkg.NewDomainErrorSimple("QUOTE_NOT_CALCULABLE", vErr.Error(), http.StatusUnprocessableEntity)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(vErr.Areas))
			return
		}
		log.Printf("[quote][handler] calculate failed contractor_id=%s err=%v", contractorID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBreakdown(breakdown))
}

// RecalculateQuote recomputes a stored draft's totals and persists the
// breakdown snapshot.
func (h *QuoteHandler) RecalculateQuote(c *gin.Context) {
	contractorID := middleware.ContractorID(c)
	id := c.Param("id")

	updated, err := h.usecase.RecalculateTotals(c.Request.Context(), contractorID, id)
	if err != nil {
		var vErr *pricing.ValidationError
		if errors.As(err, &vErr) {
			log.Printf("[quote][handler] recalculate rejected contractor_id=%s quote_id=%s areas=%v", contractorID, id, vErr.Areas)
			appErr := pkg.NewDomainErrorSimple("QUOTE_NOT_CALCULABLE", vErr.Error(), http.StatusUnprocessableEntity)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(vErr.Areas))
			return
		}
		log.Printf("[quote][handler] recalculate failed contractor_id=%s quote_id=%s err=%v", contractorID, id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] recalculate success contractor_id=%s quote_id=%s total=%.2f", contractorID, id, updated.Breakdown.Total)

	c.JSON(http.StatusOK, response.FromQuote(updated))
}

// UpdateQuoteStatus moves a quote through its lifecycle.
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	contractorID := middleware.ContractorID(c)
	id := c.Param("id")
	var req request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[quote][handler] status invalid payload contractor_id=%s quote_id=%s err=%v", contractorID, id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	to := entities.QuoteStatus(req.Status)
	if !to.Valid() {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", fmt.Sprintf("unknown status %q", req.Status), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Transition(c.Request.Context(), contractorID, id, to)
	if err != nil {
		log.Printf("[quote][handler] status failed contractor_id=%s quote_id=%s to=%s err=%v", contractorID, id, to, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] status success contractor_id=%s quote_id=%s status=%s", contractorID, id, updated.Status)

	c.JSON(http.StatusOK, response.FromQuote(updated))
}

// GetQuoteProposal renders the customer-facing proposal PDF. Drafts without a
// stored breakdown are priced on the fly; the stored snapshot wins when
// present.
func (h *QuoteHandler) GetQuoteProposal(c *gin.Context) {
	contractorID := middleware.ContractorID(c)
	id := c.Param("id")

	q, err := h.usecase.GetByID(c.Request.Context(), contractorID, id)
	if err != nil {
		log.Printf("[quote][handler] proposal failed contractor_id=%s quote_id=%s err=%v", contractorID, id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if q.Breakdown == nil {
		breakdown, err := h.usecase.Calculate(c.Request.Context(), contractorID, q)
		if err != nil {
			var vErr *pricing.ValidationError
			if errors.As(err, &vErr) {
				appErr := pkg.NewDomainErrorSimple("QUOTE_NOT_CALCULABLE", vErr.Error(), http.StatusUnprocessableEntity)
				c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(vErr.Areas))
				return
			}
			log.Printf("[quote][handler] proposal pricing failed contractor_id=%s quote_id=%s err=%v", contractorID, id, err)
			appErr := mapQuoteError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		q.Breakdown = &breakdown
	}

	doc, err := pdf.RenderProposal(q)
	if err != nil {
		log.Printf("[quote][handler] proposal render failed contractor_id=%s quote_id=%s err=%v", contractorID, id, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] proposal success contractor_id=%s quote_id=%s bytes=%d", contractorID, id, len(doc))

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=proposal-%s.pdf", q.ID))
	c.Data(http.StatusOK, "application/pdf", doc)
}

// DeleteQuote removes a quote.
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	contractorID := middleware.ContractorID(c)
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), contractorID, id); err != nil {
		log.Printf("[quote][handler] delete failed contractor_id=%s quote_id=%s err=%v", contractorID, id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] delete success contractor_id=%s quote_id=%s", contractorID, id)

	c.Status(http.StatusNoContent)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrInvalidContractorID):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSchemeNotFound):
		return pkg.NewDomainErrorSimple("PRICING_SCHEME_NOT_FOUND", "Pricing scheme not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteSchemeNotConfigured):
		return pkg.NewDomainErrorSimple("QUOTE_SCHEME_NOT_CONFIGURED", "Quote has no pricing scheme", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteNotEditable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_EDITABLE", "Quote is no longer editable", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
