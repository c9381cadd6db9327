package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/Tiers-Limited/Cadence-Quote-sub009/internal/adapter/http/dto/request"
	response "github.com/Tiers-Limited/Cadence-Quote-sub009/internal/adapter/http/dto/response"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/adapter/http/middleware"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/usecase"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/pkg"

	"github.com/gin-gonic/gin"
)

// PricingSchemeHandler handles HTTP requests for contractor pricing schemes.

type PricingSchemeHandler struct {
	usecase usecase.IPricingSchemeUseCase
}

func NewPricingSchemeHandler(uc usecase.IPricingSchemeUseCase) *PricingSchemeHandler {
	return &PricingSchemeHandler{usecase: uc}
}

// CreatePricingScheme creates a pricing scheme for the authenticated contractor.
func (h *PricingSchemeHandler) CreatePricingScheme(c *gin.Context) {
	contractorID := middleware.ContractorID(c)
	var req request.PricingSchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[scheme][handler] create invalid payload contractor_id=%s err=%v", contractorID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), contractorID, req.ToEntity())
	if err != nil {
		log.Printf("[scheme][handler] create failed contractor_id=%s err=%v", contractorID, err)
		appErr := mapPricingSchemeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[scheme][handler] create success contractor_id=%s scheme_id=%s type=%s", contractorID, created.ID, created.Model)

	c.JSON(http.StatusCreated, response.FromPricingScheme(created))
}

// GetPricingSchemeByID returns one pricing scheme by id.
func (h *PricingSchemeHandler) GetPricingSchemeByID(c *gin.Context) {
	contractorID := middleware.ContractorID(c)
	id := c.Param("id")

	scheme, err := h.usecase.GetByID(c.Request.Context(), contractorID, id)
	if err != nil {
		log.Printf("[scheme][handler] get failed contractor_id=%s scheme_id=%s err=%v", contractorID, id, err)
		appErr := mapPricingSchemeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingScheme(scheme))
}

// ListPricingSchemes lists every scheme owned by the authenticated contractor.
func (h *PricingSchemeHandler) ListPricingSchemes(c *gin.Context) {
	contractorID := middleware.ContractorID(c)

	schemes, err := h.usecase.List(c.Request.Context(), contractorID)
	if err != nil {
		log.Printf("[scheme][handler] list failed contractor_id=%s err=%v", contractorID, err)
		appErr := mapPricingSchemeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingSchemes(schemes))
}

// UpdatePricingScheme replaces a scheme's name, model and rules.
func (h *PricingSchemeHandler) UpdatePricingScheme(c *gin.Context) {
	contractorID := middleware.ContractorID(c)
	id := c.Param("id")
	var req request.PricingSchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[scheme][handler] update invalid payload contractor_id=%s scheme_id=%s err=%v", contractorID, id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	scheme := req.ToEntity()
	scheme.ID = id
	updated, err := h.usecase.Update(c.Request.Context(), contractorID, scheme)
	if err != nil {
		log.Printf("[scheme][handler] update failed contractor_id=%s scheme_id=%s err=%v", contractorID, id, err)
		appErr := mapPricingSchemeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[scheme][handler] update success contractor_id=%s scheme_id=%s", contractorID, updated.ID)

	c.JSON(http.StatusOK, response.FromPricingScheme(updated))
}

// DeletePricingScheme removes a scheme. Quotes that already snapshot their
// breakdown keep their totals.
func (h *PricingSchemeHandler) DeletePricingScheme(c *gin.Context) {
	contractorID := middleware.ContractorID(c)
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), contractorID, id); err != nil {
		log.Printf("[scheme][handler] delete failed contractor_id=%s scheme_id=%s err=%v", contractorID, id, err)
		appErr := mapPricingSchemeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[scheme][handler] delete success contractor_id=%s scheme_id=%s", contractorID, id)

	c.Status(http.StatusNoContent)
}

func mapPricingSchemeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSchemeID),
		errors.Is(err, usecase.ErrInvalidSchemeName),
		errors.Is(err, usecase.ErrInvalidPricingModel),
		errors.Is(err, usecase.ErrInvalidPercentage),
		errors.Is(err, usecase.ErrInvalidContractorID):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSchemeNotFound):
		return pkg.NewDomainErrorSimple("PRICING_SCHEME_NOT_FOUND", "Pricing scheme not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
