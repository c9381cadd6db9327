package routes

import (
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPricingSchemes = "/pricing-schemes"
	PathQuotes         = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, schemeHandler *handlers.PricingSchemeHandler, quoteHandler *handlers.QuoteHandler) {
	schemes := rg.Group(PathPricingSchemes)
	{
		schemes.POST("", schemeHandler.CreatePricingScheme)
		schemes.GET("", schemeHandler.ListPricingSchemes)
		schemes.GET("/:id", schemeHandler.GetPricingSchemeByID)
		schemes.PUT("/:id", schemeHandler.UpdatePricingScheme)
		schemes.DELETE("/:id", schemeHandler.DeletePricingScheme)

		// Stateless preview against a specific scheme.
		schemes.POST("/:id/calculate", quoteHandler.CalculateQuote)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuoteByID)
		quotes.PUT("/:id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)

		quotes.POST("/calculate", quoteHandler.CalculateQuote)
		quotes.POST("/:id/recalculate", quoteHandler.RecalculateQuote)
		quotes.PATCH("/:id/status", quoteHandler.UpdateQuoteStatus)
		quotes.GET("/:id/proposal", quoteHandler.GetQuoteProposal)
	}
}
