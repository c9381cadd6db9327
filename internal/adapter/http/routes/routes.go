package routes

import (
	"log"
	"strconv"

	_ "github.com/Tiers-Limited/Cadence-Quote-sub009/docs" // This will be auto-generated
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/adapter/http/handlers"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/adapter/http/middleware"
	repository2 "github.com/Tiers-Limited/Cadence-Quote-sub009/internal/adapter/persistence/repository"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/infrastructure/database"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	schemeRepo := repository2.NewPricingSchemeDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)

	schemeUseCase := usecase.NewPricingSchemeUseCase(schemeRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, schemeRepo)

	schemeHandler := handlers.NewPricingSchemeHandler(schemeUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	v1.Use(middleware.ContractorAuth())
	addQuoteRoutes(v1, schemeHandler, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Contractor-Id")
	router.Use(cors.New(corsConfig))
}
