package routes

import (
	"log"
	"strconv"

	_ "piscinas_xpto/docs" // This will be auto-generated
	"piscinas_xpto/internal/adapter/http/handlers"
	repository2 "piscinas_xpto/internal/adapter/persistence/repository"
	"piscinas_xpto/internal/infrastructure/database"
	"piscinas_xpto/internal/usecase"

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

	// The live catalog is served from DynamoDB with the embedded dataset as
	// fallback, so pricing keeps working when the table is unreachable.
	catalogRepo := repository2.NewFallbackCatalogRepository(
		repository2.NewCatalogDynamoRepository(ddb),
		repository2.NewStaticCatalogRepository(),
	)
	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)

	budgetUseCase := usecase.NewBudgetUseCase(catalogRepo, budgetRepo)

	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBudgetRoutes(v1, budgetHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
