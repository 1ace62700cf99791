// Package server assembles the HTTP surface of the expense tracker.
package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "expensetracker/internal/docs" // Import swagger docs
	"expensetracker/internal/handlers"
	"expensetracker/internal/middleware"
	"expensetracker/internal/services"
	"expensetracker/internal/validator"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	ExpenseService  services.ExpenseServicer
	DB              handlers.Pinger
	CORSAllowOrigin string
}

// NewRouter builds the Gin engine with middleware and every route.
func NewRouter(deps Deps) *gin.Engine {
	validator.Register()

	allowOrigin := deps.CORSAllowOrigin
	if allowOrigin == "" {
		allowOrigin = "*"
	}

	expenseHandler := handlers.NewExpenseHandler(deps.ExpenseService)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(allowOrigin))
	router.NoRoute(middleware.NotFound())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", healthHandler.Health)

	v1 := router.Group("/api/v1")

	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/export", expenseHandler.ExportExpenses)

	v1.GET("/categories", handlers.GetCategories)

	return router
}
