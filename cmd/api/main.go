package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"finboard/internal/config"
	"finboard/internal/database"
	"finboard/internal/handlers"
	"finboard/internal/logger"
	"finboard/internal/middleware"
	"finboard/internal/reconcile"
	"finboard/internal/services"
	"finboard/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "finboard/internal/docs" // Import swagger docs
)

// @title           Finboard API
// @version         1.0
// @description     Finboard is a personal finance dashboard that aggregates transactions into reports, projects recurring bills, evaluates budgets, and reconciles imported bank feeds.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	transactionService := services.NewTransactionService(db)
	budgetService := services.NewBudgetService(db)
	categoryService := services.NewCategoryService(db)
	reportService := services.NewReportService(transactionService, budgetService)
	importService := services.NewImportService(transactionService, reconcile.NewFeed(time.Now().UnixNano()))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, reportService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	reportHandler := handlers.NewReportHandler(reportService)
	importHandler := handlers.NewImportHandler(importService, appConfig.ImportFeedSize)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.PUT("", budgetHandler.UpsertBudget)
	budgets.GET("/utilization", budgetHandler.GetBudgetUtilization)

	// Category routes
	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Report routes
	reportsGroup := protected.Group("/reports")
	reportsGroup.GET("/summary", reportHandler.GetSummary)
	reportsGroup.GET("/monthly", reportHandler.GetMonthlyReport)
	reportsGroup.GET("/category-breakdown", reportHandler.GetCategoryBreakdown)
	reportsGroup.GET("/category-trend", reportHandler.GetCategoryTrend)
	reportsGroup.GET("/balance-history", reportHandler.GetBalanceHistory)
	reportsGroup.GET("/expense-heatmap", reportHandler.GetExpenseHeatmap)

	// Recurring routes
	recurring := protected.Group("/recurring")
	recurring.GET("/upcoming", reportHandler.GetUpcomingBills)
	recurring.GET("/projection", reportHandler.GetRecurringProjection)

	// Import routes
	importGroup := protected.Group("/import")
	importGroup.POST("/run", importHandler.RunImport)

	log.Infof("Starting Finboard backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
