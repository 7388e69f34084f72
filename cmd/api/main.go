package main

import (
	"fmt"
	"net/http"
	"os"

	"bizledger/internal/config"
	"bizledger/internal/database"
	"bizledger/internal/handlers"
	"bizledger/internal/logger"
	"bizledger/internal/middleware"
	"bizledger/internal/services"
	"bizledger/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Bizledger API
// @version         1.0
// @description     Bizledger is a small business financial management API covering transactions, cash flow, budgets, invoicing, suppliers, and inventory.

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

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	profileService := services.NewBusinessProfileService(db)
	contactService := services.NewBusinessContactService(db, profileService)
	locationService := services.NewBusinessLocationService(db, profileService)
	expenseService := services.NewExpenseService(db, profileService)
	transactionService := services.NewTransactionService(db, profileService)
	reportService := services.NewReportService(db, profileService)
	budgetService := services.NewBudgetService(db, profileService)
	goalService := services.NewGoalService(db, profileService)
	invoiceService := services.NewInvoiceService(db, profileService)
	productService := services.NewProductService(db, profileService)
	supplierService := services.NewSupplierService(db, profileService)
	inventoryService := services.NewInventoryService(db, profileService)
	orderService := services.NewPurchaseOrderService(db, profileService)
	methodService := services.NewPaymentMethodService(db, profileService)
	sheetService := services.NewBalanceSheetService(db, profileService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	profileHandler := handlers.NewBusinessProfileHandler(profileService)
	contactHandler := handlers.NewBusinessContactHandler(contactService)
	locationHandler := handlers.NewBusinessLocationHandler(locationService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	reportHandler := handlers.NewReportHandler(reportService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	goalHandler := handlers.NewGoalHandler(goalService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	productHandler := handlers.NewProductHandler(productService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	orderHandler := handlers.NewPurchaseOrderHandler(orderService)
	methodHandler := handlers.NewPaymentMethodHandler(methodService)
	sheetHandler := handlers.NewBalanceSheetHandler(sheetService)

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

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Business profile and information
	protected.GET("/business-profile", profileHandler.GetProfile)
	protected.PUT("/business-profile", profileHandler.UpsertProfile)
	protected.DELETE("/business-profile", profileHandler.DeleteProfile)
	protected.GET("/business-information", profileHandler.GetInformation)
	protected.PUT("/business-information", profileHandler.UpsertInformation)
	protected.DELETE("/business-information", profileHandler.DeleteInformation)

	// Business contact routes
	contacts := protected.Group("/business-contacts")
	contacts.GET("", contactHandler.List)
	contacts.POST("", contactHandler.Create)
	contacts.PUT("/:id", contactHandler.Update)
	contacts.DELETE("/:id", contactHandler.Delete)

	// Business location routes
	locations := protected.Group("/business-locations")
	locations.GET("", locationHandler.List)
	locations.POST("", locationHandler.Create)
	locations.PUT("/:id", locationHandler.Update)
	locations.DELETE("/:id", locationHandler.Delete)
	locations.POST("/:id/deactivate", locationHandler.Deactivate)
	locations.POST("/:id/reactivate", locationHandler.Reactivate)

	// Expense category routes
	categories := protected.Group("/expense-categories")
	categories.GET("", expenseHandler.ListCategories)
	categories.POST("", expenseHandler.CreateCategory)
	categories.PUT("/:id", expenseHandler.UpdateCategory)
	categories.DELETE("/:id", expenseHandler.DeleteCategory)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Transaction and cash flow routes
	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.List)
	transactions.POST("", transactionHandler.Create)
	transactions.PUT("/:id", transactionHandler.Update)
	transactions.DELETE("/:id", transactionHandler.Delete)
	protected.GET("/cash-flows", transactionHandler.ListCashFlows)

	// Report routes
	protected.GET("/reports/profit-loss", reportHandler.ProfitLoss)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.List)
	budgets.POST("", budgetHandler.Create)
	budgets.PUT("/:id", budgetHandler.Update)
	budgets.DELETE("/:id", budgetHandler.Delete)

	// Goal routes
	goals := protected.Group("/goals")
	goals.GET("", goalHandler.List)
	goals.POST("", goalHandler.Create)
	goals.PUT("/:id", goalHandler.Update)
	goals.DELETE("/:id", goalHandler.Delete)

	// Invoice routes
	invoices := protected.Group("/invoices")
	invoices.GET("", invoiceHandler.List)
	invoices.POST("", invoiceHandler.Create)
	invoices.PUT("/:id", invoiceHandler.Update)
	invoices.DELETE("/:id", invoiceHandler.Delete)

	// Product routes
	products := protected.Group("/products")
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// Supplier routes
	suppliers := protected.Group("/suppliers")
	suppliers.GET("", supplierHandler.List)
	suppliers.POST("", supplierHandler.Create)
	suppliers.PUT("/:id", supplierHandler.Update)
	suppliers.DELETE("/:id", supplierHandler.Delete)

	// Inventory routes
	inventory := protected.Group("/inventory")
	inventory.GET("", inventoryHandler.List)
	inventory.POST("", inventoryHandler.Create)
	inventory.PUT("/:id", inventoryHandler.Update)
	inventory.DELETE("/:id", inventoryHandler.Delete)

	// Purchase order routes
	orders := protected.Group("/purchase-orders")
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.PUT("/:id", orderHandler.Update)
	orders.DELETE("/:id", orderHandler.Delete)

	// Payment method routes
	methods := protected.Group("/payment-methods")
	methods.GET("", methodHandler.List)
	methods.POST("", methodHandler.Create)
	methods.PUT("/:id", methodHandler.Update)
	methods.DELETE("/:id", methodHandler.Delete)

	// Balance sheet routes
	sheet := protected.Group("/balance-sheet")
	sheet.GET("", sheetHandler.List)
	sheet.POST("", sheetHandler.Create)
	sheet.PUT("/:id", sheetHandler.Update)
	sheet.DELETE("/:id", sheetHandler.Delete)

	log.Infof("Starting Bizledger backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
