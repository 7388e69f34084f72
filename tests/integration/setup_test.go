package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bizledger/internal/handlers"
	"bizledger/internal/logger"
	"bizledger/internal/middleware"
	"bizledger/internal/models"
	"bizledger/internal/services"
	"bizledger/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.BusinessProfile{},
		&models.BusinessInformation{},
		&models.BusinessContact{},
		&models.BusinessLocation{},
		&models.ExpenseCategory{},
		&models.Expense{},
		&models.PaymentMethod{},
		&models.Transaction{},
		&models.CashFlow{},
		&models.Budget{},
		&models.Goal{},
		&models.Invoice{},
		&models.Product{},
		&models.Supplier{},
		&models.Inventory{},
		&models.PurchaseOrder{},
		&models.BalanceSheetItem{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
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

	// Handlers
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

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	protected.GET("/business-profile", profileHandler.GetProfile)
	protected.PUT("/business-profile", profileHandler.UpsertProfile)
	protected.DELETE("/business-profile", profileHandler.DeleteProfile)
	protected.GET("/business-information", profileHandler.GetInformation)
	protected.PUT("/business-information", profileHandler.UpsertInformation)
	protected.DELETE("/business-information", profileHandler.DeleteInformation)

	contacts := protected.Group("/business-contacts")
	contacts.GET("", contactHandler.List)
	contacts.POST("", contactHandler.Create)
	contacts.PUT("/:id", contactHandler.Update)
	contacts.DELETE("/:id", contactHandler.Delete)

	locations := protected.Group("/business-locations")
	locations.GET("", locationHandler.List)
	locations.POST("", locationHandler.Create)
	locations.PUT("/:id", locationHandler.Update)
	locations.DELETE("/:id", locationHandler.Delete)
	locations.POST("/:id/deactivate", locationHandler.Deactivate)
	locations.POST("/:id/reactivate", locationHandler.Reactivate)

	categories := protected.Group("/expense-categories")
	categories.GET("", expenseHandler.ListCategories)
	categories.POST("", expenseHandler.CreateCategory)
	categories.PUT("/:id", expenseHandler.UpdateCategory)
	categories.DELETE("/:id", expenseHandler.DeleteCategory)

	expenses := protected.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.List)
	transactions.POST("", transactionHandler.Create)
	transactions.PUT("/:id", transactionHandler.Update)
	transactions.DELETE("/:id", transactionHandler.Delete)
	protected.GET("/cash-flows", transactionHandler.ListCashFlows)

	protected.GET("/reports/profit-loss", reportHandler.ProfitLoss)

	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.List)
	budgets.POST("", budgetHandler.Create)
	budgets.PUT("/:id", budgetHandler.Update)
	budgets.DELETE("/:id", budgetHandler.Delete)

	goals := protected.Group("/goals")
	goals.GET("", goalHandler.List)
	goals.POST("", goalHandler.Create)
	goals.PUT("/:id", goalHandler.Update)
	goals.DELETE("/:id", goalHandler.Delete)

	invoices := protected.Group("/invoices")
	invoices.GET("", invoiceHandler.List)
	invoices.POST("", invoiceHandler.Create)
	invoices.PUT("/:id", invoiceHandler.Update)
	invoices.DELETE("/:id", invoiceHandler.Delete)

	products := protected.Group("/products")
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	suppliers := protected.Group("/suppliers")
	suppliers.GET("", supplierHandler.List)
	suppliers.POST("", supplierHandler.Create)
	suppliers.PUT("/:id", supplierHandler.Update)
	suppliers.DELETE("/:id", supplierHandler.Delete)

	inventory := protected.Group("/inventory")
	inventory.GET("", inventoryHandler.List)
	inventory.POST("", inventoryHandler.Create)
	inventory.PUT("/:id", inventoryHandler.Update)
	inventory.DELETE("/:id", inventoryHandler.Delete)

	orders := protected.Group("/purchase-orders")
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.PUT("/:id", orderHandler.Update)
	orders.DELETE("/:id", orderHandler.Delete)

	methods := protected.Group("/payment-methods")
	methods.GET("", methodHandler.List)
	methods.POST("", methodHandler.Create)
	methods.PUT("/:id", methodHandler.Update)
	methods.DELETE("/:id", methodHandler.Delete)

	sheet := protected.Group("/balance-sheet")
	sheet.GET("", sheetHandler.List)
	sheet.POST("", sheetHandler.Create)
	sheet.PUT("/:id", sheetHandler.Update)
	sheet.DELETE("/:id", sheetHandler.Delete)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// assertAmount compares a decimal JSON value (marshalled as a quoted string)
// against an expected numeric value.
func assertAmount(t *testing.T, got interface{}, want float64) {
	t.Helper()
	var parsed float64
	switch v := got.(type) {
	case string:
		var err error
		parsed, err = strconv.ParseFloat(v, 64)
		if err != nil {
			t.Fatalf("amount %q is not numeric: %v", v, err)
		}
	case float64:
		parsed = v
	default:
		t.Fatalf("unexpected amount value %v (%T)", got, got)
	}
	if parsed != want {
		t.Errorf("expected amount %v, got %v", want, parsed)
	}
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

// loginUser logs in and returns the token.
func (app *testApp) loginUser(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}
