package main

import (
	"fmt"
	"os"
	"time"

	"bizledger/internal/database"
	"bizledger/internal/logger"
	"bizledger/internal/models"
	"bizledger/internal/services"

	"github.com/shopspring/decimal"
)

// Seeds a demo account with a representative data set across every entity.
// Intended for local development only.
func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()
	userService := services.NewUserService(db)
	profileService := services.NewBusinessProfileService(db)
	contactService := services.NewBusinessContactService(db, profileService)
	locationService := services.NewBusinessLocationService(db, profileService)
	expenseService := services.NewExpenseService(db, profileService)
	transactionService := services.NewTransactionService(db, profileService)
	budgetService := services.NewBudgetService(db, profileService)
	goalService := services.NewGoalService(db, profileService)
	invoiceService := services.NewInvoiceService(db, profileService)
	productService := services.NewProductService(db, profileService)
	supplierService := services.NewSupplierService(db, profileService)
	inventoryService := services.NewInventoryService(db, profileService)
	orderService := services.NewPurchaseOrderService(db, profileService)
	methodService := services.NewPaymentMethodService(db, profileService)
	sheetService := services.NewBalanceSheetService(db, profileService)

	user, err := userService.CreateUser("demo@bizledger.dev", "demo-password", "Demo", "Owner")
	if err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}
	log.Infof("Created demo user %s", user.Email)

	if _, err := profileService.Upsert(user.ID, services.BusinessProfileInput{
		CompanyName: "Acme Coffee Roasters",
		Email:       "hello@acmecoffee.dev",
		Phone:       "+1-555-0100",
		City:        "Portland",
		State:       "OR",
		Country:     "US",
		BrandColor:  "#6F4E37",
	}); err != nil {
		return fmt.Errorf("failed to seed business profile: %w", err)
	}

	if _, err := profileService.UpsertInformation(user.ID, services.BusinessInformationInput{
		TaxID:                "93-1234567",
		RegistrationNumber:   "OR-2021-004512",
		Currency:             "USD",
		Locale:               "en-US",
		DateFormat:           "YYYY-MM-DD",
		FiscalYearStartMonth: 1,
	}); err != nil {
		return fmt.Errorf("failed to seed business information: %w", err)
	}

	if _, err := contactService.Upsert(user.ID, services.BusinessContactInput{
		Name:      "Jamie Chen",
		Role:      "Accountant",
		Email:     "jamie@acmecoffee.dev",
		IsPrimary: true,
	}); err != nil {
		return fmt.Errorf("failed to seed contact: %w", err)
	}

	if _, err := locationService.Upsert(user.ID, services.BusinessLocationInput{
		Name:           "Roastery",
		AddressLine:    "1200 SE Division St",
		City:           "Portland",
		State:          "OR",
		PostalCode:     "97202",
		Country:        "US",
		IsHeadquarters: true,
	}); err != nil {
		return fmt.Errorf("failed to seed location: %w", err)
	}

	rentCategory, err := expenseService.UpsertCategory(user.ID, services.ExpenseCategoryInput{Name: models.CategoryRent})
	if err != nil {
		return fmt.Errorf("failed to seed expense category: %w", err)
	}
	suppliesCategory, err := expenseService.UpsertCategory(user.ID, services.ExpenseCategoryInput{Name: models.CategorySupplies})
	if err != nil {
		return fmt.Errorf("failed to seed expense category: %w", err)
	}

	if _, err := expenseService.UpsertExpense(user.ID, services.ExpenseInput{
		ExpenseCategoryID: rentCategory.ID,
		Name:              "Roastery lease",
		Frequency:         models.FrequencyMonthly,
	}); err != nil {
		return fmt.Errorf("failed to seed expense: %w", err)
	}

	method, err := methodService.Upsert(user.ID, services.PaymentMethodInput{
		Type:  models.PaymentMethodBank,
		Label: "Operating account",
		Details: models.PaymentMethodDetails{
			Bank: &models.BankDetails{
				BankName:      "First Cascade Bank",
				AccountName:   "Acme Coffee Roasters LLC",
				AccountNumber: "****4821",
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to seed payment method: %w", err)
	}

	now := time.Now()
	transactions := []services.TransactionInput{
		{
			Type:            models.TransactionTypePayment,
			Amount:          decimal.NewFromInt(2400),
			Date:            now.AddDate(0, 0, -20),
			Reference:       "Wholesale order #1042",
			PaymentMethodID: &method.ID,
		},
		{
			Type:              models.TransactionTypePayout,
			Amount:            decimal.NewFromInt(1850),
			Date:              now.AddDate(0, 0, -15),
			Reference:         "May rent",
			PaymentMethodID:   &method.ID,
			ExpenseCategoryID: &rentCategory.ID,
		},
		{
			Type:              models.TransactionTypePayout,
			Amount:            decimal.NewFromFloat(312.50),
			Date:              now.AddDate(0, 0, -7),
			Reference:         "Green beans restock",
			ExpenseCategoryID: &suppliesCategory.ID,
		},
	}
	for _, in := range transactions {
		if _, err := transactionService.Upsert(user.ID, in); err != nil {
			return fmt.Errorf("failed to seed transaction: %w", err)
		}
	}

	if _, err := budgetService.Upsert(user.ID, services.BudgetInput{
		Category:        models.CategorySupplies,
		AllocatedAmount: decimal.NewFromInt(1500),
		SpentAmount:     decimal.NewFromFloat(312.50),
		PeriodStart:     time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:       time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1),
	}); err != nil {
		return fmt.Errorf("failed to seed budget: %w", err)
	}

	deadline := now.AddDate(1, 0, 0)
	if _, err := goalService.Upsert(user.ID, services.GoalInput{
		Title:         "Second espresso machine",
		TargetAmount:  decimal.NewFromInt(12000),
		CurrentAmount: decimal.NewFromInt(3500),
		Deadline:      &deadline,
		Category:      "equipment",
	}); err != nil {
		return fmt.Errorf("failed to seed goal: %w", err)
	}

	if _, err := invoiceService.Upsert(user.ID, services.InvoiceInput{
		InvoiceNumber: "INV-2026-0001",
		CustomerName:  "Riverside Cafe",
		CustomerEmail: "orders@riversidecafe.dev",
		Amount:        decimal.NewFromInt(2400),
		Status:        models.InvoiceStatusSent,
		IssueDate:     now.AddDate(0, 0, -20),
		DueDate:       now.AddDate(0, 0, 10),
	}); err != nil {
		return fmt.Errorf("failed to seed invoice: %w", err)
	}

	product, err := productService.Upsert(user.ID, services.ProductInput{
		Name:     "House Blend 1kg",
		Type:     models.ProductTypePhysical,
		Price:    decimal.NewFromFloat(24.00),
		Category: "coffee",
	})
	if err != nil {
		return fmt.Errorf("failed to seed product: %w", err)
	}

	if _, err := inventoryService.Upsert(user.ID, services.InventoryInput{
		ProductID: product.ID,
		Quantity:  140,
		MinStock:  40,
		MaxStock:  400,
		UnitCost:  decimal.NewFromFloat(9.80),
		Location:  "Roastery",
	}); err != nil {
		return fmt.Errorf("failed to seed inventory: %w", err)
	}

	supplier, err := supplierService.Upsert(user.ID, services.SupplierInput{
		Name:        "Andes Green Imports",
		ContactName: "M. Alvarez",
		Email:       "sales@andesgreen.dev",
	})
	if err != nil {
		return fmt.Errorf("failed to seed supplier: %w", err)
	}

	expected := now.AddDate(0, 0, 14)
	if _, err := orderService.Upsert(user.ID, services.PurchaseOrderInput{
		SupplierID:       supplier.ID,
		OrderNumber:      "PO-2026-0007",
		TotalAmount:      decimal.NewFromInt(4200),
		Status:           models.PurchaseOrderApproved,
		OrderDate:        now.AddDate(0, 0, -3),
		ExpectedDelivery: &expected,
	}); err != nil {
		return fmt.Errorf("failed to seed purchase order: %w", err)
	}

	sheetItems := []services.BalanceSheetItemInput{
		{Title: "Roasting equipment", Amount: decimal.NewFromInt(28000), Type: models.BalanceSheetAsset},
		{Title: "Equipment loan", Amount: decimal.NewFromInt(11000), Type: models.BalanceSheetLiability},
		{Title: "Owner capital", Amount: decimal.NewFromInt(17000), Type: models.BalanceSheetEquity},
	}
	for _, in := range sheetItems {
		if _, err := sheetService.Upsert(user.ID, in); err != nil {
			return fmt.Errorf("failed to seed balance sheet item: %w", err)
		}
	}

	log.Info("Seed data created successfully")
	return nil
}
