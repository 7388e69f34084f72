package services

import (
	"time"

	"bizledger/internal/models"
)

// UserServicer defines the contract for user account logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// BusinessProfileServicer resolves and maintains the tenant root and its 1:1
// business information.
type BusinessProfileServicer interface {
	GetOrCreate(userID string) (*models.BusinessProfile, error)
	Upsert(userID string, in BusinessProfileInput) (*models.BusinessProfile, error)
	Delete(userID string) (*models.BusinessProfile, error)
	GetInformation(userID string) (*models.BusinessInformation, error)
	UpsertInformation(userID string, in BusinessInformationInput) (*models.BusinessInformation, error)
	DeleteInformation(userID string) (*models.BusinessInformation, error)
}

// BusinessContactServicer defines the contract for business contacts.
type BusinessContactServicer interface {
	List(userID string) ([]models.BusinessContact, error)
	Upsert(userID string, in BusinessContactInput) (*models.BusinessContact, error)
	Delete(userID, id string) (*models.BusinessContact, error)
}

// BusinessLocationServicer defines the contract for business locations.
type BusinessLocationServicer interface {
	List(userID string) ([]models.BusinessLocation, error)
	Upsert(userID string, in BusinessLocationInput) (*models.BusinessLocation, error)
	Delete(userID, id string) (*models.BusinessLocation, error)
	Deactivate(userID, id string) (*models.BusinessLocation, error)
	Reactivate(userID, id string) (*models.BusinessLocation, error)
}

// ExpenseServicer defines the contract for expense categories and expenses.
type ExpenseServicer interface {
	ListCategories(userID string) ([]models.ExpenseCategory, error)
	UpsertCategory(userID string, in ExpenseCategoryInput) (*models.ExpenseCategory, error)
	DeleteCategory(userID, id string) (*models.ExpenseCategory, error)
	ListExpenses(userID string) ([]models.Expense, error)
	UpsertExpense(userID string, in ExpenseInput) (*models.Expense, error)
	DeleteExpense(userID, id string) (*models.Expense, error)
}

// TransactionServicer defines the contract for transactions and cash flows.
type TransactionServicer interface {
	List(userID string, filter TransactionFilter) ([]models.Transaction, error)
	Upsert(userID string, in TransactionInput) (*models.Transaction, error)
	Delete(userID, id string) (*models.Transaction, error)
	ListCashFlows(userID string) ([]models.CashFlow, error)
}

// ReportServicer defines the contract for aggregate reports.
type ReportServicer interface {
	ProfitLoss(userID string, from, to *time.Time) (*ProfitLossReport, error)
}

// BudgetServicer defines the contract for budgets.
type BudgetServicer interface {
	List(userID string) ([]models.Budget, error)
	Upsert(userID string, in BudgetInput) (*models.Budget, error)
	Delete(userID, id string) (*models.Budget, error)
}

// GoalServicer defines the contract for goals.
type GoalServicer interface {
	List(userID string) ([]models.Goal, error)
	Upsert(userID string, in GoalInput) (*models.Goal, error)
	Delete(userID, id string) (*models.Goal, error)
}

// InvoiceServicer defines the contract for invoices.
type InvoiceServicer interface {
	List(userID string) ([]models.Invoice, error)
	Upsert(userID string, in InvoiceInput) (*models.Invoice, error)
	Delete(userID, id string) (*models.Invoice, error)
}

// ProductServicer defines the contract for products.
type ProductServicer interface {
	List(userID string) ([]models.Product, error)
	Upsert(userID string, in ProductInput) (*models.Product, error)
	Delete(userID, id string) (*models.Product, error)
}

// SupplierServicer defines the contract for suppliers.
type SupplierServicer interface {
	List(userID string) ([]models.Supplier, error)
	Upsert(userID string, in SupplierInput) (*models.Supplier, error)
	Delete(userID, id string) (*models.Supplier, error)
}

// InventoryServicer defines the contract for inventory records.
type InventoryServicer interface {
	List(userID string) ([]models.Inventory, error)
	Upsert(userID string, in InventoryInput) (*models.Inventory, error)
	Delete(userID, id string) (*models.Inventory, error)
}

// PurchaseOrderServicer defines the contract for purchase orders.
type PurchaseOrderServicer interface {
	List(userID string) ([]models.PurchaseOrder, error)
	Upsert(userID string, in PurchaseOrderInput) (*models.PurchaseOrder, error)
	Delete(userID, id string) (*models.PurchaseOrder, error)
}

// PaymentMethodServicer defines the contract for payment methods.
type PaymentMethodServicer interface {
	List(userID string) ([]models.PaymentMethod, error)
	Upsert(userID string, in PaymentMethodInput) (*models.PaymentMethod, error)
	Delete(userID, id string) (*models.PaymentMethod, error)
}

// BalanceSheetServicer defines the contract for balance sheet items.
type BalanceSheetServicer interface {
	List(userID string) ([]models.BalanceSheetItem, error)
	Upsert(userID string, in BalanceSheetItemInput) (*models.BalanceSheetItem, error)
	Delete(userID, id string) (*models.BalanceSheetItem, error)
}
