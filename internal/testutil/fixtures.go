package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"bizledger/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestProfile creates a business profile owned by the given user.
func CreateTestProfile(t *testing.T, db *gorm.DB, userID string) *models.BusinessProfile {
	t.Helper()

	profile := &models.BusinessProfile{
		UserID:      userID,
		CompanyName: fmt.Sprintf("Test Company %d", nextID()),
		IsActive:    true,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CreateTestCategory creates an expense category with the given name.
func CreateTestCategory(t *testing.T, db *gorm.DB, profileID string, name models.CategoryName) *models.ExpenseCategory {
	t.Helper()

	category := &models.ExpenseCategory{
		TenantOwned: models.TenantOwned{BusinessProfileID: profileID},
		Name:        name,
		Status:      models.StatusActive,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestPaymentMethod creates an active bank payment method.
func CreateTestPaymentMethod(t *testing.T, db *gorm.DB, profileID string) *models.PaymentMethod {
	t.Helper()

	method := &models.PaymentMethod{
		TenantOwned: models.TenantOwned{BusinessProfileID: profileID},
		Type:        models.PaymentMethodBank,
		Label:       fmt.Sprintf("Test Account %d", nextID()),
		Details: models.PaymentMethodDetails{
			Bank: &models.BankDetails{
				BankName:      "Test Bank",
				AccountName:   "Test Holder",
				AccountNumber: "****0001",
			},
		},
		IsActive: true,
	}
	if err := db.Create(method).Error; err != nil {
		t.Fatalf("failed to create test payment method: %v", err)
	}
	return method
}

// CreateTestTransaction creates a transaction of the given type and amount.
// It does not create a paired cash flow; use the transaction service when the
// pairing matters.
func CreateTestTransaction(t *testing.T, db *gorm.DB, profileID string, txType models.TransactionType, amount decimal.Decimal) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		TenantOwned: models.TenantOwned{BusinessProfileID: profileID},
		Type:        txType,
		Amount:      amount,
		Date:        time.Now(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestProduct creates a physical product with a fixed price.
func CreateTestProduct(t *testing.T, db *gorm.DB, profileID string) *models.Product {
	t.Helper()

	product := &models.Product{
		TenantOwned: models.TenantOwned{BusinessProfileID: profileID},
		Name:        fmt.Sprintf("Test Product %d", nextID()),
		Type:        models.ProductTypePhysical,
		Price:       decimal.NewFromInt(25),
		Status:      models.StatusActive,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

// CreateTestSupplier creates an active supplier.
func CreateTestSupplier(t *testing.T, db *gorm.DB, profileID string) *models.Supplier {
	t.Helper()

	supplier := &models.Supplier{
		TenantOwned: models.TenantOwned{BusinessProfileID: profileID},
		Name:        fmt.Sprintf("Test Supplier %d", nextID()),
		Status:      models.StatusActive,
	}
	if err := db.Create(supplier).Error; err != nil {
		t.Fatalf("failed to create test supplier: %v", err)
	}
	return supplier
}
