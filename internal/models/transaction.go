package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies money movement: PAYMENT is money received,
// PAYOUT is money spent.
type TransactionType string

const (
	TransactionTypePayment TransactionType = "PAYMENT"
	TransactionTypePayout  TransactionType = "PAYOUT"
)

// Transaction is a single money movement for a profile. Updates and deletes
// are ownership-checked against the caller's profile.
type Transaction struct {
	Base
	TenantOwned
	PaymentMethodID   *string         `gorm:"type:uuid" json:"payment_method_id,omitempty"`
	ExpenseCategoryID *string         `gorm:"type:uuid;index" json:"expense_category_id,omitempty"`
	Type              TransactionType `gorm:"not null" json:"type"`
	Amount            decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"amount"`
	Date              time.Time       `gorm:"not null;index" json:"date"`
	Reference         string          `json:"reference"`

	PaymentMethod *PaymentMethod   `gorm:"foreignKey:PaymentMethodID" json:"payment_method,omitempty"`
	Category      *ExpenseCategory `gorm:"foreignKey:ExpenseCategoryID" json:"category,omitempty"`
}
