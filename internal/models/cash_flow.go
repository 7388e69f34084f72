package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowDirection classifies a cash flow as money in or money out.
type CashFlowDirection string

const (
	CashFlowIncoming CashFlowDirection = "INCOMING"
	CashFlowOutgoing CashFlowDirection = "OUTGOING"
)

// DirectionForType derives the cash flow direction from a transaction type.
func DirectionForType(t TransactionType) CashFlowDirection {
	if t == TransactionTypePayout {
		return CashFlowOutgoing
	}
	return CashFlowIncoming
}

// CashFlow mirrors a transaction as a directional money movement. It is
// written in the same database transaction as its Transaction.
type CashFlow struct {
	Base
	TenantOwned
	TransactionID string            `gorm:"type:uuid;not null;index" json:"transaction_id"`
	Direction     CashFlowDirection `gorm:"not null" json:"direction"`
	Amount        decimal.Decimal   `gorm:"type:decimal(18,4);not null" json:"amount"`
	FlowDate      time.Time         `gorm:"not null" json:"flow_date"`

	Transaction *Transaction `gorm:"foreignKey:TransactionID" json:"transaction,omitempty"`
}
