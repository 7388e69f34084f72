package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget allocates an amount to a category for a period.
type Budget struct {
	Base
	TenantOwned
	Category        CategoryName    `gorm:"not null" json:"category"`
	AllocatedAmount decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"allocated_amount"`
	SpentAmount     decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"spent_amount"`
	PeriodStart     time.Time       `gorm:"not null" json:"period_start"`
	PeriodEnd       time.Time       `gorm:"not null" json:"period_end"`
}
