package models

import "github.com/shopspring/decimal"

// BalanceSheetType classifies a balance sheet line item.
type BalanceSheetType string

const (
	BalanceSheetAsset     BalanceSheetType = "ASSET"
	BalanceSheetLiability BalanceSheetType = "LIABILITY"
	BalanceSheetEquity    BalanceSheetType = "EQUITY"
)

// BalanceSheetItem is a single asset, liability or equity line for a profile.
type BalanceSheetItem struct {
	Base
	TenantOwned
	Title       string           `gorm:"not null" json:"title"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `gorm:"type:decimal(18,4);not null" json:"amount"`
	Type        BalanceSheetType `gorm:"not null" json:"type"`
}
