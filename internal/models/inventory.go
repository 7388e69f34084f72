package models

import "github.com/shopspring/decimal"

// Inventory tracks stock for a product. One row per product by convention,
// enforced at the service layer.
type Inventory struct {
	Base
	TenantOwned
	ProductID string          `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	MinStock  int             `json:"min_stock"`
	MaxStock  int             `json:"max_stock"`
	UnitCost  decimal.Decimal `gorm:"type:decimal(18,4)" json:"unit_cost"`
	Location  string          `json:"location"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
