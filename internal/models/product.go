package models

import "github.com/shopspring/decimal"

// ProductType distinguishes what kind of offering a product is.
type ProductType string

const (
	ProductTypePhysical ProductType = "physical"
	ProductTypeDigital  ProductType = "digital"
	ProductTypeService  ProductType = "service"
)

// Product is an offering sold by a profile; referenced by Inventory.
type Product struct {
	Base
	TenantOwned
	Name     string          `gorm:"not null" json:"name"`
	Type     ProductType     `gorm:"default:physical" json:"type"`
	Price    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"price"`
	Category string          `json:"category"`
	Status   RecordStatus    `gorm:"default:active" json:"status"`
}
