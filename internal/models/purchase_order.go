package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus tracks an order placed with a supplier.
type PurchaseOrderStatus string

const (
	PurchaseOrderPending   PurchaseOrderStatus = "pending"
	PurchaseOrderApproved  PurchaseOrderStatus = "approved"
	PurchaseOrderShipped   PurchaseOrderStatus = "shipped"
	PurchaseOrderReceived  PurchaseOrderStatus = "received"
	PurchaseOrderCancelled PurchaseOrderStatus = "cancelled"
)

// PurchaseOrder is an order placed with a supplier.
type PurchaseOrder struct {
	Base
	TenantOwned
	SupplierID       string              `gorm:"type:uuid;not null;index" json:"supplier_id"`
	OrderNumber      string              `gorm:"not null;index" json:"order_number"`
	TotalAmount      decimal.Decimal     `gorm:"type:decimal(18,4);not null" json:"total_amount"`
	Status           PurchaseOrderStatus `gorm:"default:pending" json:"status"`
	OrderDate        time.Time           `gorm:"not null" json:"order_date"`
	ExpectedDelivery *time.Time          `json:"expected_delivery,omitempty"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}
