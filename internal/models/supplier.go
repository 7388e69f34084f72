package models

// Supplier is a vendor the business buys from; referenced by PurchaseOrder.
type Supplier struct {
	Base
	TenantOwned
	Name        string       `gorm:"not null" json:"name"`
	ContactName string       `json:"contact_name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Address     string       `json:"address"`
	Status      RecordStatus `gorm:"default:active" json:"status"`
}
