package models

// BusinessContact is a named person attached to a profile.
type BusinessContact struct {
	Base
	TenantOwned
	Name      string `gorm:"not null" json:"name"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsPrimary bool   `gorm:"default:false" json:"is_primary"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`
}
