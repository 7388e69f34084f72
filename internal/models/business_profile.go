package models

// BusinessProfile is the tenant root. Every other domain record carries its
// ID, and one profile exists per user (enforced at the service layer and by
// the unique index on user_id).
type BusinessProfile struct {
	Base
	UserID      string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
	LogoURL     string `json:"logo_url"`
	BrandColor  string `json:"brand_color"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	IsVerified  bool   `gorm:"default:false" json:"is_verified"`
}
