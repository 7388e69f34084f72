package models

// BusinessLocation is a physical site belonging to a profile. Locations
// support explicit deactivate/reactivate on top of the usual CRUD.
type BusinessLocation struct {
	Base
	TenantOwned
	Name           string   `gorm:"not null" json:"name"`
	AddressLine    string   `json:"address_line"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	PostalCode     string   `json:"postal_code"`
	Country        string   `json:"country"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	IsHeadquarters bool     `gorm:"default:false" json:"is_headquarters"`
	IsActive       bool     `gorm:"default:true" json:"is_active"`
}
