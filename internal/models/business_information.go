package models

// BusinessInformation holds tax, registration and locale settings for a
// profile. Exactly one row per profile, created lazily and upserted in place.
type BusinessInformation struct {
	Base
	BusinessProfileID    string `gorm:"type:uuid;uniqueIndex;not null" json:"business_profile_id"`
	TaxID                string `json:"tax_id"`
	RegistrationNumber   string `json:"registration_number"`
	Currency             string `gorm:"size:3;default:USD" json:"currency"`
	Locale               string `gorm:"default:en-US" json:"locale"`
	DateFormat           string `gorm:"default:YYYY-MM-DD" json:"date_format"`
	FiscalYearStartMonth int    `gorm:"default:1" json:"fiscal_year_start_month"`
	ComplianceNotes      string `json:"compliance_notes"`
}

// TableName keeps the singular form; "information" has no plural.
func (BusinessInformation) TableName() string { return "business_information" }

// OwnerID returns the business profile the record belongs to.
func (b BusinessInformation) OwnerID() string { return b.BusinessProfileID }
