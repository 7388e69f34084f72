package models

import (
	"time"

	"bizledger/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables
type Base struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// TenantOwned is embedded by every record scoped to a business profile.
type TenantOwned struct {
	BusinessProfileID string `gorm:"type:uuid;not null;index" json:"business_profile_id"`
}

// OwnerID returns the business profile the record belongs to.
func (t TenantOwned) OwnerID() string { return t.BusinessProfileID }
