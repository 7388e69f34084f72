package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
)

// BusinessProfileInput carries the writable fields of a business profile.
type BusinessProfileInput struct {
	CompanyName string
	Email       string
	Phone       string
	Website     string
	AddressLine string
	City        string
	State       string
	PostalCode  string
	Country     string
	LogoURL     string
	BrandColor  string
	IsActive    *bool
}

// BusinessInformationInput carries the writable fields of business information.
type BusinessInformationInput struct {
	TaxID                string
	RegistrationNumber   string
	Currency             string
	Locale               string
	DateFormat           string
	FiscalYearStartMonth int
	ComplianceNotes      string
}

// businessProfileService resolves and maintains the tenant root. Every other
// service calls GetOrCreate to scope its queries.
type businessProfileService struct {
	db *gorm.DB
}

// NewBusinessProfileService creates a new BusinessProfileServicer.
func NewBusinessProfileService(db *gorm.DB) BusinessProfileServicer {
	return &businessProfileService{db: db}
}

// GetOrCreate returns the user's business profile, creating a minimal one on
// first access. The unique index on user_id keeps this to a single row per
// user even when two first requests race the lookup.
func (s *businessProfileService) GetOrCreate(userID string) (*models.BusinessProfile, error) {
	var profile models.BusinessProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	fresh := models.BusinessProfile{UserID: userID, IsActive: true}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&fresh).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Re-read so a lost race still returns the canonical row.
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// Upsert writes the user's profile fields, creating the profile if absent.
func (s *businessProfileService) Upsert(userID string, in BusinessProfileInput) (*models.BusinessProfile, error) {
	profile, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	profile.CompanyName = in.CompanyName
	profile.Email = in.Email
	profile.Phone = in.Phone
	profile.Website = in.Website
	profile.AddressLine = in.AddressLine
	profile.City = in.City
	profile.State = in.State
	profile.PostalCode = in.PostalCode
	profile.Country = in.Country
	profile.LogoURL = in.LogoURL
	profile.BrandColor = in.BrandColor
	if in.IsActive != nil {
		profile.IsActive = *in.IsActive
	}

	if err := s.db.Save(profile).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return profile, nil
}

// Delete removes the user's profile and everything scoped to it. Dependents
// are deleted here, child tables first, so the removal does not rely on
// schema-level cascade rules.
func (s *businessProfileService) Delete(userID string) (*models.BusinessProfile, error) {
	var profile models.BusinessProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Hard deletes throughout: a soft-deleted profile would keep the unique
	// index on user_id blocking a later lazy re-creation.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		dependents := []interface{}{
			&models.CashFlow{},
			&models.Transaction{},
			&models.Expense{},
			&models.ExpenseCategory{},
			&models.PaymentMethod{},
			&models.Inventory{},
			&models.PurchaseOrder{},
			&models.Product{},
			&models.Supplier{},
			&models.Budget{},
			&models.Goal{},
			&models.Invoice{},
			&models.BalanceSheetItem{},
			&models.BusinessContact{},
			&models.BusinessLocation{},
			&models.BusinessInformation{},
		}
		for _, model := range dependents {
			if err := tx.Unscoped().
				Where("business_profile_id = ?", profile.ID).
				Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&profile).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// GetInformation returns the profile's business information, creating an
// empty row with defaults on first access.
func (s *businessProfileService) GetInformation(userID string) (*models.BusinessInformation, error) {
	profile, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	var info models.BusinessInformation
	err = s.db.Where("business_profile_id = ?", profile.ID).First(&info).Error
	if err == nil {
		return &info, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	fresh := models.BusinessInformation{
		BusinessProfileID:    profile.ID,
		Currency:             "USD",
		Locale:               "en-US",
		DateFormat:           "YYYY-MM-DD",
		FiscalYearStartMonth: 1,
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "business_profile_id"}},
		DoNothing: true,
	}).Create(&fresh).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Where("business_profile_id = ?", profile.ID).First(&info).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &info, nil
}

// UpsertInformation writes the 1:1 information row for the user's profile.
func (s *businessProfileService) UpsertInformation(userID string, in BusinessInformationInput) (*models.BusinessInformation, error) {
	info, err := s.GetInformation(userID)
	if err != nil {
		return nil, err
	}

	info.TaxID = in.TaxID
	info.RegistrationNumber = in.RegistrationNumber
	if in.Currency != "" {
		info.Currency = in.Currency
	}
	if in.Locale != "" {
		info.Locale = in.Locale
	}
	if in.DateFormat != "" {
		info.DateFormat = in.DateFormat
	}
	if in.FiscalYearStartMonth != 0 {
		info.FiscalYearStartMonth = in.FiscalYearStartMonth
	}
	info.ComplianceNotes = in.ComplianceNotes

	if err := s.db.Save(info).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return info, nil
}

// DeleteInformation removes the information row for the user's profile.
func (s *businessProfileService) DeleteInformation(userID string) (*models.BusinessInformation, error) {
	profile, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	var info models.BusinessInformation
	if err := s.db.Where("business_profile_id = ?", profile.ID).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInformationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	// Hard delete for the same reason as Delete: the row is recreated
	// lazily and business_profile_id is unique.
	if err := s.db.Unscoped().Delete(&info).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &info, nil
}
