package services

import (
	"gorm.io/gorm"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
)

// BusinessContactInput carries the writable fields of a business contact.
type BusinessContactInput struct {
	ID        string
	Name      string
	Role      string
	Email     string
	Phone     string
	IsPrimary bool
	IsActive  *bool
}

type businessContactService struct {
	db       *gorm.DB
	profiles BusinessProfileServicer
}

// NewBusinessContactService creates a new BusinessContactServicer.
func NewBusinessContactService(db *gorm.DB, profiles BusinessProfileServicer) BusinessContactServicer {
	return &businessContactService{db: db, profiles: profiles}
}

// List returns all contacts for the caller's profile.
func (s *businessContactService) List(userID string) ([]models.BusinessContact, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return listByProfile[models.BusinessContact](s.db, profile.ID)
}

// Upsert inserts a contact when no id is given, otherwise updates the
// existing contact after verifying it belongs to the caller's profile.
func (s *businessContactService) Upsert(userID string, in BusinessContactInput) (*models.BusinessContact, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if in.ID == "" {
		contact := &models.BusinessContact{
			TenantOwned: models.TenantOwned{BusinessProfileID: profile.ID},
			Name:        in.Name,
			Role:        in.Role,
			Email:       in.Email,
			Phone:       in.Phone,
			IsPrimary:   in.IsPrimary,
			IsActive:    true,
		}
		if in.IsActive != nil {
			contact.IsActive = *in.IsActive
		}
		if err := s.db.Create(contact).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return contact, nil
	}

	contact, err := fetchOwned[models.BusinessContact](s.db, in.ID, profile.ID, apperrors.ErrContactNotFound)
	if err != nil {
		return nil, err
	}
	contact.Name = in.Name
	contact.Role = in.Role
	contact.Email = in.Email
	contact.Phone = in.Phone
	contact.IsPrimary = in.IsPrimary
	if in.IsActive != nil {
		contact.IsActive = *in.IsActive
	}
	if err := s.db.Save(contact).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return contact, nil
}

// Delete removes a contact owned by the caller's profile.
func (s *businessContactService) Delete(userID, id string) (*models.BusinessContact, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return deleteOwned[models.BusinessContact](s.db, id, profile.ID, apperrors.ErrContactNotFound)
}
