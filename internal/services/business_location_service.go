package services

import (
	"gorm.io/gorm"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
)

// BusinessLocationInput carries the writable fields of a business location.
type BusinessLocationInput struct {
	ID             string
	Name           string
	AddressLine    string
	City           string
	State          string
	PostalCode     string
	Country        string
	Latitude       *float64
	Longitude      *float64
	IsHeadquarters bool
}

type businessLocationService struct {
	db       *gorm.DB
	profiles BusinessProfileServicer
}

// NewBusinessLocationService creates a new BusinessLocationServicer.
func NewBusinessLocationService(db *gorm.DB, profiles BusinessProfileServicer) BusinessLocationServicer {
	return &businessLocationService{db: db, profiles: profiles}
}

// List returns all locations for the caller's profile.
func (s *businessLocationService) List(userID string) ([]models.BusinessLocation, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return listByProfile[models.BusinessLocation](s.db, profile.ID)
}

// Upsert inserts or updates a location scoped to the caller's profile.
func (s *businessLocationService) Upsert(userID string, in BusinessLocationInput) (*models.BusinessLocation, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if in.ID == "" {
		loc := &models.BusinessLocation{
			TenantOwned:    models.TenantOwned{BusinessProfileID: profile.ID},
			Name:           in.Name,
			AddressLine:    in.AddressLine,
			City:           in.City,
			State:          in.State,
			PostalCode:     in.PostalCode,
			Country:        in.Country,
			Latitude:       in.Latitude,
			Longitude:      in.Longitude,
			IsHeadquarters: in.IsHeadquarters,
			IsActive:       true,
		}
		if err := s.db.Create(loc).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return loc, nil
	}

	loc, err := fetchOwned[models.BusinessLocation](s.db, in.ID, profile.ID, apperrors.ErrLocationNotFound)
	if err != nil {
		return nil, err
	}
	loc.Name = in.Name
	loc.AddressLine = in.AddressLine
	loc.City = in.City
	loc.State = in.State
	loc.PostalCode = in.PostalCode
	loc.Country = in.Country
	loc.Latitude = in.Latitude
	loc.Longitude = in.Longitude
	loc.IsHeadquarters = in.IsHeadquarters
	if err := s.db.Save(loc).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return loc, nil
}

// Delete removes a location owned by the caller's profile.
func (s *businessLocationService) Delete(userID, id string) (*models.BusinessLocation, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return deleteOwned[models.BusinessLocation](s.db, id, profile.ID, apperrors.ErrLocationNotFound)
}

// Deactivate soft-disables a location without removing it.
func (s *businessLocationService) Deactivate(userID, id string) (*models.BusinessLocation, error) {
	return s.setActive(userID, id, false)
}

// Reactivate re-enables a previously deactivated location.
func (s *businessLocationService) Reactivate(userID, id string) (*models.BusinessLocation, error) {
	return s.setActive(userID, id, true)
}

func (s *businessLocationService) setActive(userID, id string, active bool) (*models.BusinessLocation, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	loc, err := fetchOwned[models.BusinessLocation](s.db, id, profile.ID, apperrors.ErrLocationNotFound)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(loc).Update("is_active", active).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	loc.IsActive = active
	return loc, nil
}
