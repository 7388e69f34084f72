package services

import (
	"gorm.io/gorm"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
)

// SupplierInput carries the writable fields of a supplier.
type SupplierInput struct {
	ID          string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string
	Status      models.RecordStatus
}

type supplierService struct {
	db       *gorm.DB
	profiles BusinessProfileServicer
}

// NewSupplierService creates a new SupplierServicer.
func NewSupplierService(db *gorm.DB, profiles BusinessProfileServicer) SupplierServicer {
	return &supplierService{db: db, profiles: profiles}
}

// List returns all suppliers for the caller's profile.
func (s *supplierService) List(userID string) ([]models.Supplier, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return listByProfile[models.Supplier](s.db, profile.ID, func(q *gorm.DB) *gorm.DB {
		return q.Order("name")
	})
}

// Upsert inserts or updates a supplier scoped to the caller's profile.
func (s *supplierService) Upsert(userID string, in SupplierInput) (*models.Supplier, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.StatusActive
	}

	if in.ID == "" {
		supplier := &models.Supplier{
			TenantOwned: models.TenantOwned{BusinessProfileID: profile.ID},
			Name:        in.Name,
			ContactName: in.ContactName,
			Email:       in.Email,
			Phone:       in.Phone,
			Address:     in.Address,
			Status:      status,
		}
		if err := s.db.Create(supplier).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return supplier, nil
	}

	supplier, err := fetchOwned[models.Supplier](s.db, in.ID, profile.ID, apperrors.ErrSupplierNotFound)
	if err != nil {
		return nil, err
	}
	supplier.Name = in.Name
	supplier.ContactName = in.ContactName
	supplier.Email = in.Email
	supplier.Phone = in.Phone
	supplier.Address = in.Address
	supplier.Status = status
	if err := s.db.Save(supplier).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return supplier, nil
}

// Delete removes a supplier owned by the caller's profile.
func (s *supplierService) Delete(userID, id string) (*models.Supplier, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return deleteOwned[models.Supplier](s.db, id, profile.ID, apperrors.ErrSupplierNotFound)
}
