package services

import (
	"gorm.io/gorm"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
)

// PaymentMethodInput carries the writable fields of a payment method.
type PaymentMethodInput struct {
	ID       string
	Type     models.PaymentMethodType
	Label    string
	Details  models.PaymentMethodDetails
	IsActive *bool
}

type paymentMethodService struct {
	db       *gorm.DB
	profiles BusinessProfileServicer
}

// NewPaymentMethodService creates a new PaymentMethodServicer.
func NewPaymentMethodService(db *gorm.DB, profiles BusinessProfileServicer) PaymentMethodServicer {
	return &paymentMethodService{db: db, profiles: profiles}
}

// List returns all payment methods for the caller's profile.
func (s *paymentMethodService) List(userID string) ([]models.PaymentMethod, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return listByProfile[models.PaymentMethod](s.db, profile.ID)
}

// Upsert inserts or updates a payment method. The details union must match
// the method type.
func (s *paymentMethodService) Upsert(userID string, in PaymentMethodInput) (*models.PaymentMethod, error) {
	if err := in.Details.ValidateFor(in.Type); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidMethodDetails, err.Error())
	}

	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if in.ID == "" {
		method := &models.PaymentMethod{
			TenantOwned: models.TenantOwned{BusinessProfileID: profile.ID},
			Type:        in.Type,
			Label:       in.Label,
			Details:     in.Details,
			IsActive:    true,
		}
		if in.IsActive != nil {
			method.IsActive = *in.IsActive
		}
		if err := s.db.Create(method).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return method, nil
	}

	method, err := fetchOwned[models.PaymentMethod](s.db, in.ID, profile.ID, apperrors.ErrPaymentMethodNotFound)
	if err != nil {
		return nil, err
	}
	method.Type = in.Type
	method.Label = in.Label
	method.Details = in.Details
	if in.IsActive != nil {
		method.IsActive = *in.IsActive
	}
	if err := s.db.Save(method).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return method, nil
}

// Delete removes a payment method owned by the caller's profile.
func (s *paymentMethodService) Delete(userID, id string) (*models.PaymentMethod, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return deleteOwned[models.PaymentMethod](s.db, id, profile.ID, apperrors.ErrPaymentMethodNotFound)
}
