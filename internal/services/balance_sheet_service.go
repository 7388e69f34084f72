package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
)

// BalanceSheetItemInput carries the writable fields of a balance sheet item.
type BalanceSheetItemInput struct {
	ID          string
	Title       string
	Description string
	Amount      decimal.Decimal
	Type        models.BalanceSheetType
}

type balanceSheetService struct {
	db       *gorm.DB
	profiles BusinessProfileServicer
}

// NewBalanceSheetService creates a new BalanceSheetServicer.
func NewBalanceSheetService(db *gorm.DB, profiles BusinessProfileServicer) BalanceSheetServicer {
	return &balanceSheetService{db: db, profiles: profiles}
}

// List returns all balance sheet items for the caller's profile.
func (s *balanceSheetService) List(userID string) ([]models.BalanceSheetItem, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return listByProfile[models.BalanceSheetItem](s.db, profile.ID, func(q *gorm.DB) *gorm.DB {
		return q.Order("type, title")
	})
}

// Upsert inserts or updates a balance sheet item scoped to the caller's
// profile.
func (s *balanceSheetService) Upsert(userID string, in BalanceSheetItemInput) (*models.BalanceSheetItem, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if in.ID == "" {
		item := &models.BalanceSheetItem{
			TenantOwned: models.TenantOwned{BusinessProfileID: profile.ID},
			Title:       in.Title,
			Description: in.Description,
			Amount:      in.Amount,
			Type:        in.Type,
		}
		if err := s.db.Create(item).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return item, nil
	}

	item, err := fetchOwned[models.BalanceSheetItem](s.db, in.ID, profile.ID, apperrors.ErrBalanceSheetItemNotFound)
	if err != nil {
		return nil, err
	}
	item.Title = in.Title
	item.Description = in.Description
	item.Amount = in.Amount
	item.Type = in.Type
	if err := s.db.Save(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// Delete removes a balance sheet item owned by the caller's profile.
func (s *balanceSheetService) Delete(userID, id string) (*models.BalanceSheetItem, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return deleteOwned[models.BalanceSheetItem](s.db, id, profile.ID, apperrors.ErrBalanceSheetItemNotFound)
}
