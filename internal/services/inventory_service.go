package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
)

// InventoryInput carries the writable fields of an inventory record.
type InventoryInput struct {
	ID        string
	ProductID string
	Quantity  int
	MinStock  int
	MaxStock  int
	UnitCost  decimal.Decimal
	Location  string
}

type inventoryService struct {
	db       *gorm.DB
	profiles BusinessProfileServicer
}

// NewInventoryService creates a new InventoryServicer.
func NewInventoryService(db *gorm.DB, profiles BusinessProfileServicer) InventoryServicer {
	return &inventoryService{db: db, profiles: profiles}
}

// List returns all inventory records for the caller's profile with their
// products preloaded for display.
func (s *inventoryService) List(userID string) ([]models.Inventory, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return listByProfile[models.Inventory](s.db, profile.ID, func(q *gorm.DB) *gorm.DB {
		return q.Preload("Product")
	})
}

// Upsert inserts or updates an inventory record. The referenced product must
// belong to the caller's profile, and only one record may exist per product.
func (s *inventoryService) Upsert(userID string, in InventoryInput) (*models.Inventory, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if _, err := fetchOwned[models.Product](s.db, in.ProductID, profile.ID, apperrors.ErrProductNotFound); err != nil {
		return nil, err
	}

	if in.ID == "" {
		var count int64
		if err := s.db.Model(&models.Inventory{}).
			Where("business_profile_id = ? AND product_id = ?", profile.ID, in.ProductID).
			Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return nil, apperrors.ErrDuplicateInventory
		}

		inv := &models.Inventory{
			TenantOwned: models.TenantOwned{BusinessProfileID: profile.ID},
			ProductID:   in.ProductID,
			Quantity:    in.Quantity,
			MinStock:    in.MinStock,
			MaxStock:    in.MaxStock,
			UnitCost:    in.UnitCost,
			Location:    in.Location,
		}
		if err := s.db.Create(inv).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return inv, nil
	}

	inv, err := fetchOwned[models.Inventory](s.db, in.ID, profile.ID, apperrors.ErrInventoryNotFound)
	if err != nil {
		return nil, err
	}
	inv.ProductID = in.ProductID
	inv.Quantity = in.Quantity
	inv.MinStock = in.MinStock
	inv.MaxStock = in.MaxStock
	inv.UnitCost = in.UnitCost
	inv.Location = in.Location
	if err := s.db.Save(inv).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return inv, nil
}

// Delete removes an inventory record owned by the caller's profile.
func (s *inventoryService) Delete(userID, id string) (*models.Inventory, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return deleteOwned[models.Inventory](s.db, id, profile.ID, apperrors.ErrInventoryNotFound)
}
