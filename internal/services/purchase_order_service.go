package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
)

// PurchaseOrderInput carries the writable fields of a purchase order.
type PurchaseOrderInput struct {
	ID               string
	SupplierID       string
	OrderNumber      string
	TotalAmount      decimal.Decimal
	Status           models.PurchaseOrderStatus
	OrderDate        time.Time
	ExpectedDelivery *time.Time
}

type purchaseOrderService struct {
	db       *gorm.DB
	profiles BusinessProfileServicer
}

// NewPurchaseOrderService creates a new PurchaseOrderServicer.
func NewPurchaseOrderService(db *gorm.DB, profiles BusinessProfileServicer) PurchaseOrderServicer {
	return &purchaseOrderService{db: db, profiles: profiles}
}

// List returns all purchase orders for the caller's profile with their
// suppliers preloaded for display, newest first.
func (s *purchaseOrderService) List(userID string) ([]models.PurchaseOrder, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return listByProfile[models.PurchaseOrder](s.db, profile.ID, func(q *gorm.DB) *gorm.DB {
		return q.Preload("Supplier").Order("order_date DESC")
	})
}

// Upsert inserts or updates a purchase order. The referenced supplier must
// belong to the caller's profile.
func (s *purchaseOrderService) Upsert(userID string, in PurchaseOrderInput) (*models.PurchaseOrder, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if _, err := fetchOwned[models.Supplier](s.db, in.SupplierID, profile.ID, apperrors.ErrSupplierNotFound); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.PurchaseOrderPending
	}

	if in.ID == "" {
		order := &models.PurchaseOrder{
			TenantOwned:      models.TenantOwned{BusinessProfileID: profile.ID},
			SupplierID:       in.SupplierID,
			OrderNumber:      in.OrderNumber,
			TotalAmount:      in.TotalAmount,
			Status:           status,
			OrderDate:        in.OrderDate,
			ExpectedDelivery: in.ExpectedDelivery,
		}
		if err := s.db.Create(order).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return order, nil
	}

	order, err := fetchOwned[models.PurchaseOrder](s.db, in.ID, profile.ID, apperrors.ErrPurchaseOrderNotFound)
	if err != nil {
		return nil, err
	}
	order.SupplierID = in.SupplierID
	order.OrderNumber = in.OrderNumber
	order.TotalAmount = in.TotalAmount
	order.Status = status
	order.OrderDate = in.OrderDate
	order.ExpectedDelivery = in.ExpectedDelivery
	if err := s.db.Save(order).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return order, nil
}

// Delete removes a purchase order owned by the caller's profile.
func (s *purchaseOrderService) Delete(userID, id string) (*models.PurchaseOrder, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return deleteOwned[models.PurchaseOrder](s.db, id, profile.ID, apperrors.ErrPurchaseOrderNotFound)
}
