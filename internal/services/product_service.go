package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
)

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	ID       string
	Name     string
	Type     models.ProductType
	Price    decimal.Decimal
	Category string
	Status   models.RecordStatus
}

type productService struct {
	db       *gorm.DB
	profiles BusinessProfileServicer
}

// NewProductService creates a new ProductServicer.
func NewProductService(db *gorm.DB, profiles BusinessProfileServicer) ProductServicer {
	return &productService{db: db, profiles: profiles}
}

// List returns all products for the caller's profile.
func (s *productService) List(userID string) ([]models.Product, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return listByProfile[models.Product](s.db, profile.ID, func(q *gorm.DB) *gorm.DB {
		return q.Order("name")
	})
}

// Upsert inserts or updates a product scoped to the caller's profile.
func (s *productService) Upsert(userID string, in ProductInput) (*models.Product, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	ptype := in.Type
	if ptype == "" {
		ptype = models.ProductTypePhysical
	}
	status := in.Status
	if status == "" {
		status = models.StatusActive
	}

	if in.ID == "" {
		product := &models.Product{
			TenantOwned: models.TenantOwned{BusinessProfileID: profile.ID},
			Name:        in.Name,
			Type:        ptype,
			Price:       in.Price,
			Category:    in.Category,
			Status:      status,
		}
		if err := s.db.Create(product).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return product, nil
	}

	product, err := fetchOwned[models.Product](s.db, in.ID, profile.ID, apperrors.ErrProductNotFound)
	if err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.Type = ptype
	product.Price = in.Price
	product.Category = in.Category
	product.Status = status
	if err := s.db.Save(product).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return product, nil
}

// Delete removes a product owned by the caller's profile.
func (s *productService) Delete(userID, id string) (*models.Product, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return deleteOwned[models.Product](s.db, id, profile.ID, apperrors.ErrProductNotFound)
}
