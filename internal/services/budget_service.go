package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
)

// BudgetInput carries the writable fields of a budget.
type BudgetInput struct {
	ID              string
	Category        models.CategoryName
	AllocatedAmount decimal.Decimal
	SpentAmount     decimal.Decimal
	PeriodStart     time.Time
	PeriodEnd       time.Time
}

type budgetService struct {
	db       *gorm.DB
	profiles BusinessProfileServicer
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, profiles BusinessProfileServicer) BudgetServicer {
	return &budgetService{db: db, profiles: profiles}
}

// List returns all budgets for the caller's profile.
func (s *budgetService) List(userID string) ([]models.Budget, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return listByProfile[models.Budget](s.db, profile.ID, func(q *gorm.DB) *gorm.DB {
		return q.Order("period_start DESC")
	})
}

// Upsert inserts or updates a budget scoped to the caller's profile.
func (s *budgetService) Upsert(userID string, in BudgetInput) (*models.Budget, error) {
	if !in.Category.IsValid() {
		return nil, apperrors.ErrInvalidCategory
	}

	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if in.ID == "" {
		budget := &models.Budget{
			TenantOwned:     models.TenantOwned{BusinessProfileID: profile.ID},
			Category:        in.Category,
			AllocatedAmount: in.AllocatedAmount,
			SpentAmount:     in.SpentAmount,
			PeriodStart:     in.PeriodStart,
			PeriodEnd:       in.PeriodEnd,
		}
		if err := s.db.Create(budget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return budget, nil
	}

	budget, err := fetchOwned[models.Budget](s.db, in.ID, profile.ID, apperrors.ErrBudgetNotFound)
	if err != nil {
		return nil, err
	}
	budget.Category = in.Category
	budget.AllocatedAmount = in.AllocatedAmount
	budget.SpentAmount = in.SpentAmount
	budget.PeriodStart = in.PeriodStart
	budget.PeriodEnd = in.PeriodEnd
	if err := s.db.Save(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// Delete removes a budget owned by the caller's profile.
func (s *budgetService) Delete(userID, id string) (*models.Budget, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return deleteOwned[models.Budget](s.db, id, profile.ID, apperrors.ErrBudgetNotFound)
}
