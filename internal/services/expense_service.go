package services

import (
	"gorm.io/gorm"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
)

// ExpenseCategoryInput carries the writable fields of an expense category.
type ExpenseCategoryInput struct {
	ID     string
	Name   models.CategoryName
	Status models.RecordStatus
}

// ExpenseInput carries the writable fields of an expense.
type ExpenseInput struct {
	ID                string
	ExpenseCategoryID string
	Name              string
	Frequency         models.ExpenseFrequency
	Status            models.RecordStatus
}

// expenseService handles expense categories and the expenses under them.
type expenseService struct {
	db       *gorm.DB
	profiles BusinessProfileServicer
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, profiles BusinessProfileServicer) ExpenseServicer {
	return &expenseService{db: db, profiles: profiles}
}

// ListCategories returns all expense categories for the caller's profile.
func (s *expenseService) ListCategories(userID string) ([]models.ExpenseCategory, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return listByProfile[models.ExpenseCategory](s.db, profile.ID)
}

// UpsertCategory inserts or updates an expense category. Names are
// constrained to the fixed category set and unique per profile.
func (s *expenseService) UpsertCategory(userID string, in ExpenseCategoryInput) (*models.ExpenseCategory, error) {
	if !in.Name.IsValid() {
		return nil, apperrors.ErrInvalidCategory
	}

	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.StatusActive
	}

	if in.ID == "" {
		var count int64
		if err := s.db.Model(&models.ExpenseCategory{}).
			Where("business_profile_id = ? AND name = ?", profile.ID, in.Name).
			Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return nil, apperrors.ErrDuplicateCategory
		}

		cat := &models.ExpenseCategory{
			TenantOwned: models.TenantOwned{BusinessProfileID: profile.ID},
			Name:        in.Name,
			Status:      status,
		}
		if err := s.db.Create(cat).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return cat, nil
	}

	cat, err := fetchOwned[models.ExpenseCategory](s.db, in.ID, profile.ID, apperrors.ErrCategoryNotFound)
	if err != nil {
		return nil, err
	}
	cat.Name = in.Name
	cat.Status = status
	if err := s.db.Save(cat).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return cat, nil
}

// DeleteCategory removes a category owned by the caller's profile.
func (s *expenseService) DeleteCategory(userID, id string) (*models.ExpenseCategory, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return deleteOwned[models.ExpenseCategory](s.db, id, profile.ID, apperrors.ErrCategoryNotFound)
}

// ListExpenses returns all expenses for the caller's profile with their
// categories preloaded.
func (s *expenseService) ListExpenses(userID string) ([]models.Expense, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return listByProfile[models.Expense](s.db, profile.ID, func(q *gorm.DB) *gorm.DB {
		return q.Preload("Category")
	})
}

// UpsertExpense inserts or updates an expense. The referenced category must
// belong to the caller's profile.
func (s *expenseService) UpsertExpense(userID string, in ExpenseInput) (*models.Expense, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if _, err := fetchOwned[models.ExpenseCategory](s.db, in.ExpenseCategoryID, profile.ID, apperrors.ErrCategoryNotFound); err != nil {
		return nil, err
	}

	frequency := in.Frequency
	if frequency == "" {
		frequency = models.FrequencyMonthly
	}
	status := in.Status
	if status == "" {
		status = models.StatusActive
	}

	if in.ID == "" {
		exp := &models.Expense{
			TenantOwned:       models.TenantOwned{BusinessProfileID: profile.ID},
			ExpenseCategoryID: in.ExpenseCategoryID,
			Name:              in.Name,
			Frequency:         frequency,
			Status:            status,
		}
		if err := s.db.Create(exp).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return exp, nil
	}

	exp, err := fetchOwned[models.Expense](s.db, in.ID, profile.ID, apperrors.ErrExpenseNotFound)
	if err != nil {
		return nil, err
	}
	exp.ExpenseCategoryID = in.ExpenseCategoryID
	exp.Name = in.Name
	exp.Frequency = frequency
	exp.Status = status
	if err := s.db.Save(exp).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return exp, nil
}

// DeleteExpense removes an expense owned by the caller's profile.
func (s *expenseService) DeleteExpense(userID, id string) (*models.Expense, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return deleteOwned[models.Expense](s.db, id, profile.ID, apperrors.ErrExpenseNotFound)
}
