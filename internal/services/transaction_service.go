package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
)

// TransactionInput carries the writable fields of a transaction.
type TransactionInput struct {
	ID                string
	PaymentMethodID   *string
	ExpenseCategoryID *string
	Type              models.TransactionType
	Amount            decimal.Decimal
	Date              time.Time
	Reference         string
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.TransactionType
}

// transactionService handles transactions and their paired cash flows.
// The pair is always written and removed inside one database transaction.
type transactionService struct {
	db       *gorm.DB
	profiles BusinessProfileServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, profiles BusinessProfileServicer) TransactionServicer {
	return &transactionService{db: db, profiles: profiles}
}

// List returns transactions for the caller's profile with optional
// date-range and type filters, newest first.
func (s *transactionService) List(userID string, filter TransactionFilter) ([]models.Transaction, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return listByProfile[models.Transaction](s.db, profile.ID, func(q *gorm.DB) *gorm.DB {
		if filter.FromDate != nil {
			q = q.Where("date >= ?", *filter.FromDate)
		}
		if filter.ToDate != nil {
			q = q.Where("date <= ?", *filter.ToDate)
		}
		if filter.Type != nil {
			q = q.Where("type = ?", *filter.Type)
		}
		return q.Preload("Category").Order("date DESC")
	})
}

// Upsert inserts or updates a transaction. On insert the matching cash flow
// is created in the same database transaction; on update it is kept in sync.
func (s *transactionService) Upsert(userID string, in TransactionInput) (*models.Transaction, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if in.Amount.IsNegative() || in.Amount.IsZero() {
		return nil, apperrors.ErrInvalidAmount
	}
	if err := s.validateReferences(profile.ID, in); err != nil {
		return nil, err
	}

	if in.ID == "" {
		txn := &models.Transaction{
			TenantOwned:       models.TenantOwned{BusinessProfileID: profile.ID},
			PaymentMethodID:   in.PaymentMethodID,
			ExpenseCategoryID: in.ExpenseCategoryID,
			Type:              in.Type,
			Amount:            in.Amount,
			Date:              in.Date,
			Reference:         in.Reference,
		}
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(txn).Error; err != nil {
				return err
			}
			flow := &models.CashFlow{
				TenantOwned:   models.TenantOwned{BusinessProfileID: profile.ID},
				TransactionID: txn.ID,
				Direction:     models.DirectionForType(in.Type),
				Amount:        in.Amount,
				FlowDate:      in.Date,
			}
			return tx.Create(flow).Error
		})
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return txn, nil
	}

	txn, err := fetchOwned[models.Transaction](s.db, in.ID, profile.ID, apperrors.ErrTransactionNotFound)
	if err != nil {
		return nil, err
	}
	txn.PaymentMethodID = in.PaymentMethodID
	txn.ExpenseCategoryID = in.ExpenseCategoryID
	txn.Type = in.Type
	txn.Amount = in.Amount
	txn.Date = in.Date
	txn.Reference = in.Reference

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(txn).Error; err != nil {
			return err
		}
		return tx.Model(&models.CashFlow{}).
			Where("transaction_id = ?", txn.ID).
			Updates(map[string]interface{}{
				"direction": models.DirectionForType(in.Type),
				"amount":    in.Amount,
				"flow_date": in.Date,
			}).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txn, nil
}

// Delete removes a transaction owned by the caller's profile together with
// its cash flows, atomically.
func (s *transactionService) Delete(userID, id string) (*models.Transaction, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	txn, err := fetchOwned[models.Transaction](s.db, id, profile.ID, apperrors.ErrTransactionNotFound)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", txn.ID).Delete(&models.CashFlow{}).Error; err != nil {
			return err
		}
		return tx.Delete(txn).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txn, nil
}

// ListCashFlows returns all cash flows for the caller's profile, newest first.
func (s *transactionService) ListCashFlows(userID string) ([]models.CashFlow, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return listByProfile[models.CashFlow](s.db, profile.ID, func(q *gorm.DB) *gorm.DB {
		return q.Order("flow_date DESC")
	})
}

// validateReferences checks the optional payment method and category ids
// against the caller's profile.
func (s *transactionService) validateReferences(profileID string, in TransactionInput) error {
	if in.PaymentMethodID != nil {
		if _, err := fetchOwned[models.PaymentMethod](s.db, *in.PaymentMethodID, profileID, apperrors.ErrPaymentMethodNotFound); err != nil {
			return err
		}
	}
	if in.ExpenseCategoryID != nil {
		if _, err := fetchOwned[models.ExpenseCategory](s.db, *in.ExpenseCategoryID, profileID, apperrors.ErrCategoryNotFound); err != nil {
			return err
		}
	}
	return nil
}
