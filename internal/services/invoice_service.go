package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
)

// InvoiceInput carries the writable fields of an invoice.
type InvoiceInput struct {
	ID            string
	InvoiceNumber string
	CustomerName  string
	CustomerEmail string
	Amount        decimal.Decimal
	Status        models.InvoiceStatus
	IssueDate     time.Time
	DueDate       time.Time
}

type invoiceService struct {
	db       *gorm.DB
	profiles BusinessProfileServicer
}

// NewInvoiceService creates a new InvoiceServicer.
func NewInvoiceService(db *gorm.DB, profiles BusinessProfileServicer) InvoiceServicer {
	return &invoiceService{db: db, profiles: profiles}
}

// List returns all invoices for the caller's profile, newest first.
func (s *invoiceService) List(userID string) ([]models.Invoice, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return listByProfile[models.Invoice](s.db, profile.ID, func(q *gorm.DB) *gorm.DB {
		return q.Order("issue_date DESC")
	})
}

// Upsert inserts or updates an invoice scoped to the caller's profile.
func (s *invoiceService) Upsert(userID string, in InvoiceInput) (*models.Invoice, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.InvoiceStatusDraft
	}

	if in.ID == "" {
		invoice := &models.Invoice{
			TenantOwned:   models.TenantOwned{BusinessProfileID: profile.ID},
			InvoiceNumber: in.InvoiceNumber,
			CustomerName:  in.CustomerName,
			CustomerEmail: in.CustomerEmail,
			Amount:        in.Amount,
			Status:        status,
			IssueDate:     in.IssueDate,
			DueDate:       in.DueDate,
		}
		if err := s.db.Create(invoice).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return invoice, nil
	}

	invoice, err := fetchOwned[models.Invoice](s.db, in.ID, profile.ID, apperrors.ErrInvoiceNotFound)
	if err != nil {
		return nil, err
	}
	invoice.InvoiceNumber = in.InvoiceNumber
	invoice.CustomerName = in.CustomerName
	invoice.CustomerEmail = in.CustomerEmail
	invoice.Amount = in.Amount
	invoice.Status = status
	invoice.IssueDate = in.IssueDate
	invoice.DueDate = in.DueDate
	if err := s.db.Save(invoice).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return invoice, nil
}

// Delete removes an invoice owned by the caller's profile.
func (s *invoiceService) Delete(userID, id string) (*models.Invoice, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return deleteOwned[models.Invoice](s.db, id, profile.ID, apperrors.ErrInvoiceNotFound)
}
