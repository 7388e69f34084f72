package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
	"bizledger/internal/services"
)

// InvoiceHandler serves invoice endpoints.
type InvoiceHandler struct {
	invoiceService services.InvoiceServicer
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService services.InvoiceServicer) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// InvoiceRequest represents the invoice upsert payload.
type InvoiceRequest struct {
	InvoiceNumber string               `json:"invoice_number" binding:"required,max=100"`
	CustomerName  string               `json:"customer_name" binding:"required,max=200"`
	CustomerEmail string               `json:"customer_email" binding:"omitempty,email"`
	Amount        decimal.Decimal      `json:"amount" binding:"required"`
	Status        models.InvoiceStatus `json:"status" binding:"omitempty,invoice_status"`
	IssueDate     time.Time            `json:"issue_date" binding:"required"`
	DueDate       time.Time            `json:"due_date" binding:"required"`
}

func (r InvoiceRequest) toInput(id string) services.InvoiceInput {
	return services.InvoiceInput{
		ID:            id,
		InvoiceNumber: r.InvoiceNumber,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Amount:        r.Amount,
		Status:        r.Status,
		IssueDate:     r.IssueDate,
		DueDate:       r.DueDate,
	}
}

// List returns all invoices for the caller's profile.
// @Summary     List invoices
// @Tags        invoices
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Invoice "Invoices"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	invoices, err := h.invoiceService.List(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// Create adds a new invoice.
// @Summary     Create invoice
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body InvoiceRequest true "Invoice fields"
// @Success     201 {object} models.Invoice "Created invoice"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	invoice, err := h.invoiceService.Upsert(userID, req.toInput(""))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"invoice": invoice})
}

// Update rewrites an existing invoice.
func (h *InvoiceHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	invoice, err := h.invoiceService.Upsert(userID, req.toInput(c.Param("id")))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// Delete removes an invoice.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	invoice, err := h.invoiceService.Delete(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}
