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

// TransactionHandler serves transaction and cash flow endpoints.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest represents the transaction upsert payload.
type TransactionRequest struct {
	PaymentMethodID   *string                `json:"payment_method_id" binding:"omitempty,uuid"`
	ExpenseCategoryID *string                `json:"expense_category_id" binding:"omitempty,uuid"`
	Type              models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount            decimal.Decimal        `json:"amount" binding:"required"`
	Date              time.Time              `json:"date" binding:"required"`
	Reference         string                 `json:"reference" binding:"omitempty,max=255"`
}

func (r TransactionRequest) toInput(id string) services.TransactionInput {
	return services.TransactionInput{
		ID:                id,
		PaymentMethodID:   r.PaymentMethodID,
		ExpenseCategoryID: r.ExpenseCategoryID,
		Type:              r.Type,
		Amount:            r.Amount,
		Date:              r.Date,
		Reference:         r.Reference,
	}
}

// List returns the caller's transactions, optionally filtered by date range
// and type.
// @Summary     List transactions
// @Description List transactions for the caller's profile, newest first. Supports from/to date and type filters.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "Start date (YYYY-MM-DD or RFC 3339)"
// @Param       to   query string false "End date (YYYY-MM-DD or RFC 3339)"
// @Param       type query string false "Transaction type (PAYMENT or PAYOUT)"
// @Success     200 {array} models.Transaction "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter := services.TransactionFilter{FromDate: from, ToDate: to}
	if v := c.Query("type"); v != "" {
		t := models.TransactionType(v)
		if t != models.TransactionTypePayment && t != models.TransactionTypePayout {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid transaction type"))
			return
		}
		filter.Type = &t
	}

	transactions, err := h.transactionService.List(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// Create records a new transaction and its paired cash flow.
// @Summary     Create transaction
// @Description Record a transaction; a cash flow entry with the matching direction is written atomically with it.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransactionRequest true "Transaction fields"
// @Success     201 {object} models.Transaction "Created transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Referenced record belongs to another profile"
// @Router      /transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.Upsert(userID, req.toInput(""))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// Update rewrites an existing transaction and re-syncs its cash flow.
// @Summary     Update transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Transaction ID"
// @Param       request body TransactionRequest true "Transaction fields"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     403 {object} ErrorResponse "Record belongs to another profile"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.Upsert(userID, req.toInput(c.Param("id")))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// Delete removes a transaction together with its cash flow entries.
// @Summary     Delete transaction
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Deleted transaction"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.Delete(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// ListCashFlows returns the caller's cash flow entries, newest first.
func (h *TransactionHandler) ListCashFlows(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cashFlows, err := h.transactionService.ListCashFlows(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cash_flows": cashFlows})
}
