package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
	"bizledger/internal/services"
)

// BalanceSheetHandler serves balance sheet item endpoints.
type BalanceSheetHandler struct {
	sheetService services.BalanceSheetServicer
}

// NewBalanceSheetHandler creates a new BalanceSheetHandler.
func NewBalanceSheetHandler(sheetService services.BalanceSheetServicer) *BalanceSheetHandler {
	return &BalanceSheetHandler{sheetService: sheetService}
}

// BalanceSheetItemRequest represents the balance sheet item upsert payload.
type BalanceSheetItemRequest struct {
	Title       string                  `json:"title" binding:"required,max=200"`
	Description string                  `json:"description" binding:"omitempty,max=1000"`
	Amount      decimal.Decimal         `json:"amount" binding:"required"`
	Type        models.BalanceSheetType `json:"type" binding:"required,balance_sheet_type"`
}

func (r BalanceSheetItemRequest) toInput(id string) services.BalanceSheetItemInput {
	return services.BalanceSheetItemInput{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Amount:      r.Amount,
		Type:        r.Type,
	}
}

// List returns all balance sheet items for the caller's profile.
func (h *BalanceSheetHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	items, err := h.sheetService.List(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Create adds a new balance sheet item.
func (h *BalanceSheetHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BalanceSheetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.sheetService.Upsert(userID, req.toInput(""))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// Update rewrites an existing balance sheet item.
func (h *BalanceSheetHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BalanceSheetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.sheetService.Upsert(userID, req.toInput(c.Param("id")))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// Delete removes a balance sheet item.
func (h *BalanceSheetHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	item, err := h.sheetService.Delete(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}
