package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/services"
)

// InventoryHandler serves inventory endpoints.
type InventoryHandler struct {
	inventoryService services.InventoryServicer
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventoryService services.InventoryServicer) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// InventoryRequest represents the inventory upsert payload.
type InventoryRequest struct {
	ProductID string          `json:"product_id" binding:"required,uuid"`
	Quantity  int             `json:"quantity" binding:"min=0"`
	MinStock  int             `json:"min_stock" binding:"min=0"`
	MaxStock  int             `json:"max_stock" binding:"min=0"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Location  string          `json:"location" binding:"omitempty,max=200"`
}

func (r InventoryRequest) toInput(id string) services.InventoryInput {
	return services.InventoryInput{
		ID:        id,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		MinStock:  r.MinStock,
		MaxStock:  r.MaxStock,
		UnitCost:  r.UnitCost,
		Location:  r.Location,
	}
}

// List returns all inventory records for the caller's profile.
func (h *InventoryHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	records, err := h.inventoryService.List(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"inventory": records})
}

// Create adds an inventory record for one of the caller's products.
func (h *InventoryHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.inventoryService.Upsert(userID, req.toInput(""))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"inventory": record})
}

// Update rewrites an existing inventory record.
func (h *InventoryHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.inventoryService.Upsert(userID, req.toInput(c.Param("id")))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"inventory": record})
}

// Delete removes an inventory record.
func (h *InventoryHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.inventoryService.Delete(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"inventory": record})
}
