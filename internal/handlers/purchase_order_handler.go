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

// PurchaseOrderHandler serves purchase order endpoints.
type PurchaseOrderHandler struct {
	orderService services.PurchaseOrderServicer
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler.
func NewPurchaseOrderHandler(orderService services.PurchaseOrderServicer) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{orderService: orderService}
}

// PurchaseOrderRequest represents the purchase order upsert payload.
type PurchaseOrderRequest struct {
	SupplierID       string                     `json:"supplier_id" binding:"required,uuid"`
	OrderNumber      string                     `json:"order_number" binding:"required,max=100"`
	TotalAmount      decimal.Decimal            `json:"total_amount" binding:"required"`
	Status           models.PurchaseOrderStatus `json:"status" binding:"omitempty,purchase_order_status"`
	OrderDate        time.Time                  `json:"order_date" binding:"required"`
	ExpectedDelivery *time.Time                 `json:"expected_delivery"`
}

func (r PurchaseOrderRequest) toInput(id string) services.PurchaseOrderInput {
	return services.PurchaseOrderInput{
		ID:               id,
		SupplierID:       r.SupplierID,
		OrderNumber:      r.OrderNumber,
		TotalAmount:      r.TotalAmount,
		Status:           r.Status,
		OrderDate:        r.OrderDate,
		ExpectedDelivery: r.ExpectedDelivery,
	}
}

// List returns all purchase orders for the caller's profile.
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	orders, err := h.orderService.List(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchase_orders": orders})
}

// Create adds a purchase order against one of the caller's suppliers.
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	order, err := h.orderService.Upsert(userID, req.toInput(""))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"purchase_order": order})
}

// Update rewrites an existing purchase order.
func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	order, err := h.orderService.Upsert(userID, req.toInput(c.Param("id")))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchase_order": order})
}

// Delete removes a purchase order.
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	order, err := h.orderService.Delete(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchase_order": order})
}
