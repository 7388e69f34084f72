package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
	"bizledger/internal/services"
)

// PaymentMethodHandler serves payment method endpoints.
type PaymentMethodHandler struct {
	methodService services.PaymentMethodServicer
}

// NewPaymentMethodHandler creates a new PaymentMethodHandler.
func NewPaymentMethodHandler(methodService services.PaymentMethodServicer) *PaymentMethodHandler {
	return &PaymentMethodHandler{methodService: methodService}
}

// PaymentMethodRequest represents the payment method upsert payload. The
// details object must match the declared type.
type PaymentMethodRequest struct {
	Type     models.PaymentMethodType    `json:"type" binding:"required,payment_method_type"`
	Label    string                      `json:"label" binding:"required,max=100"`
	Details  models.PaymentMethodDetails `json:"details"`
	IsActive *bool                       `json:"is_active"`
}

func (r PaymentMethodRequest) toInput(id string) services.PaymentMethodInput {
	return services.PaymentMethodInput{
		ID:       id,
		Type:     r.Type,
		Label:    r.Label,
		Details:  r.Details,
		IsActive: r.IsActive,
	}
}

// List returns all payment methods for the caller's profile.
// @Summary     List payment methods
// @Tags        payment-methods
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.PaymentMethod "Payment methods"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /payment-methods [get]
func (h *PaymentMethodHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	methods, err := h.methodService.List(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_methods": methods})
}

// Create adds a new payment method.
// @Summary     Create payment method
// @Description Create a payment method. The details object is validated against the declared type (bank, card, wallet, other).
// @Tags        payment-methods
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PaymentMethodRequest true "Payment method fields"
// @Success     201 {object} models.PaymentMethod "Created payment method"
// @Failure     400 {object} ErrorResponse "Invalid input or mismatched details"
// @Router      /payment-methods [post]
func (h *PaymentMethodHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	method, err := h.methodService.Upsert(userID, req.toInput(""))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment_method": method})
}

// Update rewrites an existing payment method.
func (h *PaymentMethodHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	method, err := h.methodService.Upsert(userID, req.toInput(c.Param("id")))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_method": method})
}

// Delete removes a payment method.
func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	method, err := h.methodService.Delete(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_method": method})
}
