package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/services"
)

// BusinessContactHandler serves business contact endpoints.
type BusinessContactHandler struct {
	contactService services.BusinessContactServicer
}

// NewBusinessContactHandler creates a new BusinessContactHandler.
func NewBusinessContactHandler(contactService services.BusinessContactServicer) *BusinessContactHandler {
	return &BusinessContactHandler{contactService: contactService}
}

// BusinessContactRequest represents the contact upsert payload.
type BusinessContactRequest struct {
	Name      string `json:"name" binding:"required,max=200"`
	Role      string `json:"role" binding:"omitempty,max=100"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"omitempty,max=50"`
	IsPrimary bool   `json:"is_primary"`
	IsActive  *bool  `json:"is_active"`
}

func (r BusinessContactRequest) toInput(id string) services.BusinessContactInput {
	return services.BusinessContactInput{
		ID:        id,
		Name:      r.Name,
		Role:      r.Role,
		Email:     r.Email,
		Phone:     r.Phone,
		IsPrimary: r.IsPrimary,
		IsActive:  r.IsActive,
	}
}

// List returns all contacts for the caller's profile.
func (h *BusinessContactHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	contacts, err := h.contactService.List(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

// Create adds a new contact.
func (h *BusinessContactHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BusinessContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	contact, err := h.contactService.Upsert(userID, req.toInput(""))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"contact": contact})
}

// Update rewrites an existing contact.
func (h *BusinessContactHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BusinessContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	contact, err := h.contactService.Upsert(userID, req.toInput(c.Param("id")))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contact": contact})
}

// Delete removes a contact.
func (h *BusinessContactHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	contact, err := h.contactService.Delete(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contact": contact})
}
