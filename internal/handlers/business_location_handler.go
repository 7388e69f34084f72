package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/services"
)

// BusinessLocationHandler serves business location endpoints.
type BusinessLocationHandler struct {
	locationService services.BusinessLocationServicer
}

// NewBusinessLocationHandler creates a new BusinessLocationHandler.
func NewBusinessLocationHandler(locationService services.BusinessLocationServicer) *BusinessLocationHandler {
	return &BusinessLocationHandler{locationService: locationService}
}

// BusinessLocationRequest represents the location upsert payload.
type BusinessLocationRequest struct {
	Name           string   `json:"name" binding:"required,max=200"`
	AddressLine    string   `json:"address_line" binding:"omitempty,max=255"`
	City           string   `json:"city" binding:"omitempty,max=100"`
	State          string   `json:"state" binding:"omitempty,max=100"`
	PostalCode     string   `json:"postal_code" binding:"omitempty,max=20"`
	Country        string   `json:"country" binding:"omitempty,max=100"`
	Latitude       *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude      *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	IsHeadquarters bool     `json:"is_headquarters"`
}

func (r BusinessLocationRequest) toInput(id string) services.BusinessLocationInput {
	return services.BusinessLocationInput{
		ID:             id,
		Name:           r.Name,
		AddressLine:    r.AddressLine,
		City:           r.City,
		State:          r.State,
		PostalCode:     r.PostalCode,
		Country:        r.Country,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		IsHeadquarters: r.IsHeadquarters,
	}
}

// List returns all locations for the caller's profile.
func (h *BusinessLocationHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	locations, err := h.locationService.List(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// Create adds a new location.
func (h *BusinessLocationHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BusinessLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	location, err := h.locationService.Upsert(userID, req.toInput(""))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"location": location})
}

// Update rewrites an existing location.
func (h *BusinessLocationHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BusinessLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	location, err := h.locationService.Upsert(userID, req.toInput(c.Param("id")))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": location})
}

// Delete removes a location.
func (h *BusinessLocationHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	location, err := h.locationService.Delete(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": location})
}

// Deactivate marks a location inactive without deleting it.
func (h *BusinessLocationHandler) Deactivate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	location, err := h.locationService.Deactivate(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": location})
}

// Reactivate marks a previously deactivated location active again.
func (h *BusinessLocationHandler) Reactivate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	location, err := h.locationService.Reactivate(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": location})
}
