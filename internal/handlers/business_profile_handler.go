package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/services"
)

// BusinessProfileHandler serves the tenant root profile and its 1:1
// business information.
type BusinessProfileHandler struct {
	profileService services.BusinessProfileServicer
}

// NewBusinessProfileHandler creates a new BusinessProfileHandler.
func NewBusinessProfileHandler(profileService services.BusinessProfileServicer) *BusinessProfileHandler {
	return &BusinessProfileHandler{profileService: profileService}
}

// BusinessProfileRequest represents the upsert payload for a business profile.
type BusinessProfileRequest struct {
	CompanyName string `json:"company_name" binding:"omitempty,max=200"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"omitempty,max=50"`
	Website     string `json:"website" binding:"omitempty,max=255"`
	AddressLine string `json:"address_line" binding:"omitempty,max=255"`
	City        string `json:"city" binding:"omitempty,max=100"`
	State       string `json:"state" binding:"omitempty,max=100"`
	PostalCode  string `json:"postal_code" binding:"omitempty,max=20"`
	Country     string `json:"country" binding:"omitempty,max=100"`
	LogoURL     string `json:"logo_url" binding:"omitempty,max=500"`
	BrandColor  string `json:"brand_color" binding:"omitempty,hex_color"`
	IsActive    *bool  `json:"is_active"`
}

// BusinessInformationRequest represents the upsert payload for business information.
type BusinessInformationRequest struct {
	TaxID                string `json:"tax_id" binding:"omitempty,max=100"`
	RegistrationNumber   string `json:"registration_number" binding:"omitempty,max=100"`
	Currency             string `json:"currency" binding:"omitempty,iso4217"`
	Locale               string `json:"locale" binding:"omitempty,max=20"`
	DateFormat           string `json:"date_format" binding:"omitempty,max=20"`
	FiscalYearStartMonth int    `json:"fiscal_year_start_month" binding:"omitempty,min=1,max=12"`
	ComplianceNotes      string `json:"compliance_notes"`
}

// GetProfile returns the caller's business profile, creating it on first access.
// @Summary     Get business profile
// @Description Get the caller's business profile, creating a minimal one if absent
// @Tags        business-profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.BusinessProfile "Business profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /business-profile [get]
func (h *BusinessProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profileService.GetOrCreate(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpsertProfile writes the caller's business profile fields.
// @Summary     Upsert business profile
// @Tags        business-profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BusinessProfileRequest true "Profile fields"
// @Success     200 {object} models.BusinessProfile "Written profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /business-profile [put]
func (h *BusinessProfileHandler) UpsertProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BusinessProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.profileService.Upsert(userID, services.BusinessProfileInput{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Phone:       req.Phone,
		Website:     req.Website,
		AddressLine: req.AddressLine,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		LogoURL:     req.LogoURL,
		BrandColor:  req.BrandColor,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// DeleteProfile removes the caller's business profile.
// @Summary     Delete business profile
// @Tags        business-profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.BusinessProfile "Deleted profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Router      /business-profile [delete]
func (h *BusinessProfileHandler) DeleteProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profileService.Delete(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// GetInformation returns the caller's business information, creating it on
// first access.
func (h *BusinessProfileHandler) GetInformation(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	info, err := h.profileService.GetInformation(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"information": info})
}

// UpsertInformation writes the caller's business information fields.
func (h *BusinessProfileHandler) UpsertInformation(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BusinessInformationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	info, err := h.profileService.UpsertInformation(userID, services.BusinessInformationInput{
		TaxID:                req.TaxID,
		RegistrationNumber:   req.RegistrationNumber,
		Currency:             req.Currency,
		Locale:               req.Locale,
		DateFormat:           req.DateFormat,
		FiscalYearStartMonth: req.FiscalYearStartMonth,
		ComplianceNotes:      req.ComplianceNotes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"information": info})
}

// DeleteInformation removes the caller's business information row.
func (h *BusinessProfileHandler) DeleteInformation(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	info, err := h.profileService.DeleteInformation(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"information": info})
}
