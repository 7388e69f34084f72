package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
	"bizledger/internal/services"
)

type mockBusinessProfileService struct {
	getOrCreateFn       func(userID string) (*models.BusinessProfile, error)
	upsertFn            func(userID string, in services.BusinessProfileInput) (*models.BusinessProfile, error)
	deleteFn            func(userID string) (*models.BusinessProfile, error)
	getInformationFn    func(userID string) (*models.BusinessInformation, error)
	upsertInformationFn func(userID string, in services.BusinessInformationInput) (*models.BusinessInformation, error)
	deleteInformationFn func(userID string) (*models.BusinessInformation, error)
}

func (m *mockBusinessProfileService) GetOrCreate(userID string) (*models.BusinessProfile, error) {
	if m.getOrCreateFn != nil {
		return m.getOrCreateFn(userID)
	}
	return &models.BusinessProfile{}, nil
}

func (m *mockBusinessProfileService) Upsert(userID string, in services.BusinessProfileInput) (*models.BusinessProfile, error) {
	if m.upsertFn != nil {
		return m.upsertFn(userID, in)
	}
	return &models.BusinessProfile{}, nil
}

func (m *mockBusinessProfileService) Delete(userID string) (*models.BusinessProfile, error) {
	if m.deleteFn != nil {
		return m.deleteFn(userID)
	}
	return &models.BusinessProfile{}, nil
}

func (m *mockBusinessProfileService) GetInformation(userID string) (*models.BusinessInformation, error) {
	if m.getInformationFn != nil {
		return m.getInformationFn(userID)
	}
	return &models.BusinessInformation{}, nil
}

func (m *mockBusinessProfileService) UpsertInformation(userID string, in services.BusinessInformationInput) (*models.BusinessInformation, error) {
	if m.upsertInformationFn != nil {
		return m.upsertInformationFn(userID, in)
	}
	return &models.BusinessInformation{}, nil
}

func (m *mockBusinessProfileService) DeleteInformation(userID string) (*models.BusinessInformation, error) {
	if m.deleteInformationFn != nil {
		return m.deleteInformationFn(userID)
	}
	return &models.BusinessInformation{}, nil
}

var _ services.BusinessProfileServicer = (*mockBusinessProfileService)(nil)

func setupProfileRouter(handler *BusinessProfileHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/business-profile", handler.GetProfile)
	auth.PUT("/business-profile", handler.UpsertProfile)
	auth.DELETE("/business-profile", handler.DeleteProfile)
	auth.GET("/business-information", handler.GetInformation)
	auth.PUT("/business-information", handler.UpsertInformation)
	auth.DELETE("/business-information", handler.DeleteInformation)
	return r
}

func TestBusinessProfileHandler_GetProfile(t *testing.T) {
	t.Run("returns the lazily created profile", func(t *testing.T) {
		profileSvc := &mockBusinessProfileService{
			getOrCreateFn: func(userID string) (*models.BusinessProfile, error) {
				return &models.BusinessProfile{UserID: userID, IsActive: true}, nil
			},
		}
		handler := NewBusinessProfileHandler(profileSvc)
		r := setupProfileRouter(handler)

		rec := doRequest(r, "GET", "/business-profile", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		profile := parseJSON(t, rec)["profile"].(map[string]interface{})
		if profile["user_id"] != testUserID {
			t.Errorf("expected user_id %s, got %v", testUserID, profile["user_id"])
		}
	})
}

func TestBusinessProfileHandler_UpsertProfile(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		profileSvc := &mockBusinessProfileService{
			upsertFn: func(_ string, in services.BusinessProfileInput) (*models.BusinessProfile, error) {
				return &models.BusinessProfile{CompanyName: in.CompanyName, BrandColor: in.BrandColor}, nil
			},
		}
		handler := NewBusinessProfileHandler(profileSvc)
		r := setupProfileRouter(handler)

		rec := doRequest(r, "PUT", "/business-profile",
			`{"company_name":"Acme Coffee","brand_color":"#6f4e37"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		profile := parseJSON(t, rec)["profile"].(map[string]interface{})
		if profile["company_name"] != "Acme Coffee" {
			t.Errorf("expected company_name Acme Coffee, got %v", profile["company_name"])
		}
	})

	t.Run("returns 400 on malformed brand color", func(t *testing.T) {
		handler := NewBusinessProfileHandler(&mockBusinessProfileService{})
		r := setupProfileRouter(handler)

		rec := doRequest(r, "PUT", "/business-profile", `{"brand_color":"brown"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestBusinessProfileHandler_DeleteProfile(t *testing.T) {
	t.Run("returns 404 when no profile exists", func(t *testing.T) {
		profileSvc := &mockBusinessProfileService{
			deleteFn: func(string) (*models.BusinessProfile, error) {
				return nil, apperrors.ErrProfileNotFound
			},
		}
		handler := NewBusinessProfileHandler(profileSvc)
		r := setupProfileRouter(handler)

		rec := doRequest(r, "DELETE", "/business-profile", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "PROFILE_NOT_FOUND")
	})
}

func TestBusinessProfileHandler_Information(t *testing.T) {
	t.Run("get returns defaults", func(t *testing.T) {
		profileSvc := &mockBusinessProfileService{
			getInformationFn: func(string) (*models.BusinessInformation, error) {
				return &models.BusinessInformation{Currency: "USD", Locale: "en-US", FiscalYearStartMonth: 1}, nil
			},
		}
		handler := NewBusinessProfileHandler(profileSvc)
		r := setupProfileRouter(handler)

		rec := doRequest(r, "GET", "/business-information", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		info := parseJSON(t, rec)["information"].(map[string]interface{})
		if info["currency"] != "USD" {
			t.Errorf("expected currency USD, got %v", info["currency"])
		}
	})

	t.Run("upsert rejects unknown currency code", func(t *testing.T) {
		handler := NewBusinessProfileHandler(&mockBusinessProfileService{})
		r := setupProfileRouter(handler)

		rec := doRequest(r, "PUT", "/business-information", `{"currency":"DOLLARS"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("upsert rejects fiscal month out of range", func(t *testing.T) {
		handler := NewBusinessProfileHandler(&mockBusinessProfileService{})
		r := setupProfileRouter(handler)

		rec := doRequest(r, "PUT", "/business-information", `{"fiscal_year_start_month":13}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("upsert forwards fields", func(t *testing.T) {
		profileSvc := &mockBusinessProfileService{
			upsertInformationFn: func(_ string, in services.BusinessInformationInput) (*models.BusinessInformation, error) {
				return &models.BusinessInformation{Currency: in.Currency, TaxID: in.TaxID}, nil
			},
		}
		handler := NewBusinessProfileHandler(profileSvc)
		r := setupProfileRouter(handler)

		rec := doRequest(r, "PUT", "/business-information",
			`{"currency":"EUR","tax_id":"DE123456789"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		info := parseJSON(t, rec)["information"].(map[string]interface{})
		if info["currency"] != "EUR" {
			t.Errorf("expected currency EUR, got %v", info["currency"])
		}
	})
}
