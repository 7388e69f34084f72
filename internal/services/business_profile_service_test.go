package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"bizledger/internal/models"
	"bizledger/internal/testutil"
)

func TestGetOrCreateProfile(t *testing.T) {
	t.Run("creates_on_first_access", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBusinessProfileService(db)
		user := testutil.CreateTestUser(t, db)

		profile, err := svc.GetOrCreate(user.ID)
		testutil.AssertNoError(t, err)

		if profile.ID == "" {
			t.Fatal("expected non-empty profile ID")
		}
		if profile.UserID != user.ID {
			t.Errorf("expected user ID %s, got %s", user.ID, profile.UserID)
		}
		if !profile.IsActive {
			t.Error("expected new profile to be active")
		}
	})

	t.Run("returns_same_profile_on_repeat", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBusinessProfileService(db)
		user := testutil.CreateTestUser(t, db)

		first, err := svc.GetOrCreate(user.ID)
		testutil.AssertNoError(t, err)
		second, err := svc.GetOrCreate(user.ID)
		testutil.AssertNoError(t, err)

		if first.ID != second.ID {
			t.Errorf("expected same profile, got %s and %s", first.ID, second.ID)
		}

		var count int64
		db.Model(&models.BusinessProfile{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected exactly one profile row, got %d", count)
		}
	})
}

func TestUpsertProfile(t *testing.T) {
	t.Run("writes_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBusinessProfileService(db)
		user := testutil.CreateTestUser(t, db)

		profile, err := svc.Upsert(user.ID, BusinessProfileInput{
			CompanyName: "Acme",
			City:        "Portland",
			BrandColor:  "#112233",
		})
		testutil.AssertNoError(t, err)

		if profile.CompanyName != "Acme" {
			t.Errorf("expected company name Acme, got %q", profile.CompanyName)
		}
		if profile.City != "Portland" {
			t.Errorf("expected city Portland, got %q", profile.City)
		}
	})

	t.Run("second_upsert_overwrites", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBusinessProfileService(db)
		user := testutil.CreateTestUser(t, db)

		first, err := svc.Upsert(user.ID, BusinessProfileInput{CompanyName: "Before"})
		testutil.AssertNoError(t, err)
		second, err := svc.Upsert(user.ID, BusinessProfileInput{CompanyName: "After"})
		testutil.AssertNoError(t, err)

		if first.ID != second.ID {
			t.Errorf("expected upsert to reuse profile %s, got %s", first.ID, second.ID)
		}
		if second.CompanyName != "After" {
			t.Errorf("expected company name After, got %q", second.CompanyName)
		}
	})
}

func TestDeleteProfile(t *testing.T) {
	t.Run("not_found_without_profile", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBusinessProfileService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.Delete(user.ID)
		testutil.AssertAppError(t, err, "PROFILE_NOT_FOUND")
	})

	t.Run("removes_profile", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBusinessProfileService(db)
		user := testutil.CreateTestUser(t, db)

		created, err := svc.GetOrCreate(user.ID)
		testutil.AssertNoError(t, err)

		deleted, err := svc.Delete(user.ID)
		testutil.AssertNoError(t, err)
		if deleted.ID != created.ID {
			t.Errorf("expected deleted profile %s, got %s", created.ID, deleted.ID)
		}

		_, err = svc.Delete(user.ID)
		testutil.AssertAppError(t, err, "PROFILE_NOT_FOUND")
	})

	t.Run("removes_dependent_records", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBusinessProfileService(db)
		txSvc := NewTransactionService(db, svc)
		user := testutil.CreateTestUser(t, db)

		profile, err := svc.GetOrCreate(user.ID)
		testutil.AssertNoError(t, err)
		_, err = svc.GetInformation(user.ID)
		testutil.AssertNoError(t, err)
		_, err = txSvc.Upsert(user.ID, TransactionInput{
			Type:   models.TransactionTypePayment,
			Amount: decimal.NewFromInt(50),
			Date:   time.Now(),
		})
		testutil.AssertNoError(t, err)
		contact := models.BusinessContact{
			TenantOwned: models.TenantOwned{BusinessProfileID: profile.ID},
			Name:        "Dana",
			IsActive:    true,
		}
		testutil.AssertNoError(t, db.Create(&contact).Error)

		_, err = svc.Delete(user.ID)
		testutil.AssertNoError(t, err)

		dependents := map[string]interface{}{
			"transactions":         &models.Transaction{},
			"cash_flows":           &models.CashFlow{},
			"business_contacts":    &models.BusinessContact{},
			"business_information": &models.BusinessInformation{},
		}
		for name, model := range dependents {
			var count int64
			db.Unscoped().Model(model).
				Where("business_profile_id = ?", profile.ID).
				Count(&count)
			if count != 0 {
				t.Errorf("expected no %s rows after profile delete, got %d", name, count)
			}
		}

		// With the old rows gone, the tenant can be recreated from scratch.
		fresh, err := svc.GetOrCreate(user.ID)
		testutil.AssertNoError(t, err)
		if fresh.ID == profile.ID {
			t.Error("expected re-created profile to get a new ID")
		}
	})
}

func TestBusinessInformation(t *testing.T) {
	t.Run("lazy_create_with_defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBusinessProfileService(db)
		user := testutil.CreateTestUser(t, db)

		info, err := svc.GetInformation(user.ID)
		testutil.AssertNoError(t, err)

		if info.Currency != "USD" {
			t.Errorf("expected default currency USD, got %q", info.Currency)
		}
		if info.Locale != "en-US" {
			t.Errorf("expected default locale en-US, got %q", info.Locale)
		}
		if info.FiscalYearStartMonth != 1 {
			t.Errorf("expected fiscal year start month 1, got %d", info.FiscalYearStartMonth)
		}
	})

	t.Run("single_row_per_profile", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBusinessProfileService(db)
		user := testutil.CreateTestUser(t, db)

		first, err := svc.GetInformation(user.ID)
		testutil.AssertNoError(t, err)
		second, err := svc.GetInformation(user.ID)
		testutil.AssertNoError(t, err)

		if first.ID != second.ID {
			t.Errorf("expected same information row, got %s and %s", first.ID, second.ID)
		}
	})

	t.Run("upsert_keeps_defaults_for_blank_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBusinessProfileService(db)
		user := testutil.CreateTestUser(t, db)

		info, err := svc.UpsertInformation(user.ID, BusinessInformationInput{TaxID: "93-0001"})
		testutil.AssertNoError(t, err)

		if info.TaxID != "93-0001" {
			t.Errorf("expected tax ID 93-0001, got %q", info.TaxID)
		}
		if info.Currency != "USD" {
			t.Errorf("expected currency to stay USD, got %q", info.Currency)
		}
	})

	t.Run("delete_then_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBusinessProfileService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetInformation(user.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.DeleteInformation(user.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.DeleteInformation(user.ID)
		testutil.AssertAppError(t, err, "INFORMATION_NOT_FOUND")
	})
}
