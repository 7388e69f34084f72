package services

import (
	"testing"

	"bizledger/internal/models"
	"bizledger/internal/testutil"
)

func TestUpsertCategory(t *testing.T) {
	t.Run("creates_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		profileSvc := NewBusinessProfileService(db)
		svc := NewExpenseService(db, profileSvc)
		user := testutil.CreateTestUser(t, db)

		cat, err := svc.UpsertCategory(user.ID, ExpenseCategoryInput{Name: models.CategoryRent})
		testutil.AssertNoError(t, err)

		if cat.Name != models.CategoryRent {
			t.Errorf("expected name rent, got %q", cat.Name)
		}
		if cat.Status != models.StatusActive {
			t.Errorf("expected default status active, got %q", cat.Status)
		}
	})

	t.Run("rejects_unknown_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		profileSvc := NewBusinessProfileService(db)
		svc := NewExpenseService(db, profileSvc)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpsertCategory(user.ID, ExpenseCategoryInput{Name: "groceries"})
		testutil.AssertAppError(t, err, "INVALID_CATEGORY")
	})

	t.Run("rejects_duplicate_per_profile", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		profileSvc := NewBusinessProfileService(db)
		svc := NewExpenseService(db, profileSvc)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpsertCategory(user.ID, ExpenseCategoryInput{Name: models.CategoryPayroll})
		testutil.AssertNoError(t, err)
		_, err = svc.UpsertCategory(user.ID, ExpenseCategoryInput{Name: models.CategoryPayroll})
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("same_name_allowed_across_profiles", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		profileSvc := NewBusinessProfileService(db)
		svc := NewExpenseService(db, profileSvc)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)

		_, err := svc.UpsertCategory(alice.ID, ExpenseCategoryInput{Name: models.CategorySoftware})
		testutil.AssertNoError(t, err)
		_, err = svc.UpsertCategory(bob.ID, ExpenseCategoryInput{Name: models.CategorySoftware})
		testutil.AssertNoError(t, err)
	})
}

func TestUpsertExpense(t *testing.T) {
	t.Run("creates_with_defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		profileSvc := NewBusinessProfileService(db)
		svc := NewExpenseService(db, profileSvc)
		user := testutil.CreateTestUser(t, db)

		cat, err := svc.UpsertCategory(user.ID, ExpenseCategoryInput{Name: models.CategoryUtilities})
		testutil.AssertNoError(t, err)

		exp, err := svc.UpsertExpense(user.ID, ExpenseInput{
			ExpenseCategoryID: cat.ID,
			Name:              "Electricity",
		})
		testutil.AssertNoError(t, err)

		if exp.Frequency != models.FrequencyMonthly {
			t.Errorf("expected default frequency monthly, got %q", exp.Frequency)
		}
		if exp.Status != models.StatusActive {
			t.Errorf("expected default status active, got %q", exp.Status)
		}
	})

	t.Run("foreign_category_forbidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		profileSvc := NewBusinessProfileService(db)
		svc := NewExpenseService(db, profileSvc)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		otherProfile := testutil.CreateTestProfile(t, db, other.ID)
		foreign := testutil.CreateTestCategory(t, db, otherProfile.ID, models.CategoryTravel)

		_, err := svc.UpsertExpense(user.ID, ExpenseInput{
			ExpenseCategoryID: foreign.ID,
			Name:              "Flights",
		})
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("missing_category_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		profileSvc := NewBusinessProfileService(db)
		svc := NewExpenseService(db, profileSvc)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpsertExpense(user.ID, ExpenseInput{
			ExpenseCategoryID: "00000000-0000-7000-8000-000000000000",
			Name:              "Phantom",
		})
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("foreign_category_forbidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		profileSvc := NewBusinessProfileService(db)
		svc := NewExpenseService(db, profileSvc)
		owner := testutil.CreateTestUser(t, db)
		ownerProfile := testutil.CreateTestProfile(t, db, owner.ID)
		cat := testutil.CreateTestCategory(t, db, ownerProfile.ID, models.CategoryInsurance)
		intruder := testutil.CreateTestUser(t, db)

		_, err := svc.DeleteCategory(intruder.ID, cat.ID)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("removes_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		profileSvc := NewBusinessProfileService(db)
		svc := NewExpenseService(db, profileSvc)
		user := testutil.CreateTestUser(t, db)

		cat, err := svc.UpsertCategory(user.ID, ExpenseCategoryInput{Name: models.CategoryMarketing})
		testutil.AssertNoError(t, err)

		_, err = svc.DeleteCategory(user.ID, cat.ID)
		testutil.AssertNoError(t, err)

		cats, err := svc.ListCategories(user.ID)
		testutil.AssertNoError(t, err)
		if len(cats) != 0 {
			t.Errorf("expected no categories after delete, got %d", len(cats))
		}
	})
}
