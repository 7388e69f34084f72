package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"bizledger/internal/models"
	"bizledger/internal/testutil"
)

func TestUpsertBudget(t *testing.T) {
	t.Run("creates_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		profileSvc := NewBusinessProfileService(db)
		svc := NewBudgetService(db, profileSvc)
		user := testutil.CreateTestUser(t, db)

		now := time.Now()
		budget, err := svc.Upsert(user.ID, BudgetInput{
			Category:        models.CategoryMarketing,
			AllocatedAmount: decimal.NewFromInt(1000),
			PeriodStart:     now,
			PeriodEnd:       now.AddDate(0, 1, 0),
		})
		testutil.AssertNoError(t, err)

		if budget.Category != models.CategoryMarketing {
			t.Errorf("expected category marketing, got %q", budget.Category)
		}
		if !budget.AllocatedAmount.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected allocated 1000, got %s", budget.AllocatedAmount)
		}
	})

	t.Run("rejects_unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		profileSvc := NewBusinessProfileService(db)
		svc := NewBudgetService(db, profileSvc)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.Upsert(user.ID, BudgetInput{
			Category:        "entertainment",
			AllocatedAmount: decimal.NewFromInt(100),
			PeriodStart:     time.Now(),
			PeriodEnd:       time.Now().AddDate(0, 1, 0),
		})
		testutil.AssertAppError(t, err, "INVALID_CATEGORY")
	})

	t.Run("update_foreign_budget_forbidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		profileSvc := NewBusinessProfileService(db)
		svc := NewBudgetService(db, profileSvc)
		owner := testutil.CreateTestUser(t, db)

		now := time.Now()
		budget, err := svc.Upsert(owner.ID, BudgetInput{
			Category:        models.CategoryRent,
			AllocatedAmount: decimal.NewFromInt(500),
			PeriodStart:     now,
			PeriodEnd:       now.AddDate(0, 1, 0),
		})
		testutil.AssertNoError(t, err)

		intruder := testutil.CreateTestUser(t, db)
		_, err = svc.Upsert(intruder.ID, BudgetInput{
			ID:              budget.ID,
			Category:        models.CategoryRent,
			AllocatedAmount: decimal.NewFromInt(1),
			PeriodStart:     now,
			PeriodEnd:       now.AddDate(0, 1, 0),
		})
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("list_scoped_to_profile", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		profileSvc := NewBusinessProfileService(db)
		svc := NewBudgetService(db, profileSvc)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)

		now := time.Now()
		_, err := svc.Upsert(alice.ID, BudgetInput{
			Category:        models.CategorySupplies,
			AllocatedAmount: decimal.NewFromInt(300),
			PeriodStart:     now,
			PeriodEnd:       now.AddDate(0, 1, 0),
		})
		testutil.AssertNoError(t, err)

		bobBudgets, err := svc.List(bob.ID)
		testutil.AssertNoError(t, err)
		if len(bobBudgets) != 0 {
			t.Errorf("expected no budgets for other tenant, got %d", len(bobBudgets))
		}
	})
}

func TestDeleteBudget(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		profileSvc := NewBusinessProfileService(db)
		svc := NewBudgetService(db, profileSvc)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.Delete(user.ID, "00000000-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}
