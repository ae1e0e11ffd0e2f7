package services

import (
	"context"
	"testing"
	"time"

	"dompet/internal/models"
	"dompet/internal/pagination"
	"dompet/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("valid with category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, &user.ID, "Food")

		tx, err := svc.Create(ctx, user.ID, TransactionInput{CategoryID: &cat.ID, Description: "Lunch", Amount: 45000})
		testutil.AssertNoError(t, err)

		if tx.UserID != user.ID {
			t.Errorf("expected owner %s, got %s", user.ID, tx.UserID)
		}
		if tx.Amount != 45000 {
			t.Errorf("expected amount 45000, got %d", tx.Amount)
		}
		if tx.Date == nil {
			t.Error("expected date to default to now")
		}
		if tx.Category == nil || tx.Category.ID != cat.ID {
			t.Errorf("expected category %s to be loaded", cat.ID)
		}
	})

	t.Run("explicit date kept", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		tx, err := svc.Create(ctx, user.ID, TransactionInput{Amount: 1, Date: &date})
		testutil.AssertNoError(t, err)
		if tx.Date == nil || !tx.Date.Equal(date) {
			t.Errorf("expected date %v, got %v", date, tx.Date)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.Create(ctx, user.ID, TransactionInput{Amount: -1})
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")
	})

	t.Run("deleted category rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, &user.ID, "Food")
		_, err := NewCategoryService(db).Delete(ctx, Caller{UserID: user.ID}, []string{cat.ID})
		testutil.AssertNoError(t, err)

		_, err = svc.Create(ctx, user.ID, TransactionInput{CategoryID: &cat.ID, Amount: 10})
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
		testutil.AssertRowCount(t, db, &models.Transaction{}, 0)
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("only own rows newest first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)

		first := testutil.CreateTestTransaction(t, db, user.ID, nil, 100)
		second := testutil.CreateTestTransaction(t, db, user.ID, nil, 200)
		testutil.CreateTestTransaction(t, db, other.ID, nil, 300)

		page, err := svc.List(ctx, user.ID, TransactionFilter{}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 2 || len(page.Items) != 2 {
			t.Fatalf("expected 2 transactions, got %d", page.TotalItems)
		}
		if page.Items[0].ID != second.ID || page.Items[1].ID != first.ID {
			t.Errorf("expected newest first")
		}
		if page.PageSize != pagination.DefaultPageSize {
			t.Errorf("expected default page size, got %d", page.PageSize)
		}
	})

	t.Run("filters", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		food := testutil.CreateTestCategory(t, db, &user.ID, "Food")

		march := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		may := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
		_, err := svc.Create(ctx, user.ID, TransactionInput{CategoryID: &food.ID, Description: "Lunch", Amount: 10, Date: &march})
		testutil.AssertNoError(t, err)
		_, err = svc.Create(ctx, user.ID, TransactionInput{Description: "Rent", Amount: 20, Date: &may})
		testutil.AssertNoError(t, err)

		byCategory, err := svc.List(ctx, user.ID, TransactionFilter{CategoryID: &food.ID}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if byCategory.TotalItems != 1 || byCategory.Items[0].Description != "Lunch" {
			t.Errorf("category filter: unexpected %+v", byCategory.Items)
		}

		byDescription, err := svc.List(ctx, user.ID, TransactionFilter{Description: "Re"}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if byDescription.TotalItems != 1 || byDescription.Items[0].Description != "Rent" {
			t.Errorf("description filter: unexpected %+v", byDescription.Items)
		}

		from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
		byDate, err := svc.List(ctx, user.ID, TransactionFilter{From: &from}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if byDate.TotalItems != 1 || byDate.Items[0].Description != "Rent" {
			t.Errorf("date filter: unexpected %+v", byDate.Items)
		}
	})

	t.Run("day bound keeps the whole day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		afternoon := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
		nextDay := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)
		_, err := svc.Create(ctx, user.ID, TransactionInput{Description: "Coffee", Amount: 5, Date: &afternoon})
		testutil.AssertNoError(t, err)
		_, err = svc.Create(ctx, user.ID, TransactionInput{Description: "Taxi", Amount: 7, Date: &nextDay})
		testutil.AssertNoError(t, err)

		result, err := svc.List(ctx, user.ID, TransactionFilter{Before: &nextDay}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 || result.Items[0].Description != "Coffee" {
			t.Errorf("expected only Coffee, got %+v", result.Items)
		}

		to := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
		result, err = svc.List(ctx, user.ID, TransactionFilter{To: &to}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 0 {
			t.Errorf("expected timestamp bound to exclude 14:00, got %+v", result.Items)
		}
	})
}

func TestGetTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("other user's transaction invisible", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTransactionService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		tx := testutil.CreateTestTransaction(t, db, owner.ID, nil, 100)

		_, err := svc.Get(ctx, other.ID, tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")

		got, err := svc.Get(ctx, owner.ID, tx.ID)
		testutil.AssertNoError(t, err)
		if got.ID != tx.ID {
			t.Errorf("expected %s, got %s", tx.ID, got.ID)
		}
	})

	t.Run("soft deleted vanishes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		tx := testutil.CreateTestTransaction(t, db, user.ID, nil, 100)

		affected, err := svc.Delete(ctx, user.ID, []string{tx.ID})
		testutil.AssertNoError(t, err)
		if affected != 1 {
			t.Errorf("expected 1 affected row, got %d", affected)
		}

		_, err = svc.Get(ctx, user.ID, tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")

		page, err := svc.List(ctx, user.ID, TransactionFilter{}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 0 {
			t.Errorf("expected no transactions, got %d", page.TotalItems)
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("partial patch", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		tx := testutil.CreateTestTransaction(t, db, user.ID, nil, 100)

		amount := int64(250)
		got, err := svc.Update(ctx, user.ID, tx.ID, TransactionPatch{Amount: &amount})
		testutil.AssertNoError(t, err)

		if got.Amount != 250 {
			t.Errorf("expected amount 250, got %d", got.Amount)
		}
		if got.Description != tx.Description {
			t.Errorf("expected description kept, got %s", got.Description)
		}
	})

	t.Run("other user's transaction not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTransactionService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		tx := testutil.CreateTestTransaction(t, db, owner.ID, nil, 100)

		desc := "hijacked"
		_, err := svc.Update(ctx, other.ID, tx.ID, TransactionPatch{Description: &desc})
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		tx := testutil.CreateTestTransaction(t, db, user.ID, nil, 100)

		amount := int64(-5)
		_, err := svc.Update(ctx, user.ID, tx.ID, TransactionPatch{Amount: &amount})
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")
	})
}

func TestDeleteTransactions(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := NewTransactionService(db)
	owner := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	mine := testutil.CreateTestTransaction(t, db, owner.ID, nil, 100)
	theirs := testutil.CreateTestTransaction(t, db, other.ID, nil, 100)

	affected, err := svc.Delete(ctx, owner.ID, []string{mine.ID, theirs.ID})
	testutil.AssertNoError(t, err)
	if affected != 1 {
		t.Errorf("expected 1 affected row, got %d", affected)
	}

	if _, err := svc.Get(ctx, other.ID, theirs.ID); err != nil {
		t.Errorf("expected other user's transaction to survive, got %v", err)
	}
}
