package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/model"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/repository"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/testutil"
)

func TestStockRepository_InsertAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewStockRepository(db)
	ctx := context.Background()

	stock := &model.Stock{
		ID:           testutil.MakeID(),
		Symbol:       "AAPL",
		Name:         "Apple Inc",
		Quantity:     10,
		BuyPrice:     100.50,
		CurrentPrice: 120.25,
		CreatedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	if err := repo.Insert(ctx, stock); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := repo.GetByID(ctx, stock.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	if got.Symbol != "AAPL" {
		t.Errorf("Expected symbol 'AAPL', got '%s'", got.Symbol)
	}
	if got.Quantity != 10 {
		t.Errorf("Expected quantity 10, got %d", got.Quantity)
	}
	if got.BuyPrice != 100.50 {
		t.Errorf("Expected buy price 100.50, got %f", got.BuyPrice)
	}
	if got.CurrentPrice != 120.25 {
		t.Errorf("Expected current price 120.25, got %f", got.CurrentPrice)
	}
}

func TestStockRepository_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewStockRepository(db)

	_, err := repo.GetByID(context.Background(), testutil.MakeID())
	if !errors.Is(err, apperrors.ErrStockNotFound) {
		t.Errorf("Expected ErrStockNotFound, got %v", err)
	}
}

func TestStockRepository_List_PreservesInsertionOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewStockRepository(db)

	first := testutil.NewStock().WithSymbol("AAPL").Build(t, db)
	second := testutil.NewStock().WithSymbol("MSFT").Build(t, db)
	third := testutil.NewStock().WithSymbol("GOOG").Build(t, db)

	stocks, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(stocks) != 3 {
		t.Fatalf("Expected 3 stocks, got %d", len(stocks))
	}

	wantOrder := []string{first.ID, second.ID, third.ID}
	for i, want := range wantOrder {
		if stocks[i].ID != want {
			t.Errorf("Position %d: expected stock %s, got %s", i, want, stocks[i].ID)
		}
	}
}

func TestStockRepository_List_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewStockRepository(db)

	stocks, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(stocks) != 0 {
		t.Errorf("Expected empty slice, got %d stocks", len(stocks))
	}
}

func TestStockRepository_Update(t *testing.T) {
	t.Run("replaces all mutable fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewStockRepository(db)
		ctx := context.Background()

		stock := testutil.NewStock().WithSymbol("AAPL").WithQuantity(5).Build(t, db)

		updated := &model.Stock{
			ID:        stock.ID,
			Symbol:    "MSFT",
			Name:      "Microsoft",
			Quantity:  8,
			BuyPrice:  250,
			CreatedAt: time.Now().UTC(),
		}
		if err := repo.Update(ctx, updated); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		got, err := repo.GetByID(ctx, stock.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}

		if got.Symbol != "MSFT" {
			t.Errorf("Expected symbol 'MSFT', got '%s'", got.Symbol)
		}
		if got.Quantity != 8 {
			t.Errorf("Expected quantity 8, got %d", got.Quantity)
		}
		if got.BuyPrice != 250 {
			t.Errorf("Expected buy price 250, got %f", got.BuyPrice)
		}
	})

	t.Run("returns not found for unknown ID without altering the store", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewStockRepository(db)
		ctx := context.Background()

		existing := testutil.NewStock().WithSymbol("AAPL").Build(t, db)

		err := repo.Update(ctx, &model.Stock{
			ID:        testutil.MakeID(),
			Symbol:    "MSFT",
			Name:      "Microsoft",
			Quantity:  1,
			BuyPrice:  1,
			CreatedAt: time.Now().UTC(),
		})
		if !errors.Is(err, apperrors.ErrStockNotFound) {
			t.Errorf("Expected ErrStockNotFound, got %v", err)
		}

		got, err := repo.GetByID(ctx, existing.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Symbol != "AAPL" {
			t.Errorf("Existing stock was altered: symbol is now '%s'", got.Symbol)
		}
	})
}

func TestStockRepository_Delete(t *testing.T) {
	t.Run("removes the stock permanently", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewStockRepository(db)
		ctx := context.Background()

		stock := testutil.NewStock().Build(t, db)

		if err := repo.Delete(ctx, stock.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		_, err := repo.GetByID(ctx, stock.ID)
		if !errors.Is(err, apperrors.ErrStockNotFound) {
			t.Errorf("Expected ErrStockNotFound after delete, got %v", err)
		}
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewStockRepository(db)

		err := repo.Delete(context.Background(), testutil.MakeID())
		if !errors.Is(err, apperrors.ErrStockNotFound) {
			t.Errorf("Expected ErrStockNotFound, got %v", err)
		}
	})
}

func TestStockRepository_ConcurrentUpdateDelete(t *testing.T) {
	// Update and Delete are single conditional mutations, so racing them on
	// the same ID must end in exactly one of two states: the row is gone, or
	// the row holds the updated values. Whichever operation loses the race
	// gets ErrStockNotFound.
	db := testutil.SetupTestDB(t)
	repo := repository.NewStockRepository(db)
	ctx := context.Background()

	stock := testutil.NewStock().WithSymbol("AAPL").Build(t, db)

	updateErr := make(chan error, 1)
	deleteErr := make(chan error, 1)

	go func() {
		updateErr <- repo.Update(ctx, &model.Stock{
			ID:        stock.ID,
			Symbol:    "MSFT",
			Name:      "Microsoft",
			Quantity:  2,
			BuyPrice:  200,
			CreatedAt: time.Now().UTC(),
		})
	}()
	go func() {
		deleteErr <- repo.Delete(ctx, stock.ID)
	}()

	uErr := <-updateErr
	dErr := <-deleteErr

	if uErr != nil && !errors.Is(uErr, apperrors.ErrStockNotFound) {
		t.Errorf("Unexpected update error: %v", uErr)
	}
	if dErr != nil && !errors.Is(dErr, apperrors.ErrStockNotFound) {
		t.Errorf("Unexpected delete error: %v", dErr)
	}

	_, err := repo.GetByID(ctx, stock.ID)
	if dErr == nil {
		// Delete won or ran last: the row must be gone.
		if !errors.Is(err, apperrors.ErrStockNotFound) {
			t.Errorf("Expected row to be deleted, got %v", err)
		}
	} else if err != nil {
		t.Errorf("Delete failed but row is missing: %v", err)
	}
}

func TestStockRepository_UpdateCurrentPrice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewStockRepository(db)
	ctx := context.Background()

	stock := testutil.NewStock().Build(t, db)

	if err := repo.UpdateCurrentPrice(ctx, stock.ID, 321.75); err != nil {
		t.Fatalf("UpdateCurrentPrice failed: %v", err)
	}

	got, err := repo.GetByID(ctx, stock.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.CurrentPrice != 321.75 {
		t.Errorf("Expected current price 321.75, got %f", got.CurrentPrice)
	}

	err = repo.UpdateCurrentPrice(ctx, testutil.MakeID(), 1)
	if !errors.Is(err, apperrors.ErrStockNotFound) {
		t.Errorf("Expected ErrStockNotFound for unknown ID, got %v", err)
	}
}
