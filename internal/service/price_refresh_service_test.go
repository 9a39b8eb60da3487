package service_test

import (
	"context"
	"testing"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/repository"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/service"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/testutil"
)

func TestPriceRefreshService_RefreshAll(t *testing.T) {
	t.Run("writes fresh prices to the audit column", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewStockRepository(db)
		mock := testutil.NewMockQuoteClient().WithPrice("AAPL", 150).WithPrice("MSFT", 300)
		svc := service.NewPriceRefreshService(repo, mock)

		aapl := testutil.NewStock().WithSymbol("AAPL").Build(t, db)
		msft := testutil.NewStock().WithSymbol("MSFT").Build(t, db)

		if err := svc.RefreshAll(context.Background()); err != nil {
			t.Fatalf("RefreshAll failed: %v", err)
		}

		got, err := repo.GetByID(context.Background(), aapl.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.CurrentPrice != 150 {
			t.Errorf("Expected persisted price 150 for AAPL, got %f", got.CurrentPrice)
		}

		got, err = repo.GetByID(context.Background(), msft.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.CurrentPrice != 300 {
			t.Errorf("Expected persisted price 300 for MSFT, got %f", got.CurrentPrice)
		}
	})

	t.Run("a failing symbol keeps its stale price and does not stop the run", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewStockRepository(db)
		mock := testutil.NewMockQuoteClient().WithFailingSymbol("AAPL").WithPrice("MSFT", 300)
		svc := service.NewPriceRefreshService(repo, mock)

		aapl := testutil.NewStock().WithSymbol("AAPL").Build(t, db)
		msft := testutil.NewStock().WithSymbol("MSFT").Build(t, db)

		if err := svc.RefreshAll(context.Background()); err != nil {
			t.Fatalf("RefreshAll failed: %v", err)
		}

		got, err := repo.GetByID(context.Background(), aapl.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.CurrentPrice != aapl.CurrentPrice {
			t.Errorf("Expected stale price %f kept for AAPL, got %f", aapl.CurrentPrice, got.CurrentPrice)
		}

		got, err = repo.GetByID(context.Background(), msft.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.CurrentPrice != 300 {
			t.Errorf("Expected refreshed price 300 for MSFT, got %f", got.CurrentPrice)
		}
	})
}
