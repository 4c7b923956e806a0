package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/testutil"
)

func TestSnapshotService(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshot survives deletion of transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db).WithClock(clock)
		txSvc := testutil.NewTestTransactionService(t, db, nil)

		income := testutil.CreateIncome(t, db, "1000", "2024-03-01")
		testutil.CreateExpense(t, db, "400", "2024-03-02")

		taken, err := svc.TakeSnapshot(ctx)
		if err != nil {
			t.Fatalf("TakeSnapshot() returned unexpected error: %v", err)
		}
		if !taken.Balance.Equal(decimal.NewFromInt(600)) || taken.TransactionCount != 2 {
			t.Errorf("snapshot = %+v", taken)
		}
		if !taken.TakenAt.Equal(fixedNow) {
			t.Errorf("TakenAt = %s, want %s", taken.TakenAt, fixedNow)
		}

		if _, err := txSvc.DeleteTransaction(ctx, income.ID); err != nil {
			t.Fatalf("DeleteTransaction() returned unexpected error: %v", err)
		}

		list, err := svc.GetSnapshots(ctx, 10)
		if err != nil {
			t.Fatalf("GetSnapshots() returned unexpected error: %v", err)
		}
		if len(list) != 1 || !list[0].Balance.Equal(decimal.NewFromInt(600)) {
			t.Errorf("Expected recorded balance 600 to survive, got %+v", list)
		}
	})

	t.Run("empty store records zero totals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		taken, err := svc.TakeSnapshot(ctx)
		if err != nil {
			t.Fatalf("TakeSnapshot() returned unexpected error: %v", err)
		}
		if !taken.Balance.IsZero() || taken.TransactionCount != 0 {
			t.Errorf("snapshot = %+v", taken)
		}
	})
}
