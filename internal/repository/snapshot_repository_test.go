package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/testutil"
)

func TestSnapshotRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("insert then list newest first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSnapshotRepository(db)

		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 3; i++ {
			s := model.Snapshot{
				ID:               testutil.MakeID(),
				TakenAt:          base.AddDate(0, 0, i),
				TotalIncome:      decimal.NewFromInt(int64(1000 * (i + 1))),
				TotalExpense:     decimal.NewFromInt(250),
				Balance:          decimal.NewFromInt(int64(1000*(i+1) - 250)),
				TransactionCount: i + 2,
			}
			if err := repo.InsertSnapshot(ctx, s); err != nil {
				t.Fatalf("InsertSnapshot() error = %v", err)
			}
		}

		got, err := repo.GetSnapshots(ctx, 10)
		if err != nil {
			t.Fatalf("GetSnapshots() error = %v", err)
		}

		if len(got) != 3 {
			t.Fatalf("Expected 3 snapshots, got %d", len(got))
		}
		if !got[0].TakenAt.Equal(base.AddDate(0, 0, 2)) {
			t.Errorf("Expected newest first, got %s", got[0].TakenAt)
		}
		if !got[0].Balance.Equal(decimal.NewFromInt(2750)) {
			t.Errorf("Balance = %s, want 2750", got[0].Balance)
		}
		if got[0].TransactionCount != 4 {
			t.Errorf("TransactionCount = %d, want 4", got[0].TransactionCount)
		}
	})

	t.Run("honours limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSnapshotRepository(db)

		for i := 0; i < 5; i++ {
			testutil.NewSnapshot().WithTakenAt(time.Date(2024, 2, i+1, 0, 0, 0, 0, time.UTC)).Build(t, db)
		}

		got, err := repo.GetSnapshots(ctx, 2)
		if err != nil {
			t.Fatalf("GetSnapshots() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("Expected 2 snapshots, got %d", len(got))
		}
	})

	t.Run("empty table returns empty slice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSnapshotRepository(db)

		got, err := repo.GetSnapshots(ctx, 10)
		if err != nil {
			t.Fatalf("GetSnapshots() error = %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("Expected empty non-nil slice, got %v", got)
		}
	})
}
