package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/testutil"
)

func TestSnapshotHandler(t *testing.T) {
	setupHandler := func(t *testing.T) (*SnapshotHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		return NewSnapshotHandler(testutil.NewTestSnapshotService(t, db)), db
	}

	t.Run("creates snapshot of current totals", func(t *testing.T) {
		handler, db := setupHandler(t)

		testutil.CreateIncome(t, db, "1000", "2024-01-01")
		testutil.CreateExpense(t, db, "250", "2024-01-02")

		req := httptest.NewRequest(http.MethodPost, "/api/snapshots", nil)
		w := httptest.NewRecorder()

		handler.CreateSnapshot(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp model.Snapshot
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&resp)

		if !resp.Balance.Equal(decimal.NewFromInt(750)) {
			t.Errorf("Expected balance 750, got %s", resp.Balance)
		}
		if resp.TransactionCount != 2 {
			t.Errorf("Expected 2 transactions, got %d", resp.TransactionCount)
		}
	})

	t.Run("lists snapshots newest first with limit", func(t *testing.T) {
		handler, db := setupHandler(t)

		base := time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC)
		for i := 0; i < 3; i++ {
			testutil.NewSnapshot().WithTakenAt(base.AddDate(0, 0, i)).Build(t, db)
		}

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/snapshots", map[string]string{
			"limit": "2",
		})
		w := httptest.NewRecorder()

		handler.Snapshots(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp []model.Snapshot
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&resp)

		if len(resp) != 2 {
			t.Fatalf("Expected 2 snapshots, got %d", len(resp))
		}
		if !resp[0].TakenAt.Equal(base.AddDate(0, 0, 2)) {
			t.Errorf("Expected newest first, got %s", resp[0].TakenAt)
		}
	})

	t.Run("returns 400 for invalid limit", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/snapshots", map[string]string{
			"limit": "1000",
		})
		w := httptest.NewRecorder()

		handler.Snapshots(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		handler, db := setupHandler(t)
		db.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/snapshots", nil)
		w := httptest.NewRecorder()

		handler.CreateSnapshot(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}
