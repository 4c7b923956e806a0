package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/testutil"
)

var reportNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func setupReportHandler(t *testing.T) (*ReportHandler, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	rs := testutil.NewTestReportService(t, db).WithClock(func() time.Time { return reportNow })
	return NewReportHandler(rs), db
}

func TestReportHandler_Summary(t *testing.T) {
	t.Run("returns zero totals for empty store", func(t *testing.T) {
		handler, _ := setupReportHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp model.Summary
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&resp)

		if !resp.Balance.IsZero() || !resp.TotalIncome.IsZero() || !resp.TotalExpense.IsZero() {
			t.Errorf("Expected zero totals, got %+v", resp)
		}
	})

	t.Run("aggregates income and expense", func(t *testing.T) {
		handler, db := setupReportHandler(t)

		testutil.CreateIncome(t, db, "3000", "2024-01-05")
		testutil.CreateExpense(t, db, "1000", "2024-01-10")

		req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		var resp model.Summary
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&resp)

		if !resp.Balance.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("Expected balance 2000, got %s", resp.Balance)
		}
		if resp.IncomeCount != 1 || resp.ExpenseCount != 1 {
			t.Errorf("Expected one of each kind, got %+v", resp)
		}
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		handler, db := setupReportHandler(t)
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestReportHandler_Monthly(t *testing.T) {
	t.Run("returns net per month with activity", func(t *testing.T) {
		handler, db := setupReportHandler(t)

		testutil.CreateIncome(t, db, "3000", "2024-01-05")
		testutil.CreateExpense(t, db, "500", "2024-01-20")
		testutil.CreateExpense(t, db, "200", "2024-03-02")

		req := httptest.NewRequest(http.MethodGet, "/api/monthly", nil)
		w := httptest.NewRecorder()

		handler.Monthly(w, req)

		var resp map[string]decimal.Decimal
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&resp)

		if len(resp) != 2 {
			t.Fatalf("Expected 2 months, got %v", resp)
		}
		if !resp["2024-01"].Equal(decimal.NewFromInt(2500)) {
			t.Errorf("Expected 2024-01 = 2500, got %s", resp["2024-01"])
		}
		if !resp["2024-03"].Equal(decimal.NewFromInt(-200)) {
			t.Errorf("Expected 2024-03 = -200, got %s", resp["2024-03"])
		}
		if _, ok := resp["2024-02"]; ok {
			t.Error("Expected no entry for a month without activity")
		}
	})

	t.Run("returns empty object for empty store", func(t *testing.T) {
		handler, _ := setupReportHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/monthly", nil)
		w := httptest.NewRecorder()

		handler.Monthly(w, req)

		if strings.TrimSpace(w.Body.String()) != "{}" {
			t.Errorf("Expected {}, got %s", w.Body.String())
		}
	})
}

func TestReportHandler_Report(t *testing.T) {
	t.Run("builds report with stored defaults", func(t *testing.T) {
		handler, db := setupReportHandler(t)

		testutil.CreateIncome(t, db, "3000", "2024-03-01")
		testutil.CreateExpense(t, db, "1000", "2024-03-02")

		req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
		w := httptest.NewRecorder()

		handler.Report(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp model.Report
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&resp)

		if len(resp.Projection) != 13 {
			t.Errorf("Expected 13 projection points, got %d", len(resp.Projection))
		}
		if resp.Projection[0].Label != model.ProjectionLabelCurrent {
			t.Errorf("Expected first label %q, got %q", model.ProjectionLabelCurrent, resp.Projection[0].Label)
		}
		if len(resp.Timeline) != 12 {
			t.Errorf("Expected 12 timeline points, got %d", len(resp.Timeline))
		}
		if resp.Timeline[0].Period != "2024-03" {
			t.Errorf("Expected timeline to start at 2024-03, got %s", resp.Timeline[0].Period)
		}
		// balance 2000, goal 10000: ceil(8000/2000) = 4 months
		if resp.GoalStatus.State != model.GoalInProgress || resp.GoalStatus.Months != 4 {
			t.Errorf("Expected in_progress(4), got %+v", resp.GoalStatus)
		}
		if resp.Analysis.State != model.AnalysisPositive {
			t.Errorf("Expected positive analysis, got %s", resp.Analysis.State)
		}
	})

	t.Run("applies goal and horizon overrides", func(t *testing.T) {
		handler, db := setupReportHandler(t)

		testutil.CreateIncome(t, db, "3000", "2024-03-01")
		testutil.CreateExpense(t, db, "1000", "2024-03-02")

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/report", map[string]string{
			"goal":    "1500",
			"horizon": "6",
		})
		w := httptest.NewRecorder()

		handler.Report(w, req)

		var resp model.Report
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&resp)

		if len(resp.Projection) != 7 {
			t.Errorf("Expected 7 projection points, got %d", len(resp.Projection))
		}
		if resp.GoalStatus.State != model.GoalAlreadyReached {
			t.Errorf("Expected already_reached, got %+v", resp.GoalStatus)
		}
		if !resp.Goal.Target.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("Expected goal 1500, got %s", resp.Goal.Target)
		}
	})

	t.Run("largest goal with the smallest saving keeps a positive month count", func(t *testing.T) {
		handler, db := setupReportHandler(t)

		testutil.CreateIncome(t, db, "0.01", "2024-03-01")

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/report", map[string]string{
			"goal": model.MaxGoalTarget.String(),
		})
		w := httptest.NewRecorder()

		handler.Report(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp model.Report
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&resp)

		// ceil((1e12 - 0.01) / 0.01)
		if resp.GoalStatus.State != model.GoalInProgress || resp.GoalStatus.Months != 99999999999999 {
			t.Errorf("Expected in_progress(99999999999999), got %+v", resp.GoalStatus)
		}
	})

	t.Run("returns 400 for invalid parameters", func(t *testing.T) {
		tests := []struct {
			name   string
			params map[string]string
		}{
			{"horizon zero", map[string]string{"horizon": "0"}},
			{"horizon too large", map[string]string{"horizon": "121"}},
			{"horizon not a number", map[string]string{"horizon": "twelve"}},
			{"goal not a number", map[string]string{"goal": "lots"}},
			{"goal negative", map[string]string{"goal": "-100"}},
			{"goal above maximum", map[string]string{"goal": "1e30"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				handler, _ := setupReportHandler(t)

				req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/report", tt.params)
				w := httptest.NewRecorder()

				handler.Report(w, req)

				if w.Code != http.StatusBadRequest {
					t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
				}
			})
		}
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		handler, db := setupReportHandler(t)
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
		w := httptest.NewRecorder()

		handler.Report(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestReportHandler_Goal(t *testing.T) {
	t.Run("returns defaults before any update", func(t *testing.T) {
		handler, _ := setupReportHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/goal", nil)
		w := httptest.NewRecorder()

		handler.GetGoal(w, req)

		var resp model.Goal
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&resp)

		if !resp.Target.Equal(testutil.DefaultGoal) {
			t.Errorf("Expected default target %s, got %s", testutil.DefaultGoal, resp.Target)
		}
		if resp.HorizonMonths != 12 {
			t.Errorf("Expected default horizon 12, got %d", resp.HorizonMonths)
		}
		if resp.UpdatedAt != nil {
			t.Error("Expected no updatedAt before first update")
		}
	})

	t.Run("stores and returns updated goal", func(t *testing.T) {
		handler, _ := setupReportHandler(t)

		req := httptest.NewRequest(http.MethodPut, "/api/goal", strings.NewReader(`{"target":25000,"horizonMonths":24}`))
		w := httptest.NewRecorder()

		handler.UpdateGoal(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		req = httptest.NewRequest(http.MethodGet, "/api/goal", nil)
		w = httptest.NewRecorder()

		handler.GetGoal(w, req)

		var resp model.Goal
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&resp)

		if !resp.Target.Equal(decimal.NewFromInt(25000)) {
			t.Errorf("Expected target 25000, got %s", resp.Target)
		}
		if resp.HorizonMonths != 24 {
			t.Errorf("Expected horizon 24, got %d", resp.HorizonMonths)
		}
		if resp.UpdatedAt == nil || !resp.UpdatedAt.Equal(reportNow) {
			t.Errorf("Expected updatedAt %s, got %v", reportNow, resp.UpdatedAt)
		}
	})

	t.Run("returns 400 on validation failure", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"missing target", `{"horizonMonths":12}`},
			{"zero target", `{"target":0}`},
			{"horizon out of range", `{"target":100,"horizonMonths":500}`},
			{"target above maximum", `{"target":1e30}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				handler, _ := setupReportHandler(t)

				req := httptest.NewRequest(http.MethodPut, "/api/goal", strings.NewReader(tt.body))
				w := httptest.NewRecorder()

				handler.UpdateGoal(w, req)

				if w.Code != http.StatusBadRequest {
					t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
				}
			})
		}
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		handler, db := setupReportHandler(t)
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/goal", nil)
		w := httptest.NewRecorder()

		handler.GetGoal(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}
