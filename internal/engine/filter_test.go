package engine

import (
	"testing"
	"time"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
)

func TestFilterByKind(t *testing.T) {
	ts := sampleTransactions()

	incomes := FilterByKind(ts, model.KindIncome)
	if len(incomes) != 2 {
		t.Fatalf("Expected 2 incomes, got %d", len(incomes))
	}
	for _, tr := range incomes {
		if tr.Type != model.KindIncome {
			t.Errorf("Expected only income, got %s", tr.Type)
		}
	}

	all := FilterByKind(ts, "")
	if len(all) != len(ts) {
		t.Errorf("Expected %d transactions, got %d", len(ts), len(all))
	}
}

func TestSortRecentFirst(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	first := tx(model.KindIncome, "1", "2026-01-01")
	first.CreatedAt = base
	second := tx(model.KindIncome, "2", "2026-01-01")
	second.CreatedAt = base.Add(time.Minute)
	newest := tx(model.KindExpense, "3", "2026-02-01")

	input := []model.Transaction{first, newest, second}
	sorted := SortRecentFirst(input)

	if sorted[0].ID != newest.ID || sorted[1].ID != second.ID || sorted[2].ID != first.ID {
		t.Errorf("Unexpected order: %s, %s, %s", sorted[0].ID, sorted[1].ID, sorted[2].ID)
	}
	if input[1].ID != newest.ID {
		t.Error("Expected input slice to stay untouched")
	}
}
