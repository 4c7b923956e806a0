package engine

import (
	"slices"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
)

// FilterByKind returns the transactions of the given kind, keeping order.
// An empty kind returns a copy of the whole input.
func FilterByKind(ts []model.Transaction, kind model.Kind) []model.Transaction {
	out := make([]model.Transaction, 0, len(ts))
	for _, t := range ts {
		if kind == "" || t.Type == kind {
			out = append(out, t)
		}
	}
	return out
}

// SortRecentFirst returns a copy ordered by date, newest first. Ties are
// broken by creation time so entries made on the same day keep submission
// order reversed.
func SortRecentFirst(ts []model.Transaction) []model.Transaction {
	out := slices.Clone(ts)
	slices.SortStableFunc(out, func(a, b model.Transaction) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}
