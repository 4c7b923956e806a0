package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ParseTime reads a stored date or timestamp column as UTC.
func ParseTime(str string) (time.Time, error) {
	t, err := model.ParseDate(str)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
	}
	return t.UTC(), nil
}

// timestampLayout keeps fractional seconds fixed width so stored
// timestamps sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// formatTimestamp is the storage form of created_at and taken_at columns.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// parseAmount reads a decimal stored as TEXT.
func parseAmount(column, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse %s %q: %w", column, s, err)
	}
	return d, nil
}
