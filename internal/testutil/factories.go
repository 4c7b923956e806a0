package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
)

// storedTimestampLayout matches the layout the repositories write.
const storedTimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	// Simple creation with defaults (an expense of 100 dated today)
//	tx := testutil.NewTransaction().Build(t, db)
//
//	// Customized transaction
//	tx := testutil.NewTransaction().
//	    Income().
//	    WithAmount("3500").
//	    WithDate(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)).
//	    Build(t, db)
type TransactionBuilder struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Type        model.Kind
	Date        time.Time
	CreatedAt   time.Time
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction() *TransactionBuilder {
	now := time.Now().UTC()
	return &TransactionBuilder{
		ID:          MakeID(),
		Description: MakeDescription("Test transaction"),
		Amount:      decimal.NewFromInt(100),
		Type:        model.KindExpense,
		Date:        model.TruncateDay(now),
		CreatedAt:   now,
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithDescription sets a custom description.
func (b *TransactionBuilder) WithDescription(desc string) *TransactionBuilder {
	b.Description = desc
	return b
}

// WithAmount sets the amount from its decimal string form.
func (b *TransactionBuilder) WithAmount(amount string) *TransactionBuilder {
	b.Amount = decimal.RequireFromString(amount)
	return b
}

// WithDate sets the transaction date.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	b.Date = model.TruncateDay(date)
	return b
}

// OnDay sets the transaction date from a YYYY-MM-DD string.
func (b *TransactionBuilder) OnDay(day string) *TransactionBuilder {
	d, err := time.Parse(model.DateLayout, day)
	if err != nil {
		panic(err)
	}
	b.Date = d
	return b
}

// WithCreatedAt sets the creation timestamp.
func (b *TransactionBuilder) WithCreatedAt(at time.Time) *TransactionBuilder {
	b.CreatedAt = at.UTC()
	return b
}

// Income marks the transaction as income.
func (b *TransactionBuilder) Income() *TransactionBuilder {
	b.Type = model.KindIncome
	return b
}

// Expense marks the transaction as expense.
func (b *TransactionBuilder) Expense() *TransactionBuilder {
	b.Type = model.KindExpense
	return b
}

// Build creates the transaction in the database and returns it.
// The description is stored in plain text.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO transactions (id, description, amount, type, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID,
		b.Description,
		b.Amount.String(),
		string(b.Type),
		b.Date.Format(model.DateLayout),
		b.CreatedAt.UTC().Format(storedTimestampLayout),
	)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.Transaction{
		ID:          b.ID,
		Description: b.Description,
		Amount:      b.Amount,
		Type:        b.Type,
		Date:        b.Date,
		CreatedAt:   b.CreatedAt,
	}
}

// Convenience functions

// CreateIncome creates an income of amount on day (YYYY-MM-DD).
//
// Example usage:
//
//	testutil.CreateIncome(t, db, "3500", "2026-01-05")
func CreateIncome(t *testing.T, db *sql.DB, amount, day string) model.Transaction {
	t.Helper()
	return NewTransaction().Income().WithAmount(amount).OnDay(day).Build(t, db)
}

// CreateExpense creates an expense of amount on day (YYYY-MM-DD).
func CreateExpense(t *testing.T, db *sql.DB, amount, day string) model.Transaction {
	t.Helper()
	return NewTransaction().Expense().WithAmount(amount).OnDay(day).Build(t, db)
}

// SnapshotBuilder provides a fluent interface for creating test snapshots.
type SnapshotBuilder struct {
	ID               string
	TakenAt          time.Time
	TotalIncome      decimal.Decimal
	TotalExpense     decimal.Decimal
	TransactionCount int
}

// NewSnapshot creates a SnapshotBuilder with zero totals taken now.
func NewSnapshot() *SnapshotBuilder {
	return &SnapshotBuilder{
		ID:           MakeID(),
		TakenAt:      time.Now().UTC(),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
}

// WithTakenAt sets the snapshot time.
func (b *SnapshotBuilder) WithTakenAt(at time.Time) *SnapshotBuilder {
	b.TakenAt = at.UTC()
	return b
}

// WithTotals sets income and expense totals.
func (b *SnapshotBuilder) WithTotals(income, expense string) *SnapshotBuilder {
	b.TotalIncome = decimal.RequireFromString(income)
	b.TotalExpense = decimal.RequireFromString(expense)
	return b
}

// Build creates the snapshot in the database and returns it.
func (b *SnapshotBuilder) Build(t *testing.T, db *sql.DB) model.Snapshot {
	t.Helper()

	balance := b.TotalIncome.Sub(b.TotalExpense)
	query := `
		INSERT INTO snapshots (id, taken_at, total_income, total_expense, balance, transaction_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID,
		b.TakenAt.UTC().Format(storedTimestampLayout),
		b.TotalIncome.String(),
		b.TotalExpense.String(),
		balance.String(),
		b.TransactionCount,
	)
	if err != nil {
		t.Fatalf("Failed to create test snapshot: %v", err)
	}

	return model.Snapshot{
		ID:               b.ID,
		TakenAt:          b.TakenAt,
		TotalIncome:      b.TotalIncome,
		TotalExpense:     b.TotalExpense,
		Balance:          balance,
		TransactionCount: b.TransactionCount,
	}
}
