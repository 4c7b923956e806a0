package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
)

// SnapshotRepository provides data access methods for the snapshots table.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// InsertSnapshot stores s.
func (r *SnapshotRepository) InsertSnapshot(ctx context.Context, s model.Snapshot) error {
	query := `
		INSERT INTO snapshots (id, taken_at, total_income, total_expense, balance, transaction_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		formatTimestamp(s.TakenAt),
		s.TotalIncome.String(),
		s.TotalExpense.String(),
		s.Balance.String(),
		s.TransactionCount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	return nil
}

// GetSnapshots returns at most limit snapshots, newest first.
func (r *SnapshotRepository) GetSnapshots(ctx context.Context, limit int) ([]model.Snapshot, error) {
	query := `
		SELECT id, taken_at, total_income, total_expense, balance, transaction_count
		FROM snapshots
		ORDER BY taken_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.Snapshot{}

	for rows.Next() {
		var s model.Snapshot
		var takenAtStr, incomeStr, expenseStr, balanceStr string

		if err := rows.Scan(&s.ID, &takenAtStr, &incomeStr, &expenseStr, &balanceStr, &s.TransactionCount); err != nil {
			return nil, fmt.Errorf("failed to scan snapshots table results: %w", err)
		}

		if s.TakenAt, err = ParseTime(takenAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse taken_at: %w", err)
		}
		if s.TotalIncome, err = parseAmount("total_income", incomeStr); err != nil {
			return nil, err
		}
		if s.TotalExpense, err = parseAmount("total_expense", expenseStr); err != nil {
			return nil, err
		}
		if s.Balance, err = parseAmount("balance", balanceStr); err != nil {
			return nil, err
		}

		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshots table: %w", err)
	}

	return snapshots, nil
}
