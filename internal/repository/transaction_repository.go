package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/secret"
)

// TransactionRepository provides data access methods for the transactions table.
// Descriptions pass through the configured cipher on the way in and out.
type TransactionRepository struct {
	db     *sql.DB
	tx     *sql.Tx
	cipher *secret.Cipher
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
// A nil cipher stores descriptions as plain text.
func NewTransactionRepository(db *sql.DB, cipher *secret.Cipher) *TransactionRepository {
	return &TransactionRepository{db: db, cipher: cipher}
}

// WithTx returns a new TransactionRepository scoped to the provided transaction.
func (r *TransactionRepository) WithTx(tx *sql.Tx) *TransactionRepository {
	return &TransactionRepository{
		db:     r.db,
		tx:     tx,
		cipher: r.cipher,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *TransactionRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const transactionColumns = `id, description, amount, type, date, created_at`

// GetTransactions returns the transactions dated within the filter's date
// range, most recent first (date descending, then creation time descending).
// The kind part of the filter is applied by the caller. The result is never nil.
func (r *TransactionRepository) GetTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, error) {
	var (
		conditions []string
		args       []any
	)

	if !filter.StartDate.IsZero() {
		conditions = append(conditions, "date >= ?")
		args = append(args, model.DateKey(filter.StartDate))
	}
	if !filter.EndDate.IsZero() {
		conditions = append(conditions, "date <= ?")
		args = append(args, model.DateKey(filter.EndDate))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := r.getQuerier().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {
		t, err := r.scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by its ID.
// Returns ErrTransactionNotFound if no record with the given ID exists.
func (r *TransactionRepository) GetTransaction(ctx context.Context, transactionID string) (model.Transaction, error) {
	if transactionID == "" {
		return model.Transaction{}, apperrors.ErrEmptyID
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?`

	t, err := r.scanTransaction(r.getQuerier().QueryRowContext(ctx, query, transactionID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, err
	}

	return t, nil
}

// InsertTransaction stores t. The caller assigns ID and CreatedAt.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, t model.Transaction) error {
	description, err := r.cipher.Encrypt(t.Description)
	if err != nil {
		return fmt.Errorf("failed to seal description: %w", err)
	}

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = r.getQuerier().ExecContext(ctx, query,
		t.ID,
		description,
		t.Amount.String(),
		string(t.Type),
		model.DateKey(t.Date),
		formatTimestamp(t.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// DeleteTransaction removes a transaction by its ID.
// Returns ErrTransactionNotFound if no record with the given ID exists.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *TransactionRepository) scanTransaction(row rowScanner) (model.Transaction, error) {
	var (
		t                               model.Transaction
		description, amountStr, typeStr string
		dateStr, createdAtStr           string
	)

	err := row.Scan(
		&t.ID,
		&description,
		&amountStr,
		&typeStr,
		&dateStr,
		&createdAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return t, err
	}
	if err != nil {
		return t, fmt.Errorf("failed to scan transactions table results: %w", err)
	}

	t.Description, err = r.cipher.Decrypt(description)
	if err != nil {
		return t, fmt.Errorf("%w: transaction %s: %v", apperrors.ErrCorruptRecord, t.ID, err)
	}

	t.Amount, err = parseAmount("amount", amountStr)
	if err != nil {
		return t, err
	}

	t.Type, err = model.ParseKind(typeStr)
	if err != nil {
		return t, fmt.Errorf("%w: transaction %s: %v", apperrors.ErrCorruptRecord, t.ID, err)
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil || t.Date.IsZero() {
		return t, fmt.Errorf("failed to parse date: %w", err)
	}

	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil || t.CreatedAt.IsZero() {
		return t, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return t, nil
}
