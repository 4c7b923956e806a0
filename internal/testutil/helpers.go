package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/events"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/secret"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/service"
)

// DefaultGoal is the savings target services are built with in tests.
var DefaultGoal = decimal.NewFromInt(10000)

// NewTestTransactionService builds a TransactionService without encryption.
// A nil publisher discards events.
func NewTestTransactionService(t *testing.T, db *sql.DB, publisher events.Publisher) *service.TransactionService {
	t.Helper()

	return service.NewTransactionService(
		db,
		repository.NewTransactionRepository(db, nil),
		publisher,
		zerolog.Nop(),
	)
}

// NewTestEncryptedTransactionService builds a TransactionService that seals
// descriptions with a fresh key, and returns the cipher it uses.
func NewTestEncryptedTransactionService(t *testing.T, db *sql.DB) (*service.TransactionService, *secret.Cipher) {
	t.Helper()

	key, err := secret.GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	cipher, err := secret.NewCipher(key)
	if err != nil {
		t.Fatalf("Failed to create cipher: %v", err)
	}

	return service.NewTransactionService(
		db,
		repository.NewTransactionRepository(db, cipher),
		nil,
		zerolog.Nop(),
	), cipher
}

func NewTestReportService(t *testing.T, db *sql.DB) *service.ReportService {
	t.Helper()

	return service.NewReportService(
		repository.NewTransactionRepository(db, nil),
		repository.NewSettingsRepository(db),
		DefaultGoal,
	)
}

func NewTestCalendarService(t *testing.T, db *sql.DB) *service.CalendarService {
	t.Helper()

	return service.NewCalendarService(repository.NewTransactionRepository(db, nil))
}

func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	return service.NewSnapshotService(
		repository.NewTransactionRepository(db, nil),
		repository.NewSnapshotRepository(db),
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db, map[string]bool{
		"events":     false,
		"encryption": false,
		"snapshots":  true,
	})
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeDescription generates a unique description for testing.
//
// Example usage:
//
//	desc := testutil.MakeDescription("Mercado")
//	// Returns: "Mercado ABC123"
func MakeDescription(base string) string {
	if base == "" {
		base = "Transaction"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
