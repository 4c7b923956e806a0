package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/engine"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/repository"
)

// Snapshot listing bounds.
const (
	DefaultSnapshotLimit = 30
	MaxSnapshotLimit     = 365
)

// SnapshotService records and lists balance snapshots.
type SnapshotService struct {
	transactionRepo *repository.TransactionRepository
	snapshotRepo    *repository.SnapshotRepository
	now             func() time.Time
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(
	transactionRepo *repository.TransactionRepository,
	snapshotRepo *repository.SnapshotRepository,
) *SnapshotService {
	return &SnapshotService{
		transactionRepo: transactionRepo,
		snapshotRepo:    snapshotRepo,
		now:             time.Now,
	}
}

// TakeSnapshot aggregates the current store and records the totals.
func (s *SnapshotService) TakeSnapshot(ctx context.Context) (model.Snapshot, error) {
	ts, err := s.transactionRepo.GetTransactions(ctx, model.TransactionFilter{})
	if err != nil {
		return model.Snapshot{}, err
	}

	summary := engine.Aggregate(ts)
	snapshot := model.Snapshot{
		ID:               uuid.New().String(),
		TakenAt:          s.now().UTC(),
		TotalIncome:      summary.TotalIncome,
		TotalExpense:     summary.TotalExpense,
		Balance:          summary.Balance,
		TransactionCount: len(ts),
	}

	if err := s.snapshotRepo.InsertSnapshot(ctx, snapshot); err != nil {
		return model.Snapshot{}, err
	}

	return snapshot, nil
}

// WithClock replaces the time source. Tests use it to pin "now".
func (s *SnapshotService) WithClock(now func() time.Time) *SnapshotService {
	s.now = now
	return s
}

// GetSnapshots returns the latest limit snapshots, newest first.
func (s *SnapshotService) GetSnapshots(ctx context.Context, limit int) ([]model.Snapshot, error) {
	return s.snapshotRepo.GetSnapshots(ctx, limit)
}
