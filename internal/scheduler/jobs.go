package scheduler

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/format"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
)

// SnapshotJobName identifies the balance snapshot job in logs.
const SnapshotJobName = "balance-snapshot"

// SnapshotTaker records a balance snapshot.
type SnapshotTaker interface {
	TakeSnapshot(ctx context.Context) (model.Snapshot, error)
}

// SnapshotJob records a snapshot on every run.
func SnapshotJob(taker SnapshotTaker, log zerolog.Logger) Job {
	return func(ctx context.Context) error {
		s, err := taker.TakeSnapshot(ctx)
		if err != nil {
			return err
		}
		log.Info().
			Str("snapshot_id", s.ID).
			Str("balance", format.BRL(s.Balance)).
			Int("transactions", s.TransactionCount).
			Msg("Recorded balance snapshot")
		return nil
	}
}
