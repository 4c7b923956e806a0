package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/testutil"
)

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key returns ErrSettingNotFound", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSettingsRepository(db)

		_, err := repo.GetSetting(ctx, repository.SettingGoalTarget)
		if !errors.Is(err, apperrors.ErrSettingNotFound) {
			t.Errorf("Expected ErrSettingNotFound, got %v", err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSettingsRepository(db)
		at := time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)

		err := repo.SetSettings(ctx, map[string]string{
			repository.SettingGoalTarget:  "25000",
			repository.SettingGoalHorizon: "18",
		}, at)
		if err != nil {
			t.Fatalf("SetSettings() error = %v", err)
		}

		got, err := repo.GetSettings(ctx, repository.SettingGoalTarget, repository.SettingGoalHorizon, "unknown")
		if err != nil {
			t.Fatalf("GetSettings() error = %v", err)
		}

		if len(got) != 2 {
			t.Fatalf("Expected 2 settings, got %v", got)
		}
		if got[repository.SettingGoalTarget].Value != "25000" {
			t.Errorf("target = %q, want 25000", got[repository.SettingGoalTarget].Value)
		}
		if !got[repository.SettingGoalHorizon].UpdatedAt.Equal(at) {
			t.Errorf("updatedAt = %s, want %s", got[repository.SettingGoalHorizon].UpdatedAt, at)
		}
	})

	t.Run("set overwrites existing value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSettingsRepository(db)

		first := time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)
		second := first.Add(24 * time.Hour)

		if err := repo.SetSettings(ctx, map[string]string{repository.SettingGoalTarget: "100"}, first); err != nil {
			t.Fatalf("SetSettings() error = %v", err)
		}
		if err := repo.SetSettings(ctx, map[string]string{repository.SettingGoalTarget: "200"}, second); err != nil {
			t.Fatalf("SetSettings() error = %v", err)
		}

		got, err := repo.GetSetting(ctx, repository.SettingGoalTarget)
		if err != nil {
			t.Fatalf("GetSetting() error = %v", err)
		}
		if got.Value != "200" || !got.UpdatedAt.Equal(second) {
			t.Errorf("got %+v, want value 200 at %s", got, second)
		}
	})
}
