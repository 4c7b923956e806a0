package service_test

import (
	"testing"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/testutil"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/version"
)

func TestSystemService(t *testing.T) {
	t.Run("healthy database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		if err := svc.CheckHealth(); err != nil {
			t.Errorf("CheckHealth() returned unexpected error: %v", err)
		}
	})

	t.Run("closed database is unhealthy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)
		db.Close()

		if err := svc.CheckHealth(); err == nil {
			t.Error("Expected error for closed database")
		}
	})

	t.Run("version reports migrated schema", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		info, err := svc.CheckVersion()
		if err != nil {
			t.Fatalf("CheckVersion() returned unexpected error: %v", err)
		}
		if info.AppVersion != version.Version {
			t.Errorf("AppVersion = %s, want %s", info.AppVersion, version.Version)
		}
		if info.DbVersion != "2" {
			t.Errorf("DbVersion = %s, want 2", info.DbVersion)
		}
		if info.MigrationNeeded || info.MigrationMessage != nil {
			t.Errorf("Expected no pending migration, got %+v", info)
		}
	})

	t.Run("features are copied", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		info, err := svc.CheckVersion()
		if err != nil {
			t.Fatalf("CheckVersion() returned unexpected error: %v", err)
		}
		info.Features["snapshots"] = false

		again, err := svc.CheckVersion()
		if err != nil {
			t.Fatalf("CheckVersion() returned unexpected error: %v", err)
		}
		if !again.Features["snapshots"] {
			t.Error("Expected service features to be unaffected by caller mutation")
		}
	})
}
