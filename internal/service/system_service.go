package service

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/database"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db       *sql.DB
	features map[string]bool
}

// NewSystemService creates a new SystemService. features lists the
// optional integrations and whether they are switched on.
func NewSystemService(db *sql.DB, features map[string]bool) *SystemService {
	return &SystemService{
		db:       db,
		features: features,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion reports the application version, the applied schema version
// and whether the schema lags behind the embedded migrations.
func (s *SystemService) CheckVersion() (model.VersionInfo, error) {
	dbVersion, err := database.Version(s.db)
	if err != nil {
		return model.VersionInfo{}, err
	}

	latest, err := database.LatestVersion()
	if err != nil {
		return model.VersionInfo{}, err
	}

	features := make(map[string]bool, len(s.features))
	for k, v := range s.features {
		features[k] = v
	}

	info := model.VersionInfo{
		AppVersion: version.Version,
		DbVersion:  strconv.FormatInt(dbVersion, 10),
		Features:   features,
	}
	if dbVersion < latest {
		msg := fmt.Sprintf("database schema is at version %d, latest is %d", dbVersion, latest)
		info.MigrationNeeded = true
		info.MigrationMessage = &msg
	}

	return info, nil
}
