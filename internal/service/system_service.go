package service

import (
	"database/sql"
	"fmt"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/database"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	if err := database.HealthCheck(s.db); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *SystemService) CheckVersion() string {
	return version.Version
}
