package database

import (
	"fmt"
	"path/filepath"

	"github.com/3zshihri-ux/warehouse-management-system1/internal/database/migration"

	"go.uber.org/zap"
)

func RunMigrations(dbURL, migrationsDir string, log *zap.Logger) error {
	absPath, err := filepath.Abs(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	return migration.Migrate(dbURL, "file://"+absPath, log)
}
