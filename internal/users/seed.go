package users

import (
	"fmt"
	"strings"

	"github.com/3zshihri-ux/warehouse-management-system1/internal/config"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/security"

	"go.uber.org/zap"
)

// SeedAdmin inserts the initial admin account on first run. It does
// nothing when a user with the configured email already exists.
func SeedAdmin(repo UserRepository, cfg *config.Config, log *zap.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))

	existing, err := repo.GetUserByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if existing != nil {
		return nil
	}

	passwordHash, err := security.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if err := repo.PersistUser(email, passwordHash, "admin"); err != nil {
		return err
	}

	log.Info("Seeded initial admin user", zap.String("email", email))
	return nil
}
