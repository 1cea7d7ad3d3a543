package bootstrap

import (
	"context"
	"fmt"

	"hospital-registry/config"
	"hospital-registry/internal/infrastructure/cache"
	"hospital-registry/internal/infrastructure/database"
	"hospital-registry/internal/service"
	"hospital-registry/pkg/jwt"
)

// IssueToken signs an operator token and, with Redis enabled, registers it in the
// allowlist the API checks.
func IssueToken(ctx context.Context, cfg *config.Config, subject string, role jwt.Role) (*service.IssuedToken, error) {
	log := SetupLogger(cfg.App)

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	tokens := service.NewTokenService(log, jwt.NewJWTService(cfg.JWT), redisClient)
	return tokens.Issue(ctx, subject, role)
}

// RunMigrations applies schema migrations to the configured database
func RunMigrations(cfg *config.Config, steps int) error {
	SetupLogger(cfg.App)

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	return database.Migrate(db, steps)
}
