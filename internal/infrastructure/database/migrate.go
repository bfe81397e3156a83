package database

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	"github.com/muhammadrizo00/Kinamax-Pro/config"
	broadcastentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast/entities"
	catalogentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/entities"
	ratingentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/entities"
	subentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/entities"
	userentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/entities"
)

// RunMigrations applies SQL migrations from the configured directory.
// When the directory is missing it falls back to gorm AutoMigrate so the
// bot can bootstrap its schema without a deploy pipeline.
func RunMigrations(db *gorm.DB, cfg config.DatabaseConfig) error {
	if _, err := os.Stat(cfg.MigrationsDir); errors.Is(err, os.ErrNotExist) {
		return autoMigrate(db)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+cfg.MigrationsDir,
		cfg.DBName,
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to init migrate: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

func autoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userentities.User{},
		&catalogentities.Movie{},
		&subentities.Channel{},
		&subentities.Subscription{},
		&ratingentities.Rating{},
		&broadcastentities.Broadcast{},
	); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}
