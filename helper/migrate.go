package helper

import (
	"errors"
	"estetica/config"
	"fmt"
	"net"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

func newMigrator(cfg *config.Config) (*migrate.Migrate, error) {
	db := cfg.DB.Postgres.Write

	name := db.Name
	if cfg.DB.Postgres.Prefix != "" {
		name = cfg.DB.Postgres.Prefix + name
	}

	connectionString := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		db.Username,
		db.Password,
		net.JoinHostPort(db.Host, db.Port),
		name,
		db.SSLMode,
		cfg.DB.Postgres.MigrationTable,
	)

	mig, err := migrate.New(migrationSource, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(cfg *config.Config, action string) error {
	mig, err := newMigrator(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	var run func() error

	switch action {
	case "up":
		run = mig.Up
	case "step-up":
		run = func() error { return mig.Steps(1) }
	case "down":
		run = func() error { return mig.Steps(-1) }
	case "drop":
		run = mig.Down
	default:
		return fmt.Errorf("unknown migration action: %s", action)
	}

	if err := run(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration action %s: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migration action completed")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, "up")
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, "step-up")
}

func Down(cfg *config.Config) error {
	return Runner(cfg, "down")
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, "drop")
}
