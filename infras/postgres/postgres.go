package postgres

import (
	"estetica/config"
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 25
)

// Connection holds the read/write pair. Repositories route selects to Read
// and mutations plus transactions to Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  connect("read", cfg.DB.Postgres.Read, *cfg),
		Write: connect("write", cfg.DB.Postgres.Write, *cfg),
	}
}

func dbName(cfg config.Config, baseName string) string {
	if cfg.DB.Postgres.Prefix != "" {
		return cfg.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func connect(role string, db config.PostgresDB, cfg config.Config) *sqlx.DB {
	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		db.Username,
		db.Password,
		net.JoinHostPort(db.Host, db.Port),
		dbName(cfg, db.Name),
		db.SSLMode,
	)

	for attempt := range cfg.DB.Postgres.MaxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			sqlDB.SetMaxIdleConns(maxIdleConnections)
			sqlDB.SetMaxOpenConns(maxOpenConnections)

			log.Info().
				Str("role", role).
				Str("host", db.Host).
				Str("port", db.Port).
				Str("dbName", dbName(cfg, db.Name)).
				Msg("Connected to database")

			return sqlDB
		}

		log.Error().
			Err(err).
			Str("role", role).
			Str("host", db.Host).
			Str("port", db.Port).
			Int("attempt", attempt+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second)
	}

	return nil
}
