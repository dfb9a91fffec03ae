package pg

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/sparkboard-dev/sparkboard/internal/config"
	"github.com/sparkboard-dev/sparkboard/internal/logger"
)

type Storage struct {
	db *sql.DB
}

func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db")
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db}, nil
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	pgCfg := cfg.Private.Pg
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		pgCfg.Host, pgCfg.Port, pgCfg.User, pgCfg.Password, pgCfg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// Ping reports whether the database connection is usable. Used by the
// readiness probe.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
