package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/allandeluna/brainstash/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewConnection opens and validates the database pool.
func NewConnection(ctx context.Context, cfg *config.DB, envCfg *config.DBEnv) (*sql.DB, error) {
	slog.Info("Connecting to the database...")
	const dsnFmt = "postgres://%s:%s@%s:%s/%s?sslmode=%s"

	dsn := fmt.Sprintf(dsnFmt, envCfg.User, envCfg.Pass, envCfg.Host, envCfg.Port, envCfg.Name, envCfg.SSLMode)
	conn, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime.Duration)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime.Duration)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout.Duration)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Connected to the database.", "db", envCfg.Name)
	return conn, nil
}
