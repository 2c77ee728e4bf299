// Package database establishes the connection to PostgreSQL.
//
// It builds the DSN from config, creates a pgx connection pool, and wires
// query logging through pgx tracelog in the local environment. The pool is
// an explicitly owned resource: constructed at startup, injected into the
// repositories, closed at shutdown.
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/lightbnb/lightbnb/internal/config"
	"github.com/lightbnb/lightbnb/internal/logger"
)

// Querier is the subset of the pgx pool the repositories depend on. Both
// *pgxpool.Pool and test doubles satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Database wraps the pgx connection pool and a logger for lifecycle logs.
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// DatabasePingTimeout is the number of seconds to wait for the startup ping
// before considering the database unreachable.
const DatabasePingTimeout = 10

// buildDSN assembles a postgres:// connection string from config. The
// password is URL-escaped so special characters don't break the URL.
func buildDSN(cfg *config.DatabaseConfig) string {
	hostPort := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	encodedPassword := url.QueryEscape(cfg.Password)

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.User,
		encodedPassword,
		hostPort,
		cfg.Name,
		cfg.SSLMode,
	)
}

// New creates the PostgreSQL connection pool and verifies connectivity with
// a bounded ping so startup fails fast when the database is down.
func New(cfg *config.Config, log *zerolog.Logger) (*Database, error) {
	poolConfig, err := pgxpool.ParseConfig(buildDSN(&cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Minute
	poolConfig.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Minute

	// SQL statement logging is noisy, so it only runs in the local env.
	if cfg.Primary.Env == "local" {
		level := log.GetLevel()
		pgxLogger := logger.NewPgxLogger(level)
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: logger.GetPgxTraceLogLevel(level),
		}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Msg("connected to the database")

	return &Database{Pool: pool, log: log}, nil
}

// Close closes the database connection pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
