// Package db provides database connectivity and migration functionality.
// It centralizes pool construction and schema migrations so the rest of the
// application only ever sees a ready *pgxpool.Pool.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres driver for migrate
	_ "github.com/golang-migrate/migrate/v4/source/file"       // file:// migration source
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq" // database/sql driver used by migrate's postgres driver

	"github.com/Bvqlz/Todo/apperror"
	"github.com/Bvqlz/Todo/config"
)

// NewPool establishes a connection pool to PostgreSQL using the provided
// configuration. The pool is configured with the max size from config plus
// idle and lifetime limits, and the connection is verified with a ping before
// the pool is handed to the caller.
func NewPool(cfg *config.DBConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error parsing DSN for database %s", cfg.DBName), err)
	}

	poolConfig.MaxConns = int32(cfg.MaxSize)
	poolConfig.MaxConnIdleTime = 10 * time.Minute
	poolConfig.MaxConnLifetime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error creating pool for database %s", cfg.DBName), err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error connecting to database %s", cfg.DBName), err)
	}

	return pool, nil
}

// getDSN constructs a DSN string from DBConfig suitable for golang-migrate,
// which drives its postgres connection through database/sql and lib/pq rather
// than pgx.
func getDSN(cfg *config.DBConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName,
	)
}

// RunMigrations applies any pending database migrations from the given
// directory. migrate.ErrNoChange means the schema is already current and is
// not treated as a failure.
func RunMigrations(cfg *config.DBConfig, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, getDSN(cfg))
	if err != nil {
		return apperror.NewDatabaseError("failed to create migrator", err)
	}
	defer func() {
		// Close releases both the source and the migrator's own db handle.
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			fmt.Printf("warning: error closing migration source: %v\n", srcErr)
		}
		if dbErr != nil {
			fmt.Printf("warning: error closing migration database handle: %v\n", dbErr)
		}
	}()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return apperror.NewDatabaseError("failed to run migrations", err)
	}

	return nil
}
