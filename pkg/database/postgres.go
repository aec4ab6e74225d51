package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig holds PostgreSQL connection pool settings
type PostgresConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxConns        int32
	MinConns        int32
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	RetryInterval   time.Duration
}

// DefaultPostgresConfig returns default connection settings
func DefaultPostgresConfig() *PostgresConfig {
	return &PostgresConfig{
		Host:            "localhost",
		Port:            5432,
		User:            "postgres",
		Password:        "postgres",
		Database:        "sponsorreel",
		SSLMode:         "disable",
		MaxConns:        25,
		MinConns:        5,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
		MaxRetries:      3,
		RetryInterval:   2 * time.Second,
	}
}

// DSN returns the PostgreSQL connection string
func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// PostgresDB wraps a pgx connection pool
type PostgresDB struct {
	pool *pgxpool.Pool
	cfg  *PostgresConfig
}

// NewPostgresDB creates a connection pool and verifies connectivity,
// retrying up to MaxRetries times
func NewPostgresDB(ctx context.Context, cfg *PostgresConfig) (*PostgresDB, error) {
	if cfg == nil {
		cfg = DefaultPostgresConfig()
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	poolCfg.MaxConnIdleTime = cfg.ConnMaxIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	db := &PostgresDB{pool: pool, cfg: cfg}

	var pingErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if pingErr = db.Ping(ctx); pingErr == nil {
			return db, nil
		}
		if attempt < cfg.MaxRetries {
			select {
			case <-time.After(cfg.RetryInterval):
			case <-ctx.Done():
				pool.Close()
				return nil, ctx.Err()
			}
		}
	}

	pool.Close()
	return nil, fmt.Errorf("failed to connect to postgres after %d retries: %w", cfg.MaxRetries, pingErr)
}

// Pool returns the underlying pgx pool
func (db *PostgresDB) Pool() *pgxpool.Pool {
	return db.pool
}

// Ping verifies the database connection
func (db *PostgresDB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Close closes the connection pool
func (db *PostgresDB) Close() {
	db.pool.Close()
}
