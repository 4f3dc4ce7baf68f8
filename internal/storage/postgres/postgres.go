package postgres

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/shopity/internal/config"
	"github.com/aaravmahajanofficial/shopity/internal/storage"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrations embed.FS

const defaultDBTimeout = 5 * time.Second

func withDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultDBTimeout)
}

type postgresStore struct {
	db *sql.DB
}

// Open connects to Postgres through an instrumented driver and applies the
// embedded migrations.
func Open(cfg *config.Database) (*sql.DB, error) {

	db, err := otelsql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := withDBTimeout(context.Background())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("✅ Successfully connected to Postgres", slog.String("host", cfg.Host), slog.String("db", cfg.Name))

	return db, nil
}

func RunMigrations(db *sql.DB) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func New(db *sql.DB) storage.Store {
	return &postgresStore{db: db}
}

func (p *postgresStore) Get(ctx context.Context, key string, value any) (bool, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `SELECT value FROM kv_store WHERE key = $1`

	var data []byte

	err := p.db.QueryRowContext(dbCtx, query, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get key %s from postgres: %w", key, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal data for key %s: %w", key, err)
	}

	return true, nil
}

func (p *postgresStore) Set(ctx context.Context, key string, value any) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := p.db.ExecContext(dbCtx, query, key, data); err != nil {
		return fmt.Errorf("failed to set key %s in postgres: %w", key, err)
	}

	return nil
}

func (p *postgresStore) Remove(ctx context.Context, key string) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM kv_store WHERE key = $1`

	if _, err := p.db.ExecContext(dbCtx, query, key); err != nil {
		return fmt.Errorf("failed to delete key %s from postgres: %w", key, err)
	}

	return nil
}

func (p *postgresStore) Close() error {
	return p.db.Close()
}
