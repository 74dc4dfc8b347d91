// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/abekoci/election-map/models"
)

// ErrNoData means no snapshot has been saved yet. Callers treat it as
// "no data", not as a failure.
var ErrNoData = errors.New("no results saved yet")

// Supported backends.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Store persists the authoritative results snapshot as a single JSON
// blob. Every save is a full unconditional overwrite: last writer wins,
// with no versioning check. That matches the single-trusted-operator
// model and must not be changed silently.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to the backing database and ensures the results table
// exists. driver is DriverSQLite or DriverPostgres; dsn is a file path
// for sqlite or a connection URL for postgres.
func Open(driver, dsn string) (*Store, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			payload TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create results table: %w", err)
	}

	return &Store{db: db, driver: driver}, nil
}

// Load returns the current snapshot, or ErrNoData when nothing has been
// saved.
func (s *Store) Load(ctx context.Context) (models.ResultsSnapshot, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM results WHERE id = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap models.ResultsSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decode stored snapshot: %w", err)
	}
	return snap, nil
}

// Save replaces the stored snapshot wholesale.
func (s *Store) Save(ctx context.Context, snap models.ResultsSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, s.upsertSQL(), string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// upsertSQL returns the driver-specific statement; lib/pq only binds $N
// placeholders, sqlite takes ?.
func (s *Store) upsertSQL() string {
	if s.driver == DriverPostgres {
		return `INSERT INTO results (id, payload, updated_at) VALUES (1, $1, $2)
			ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	}
	return `INSERT INTO results (id, payload, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
