// Package sqlite is the local/dev reading store: one JSON payload per
// reading in a single-file database. It mirrors the semantics of the
// postgres adapter so the two are interchangeable behind the port.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/tidwall/gjson"

	"selfchart/domain/core"
	"selfchart/models"
	"selfchart/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS readings (
	public_id  TEXT PRIMARY KEY,
	secret     TEXT NOT NULL,
	payload    TEXT NOT NULL,
	purchased  INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
)`

// ReadingRepositoryImpl implements ReadingRepository on SQLite.
type ReadingRepositoryImpl struct {
	db *sql.DB
}

// Open opens (and initializes) the sqlite store at path.
func Open(path string) (*ReadingRepositoryImpl, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize sqlite schema: %w", err)
	}
	return &ReadingRepositoryImpl{db: db}, nil
}

// NewReadingRepository wraps an existing database handle.
func NewReadingRepository(db *sql.DB) ports.ReadingRepository {
	return &ReadingRepositoryImpl{db: db}
}

// Close closes the underlying database.
func (r *ReadingRepositoryImpl) Close() error {
	return r.db.Close()
}

// Ping checks the database connection.
func (r *ReadingRepositoryImpl) Ping() error {
	return r.db.Ping()
}

// Create stores the reading as a JSON payload. The secret lives in its own
// column because the payload encoding deliberately omits it.
func (r *ReadingRepositoryImpl) Create(ctx context.Context, reading *models.Reading) error {
	payload, err := json.Marshal(reading)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO readings (public_id, secret, payload, purchased, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, reading.PublicID, reading.Secret, string(payload), boolToInt(reading.Purchased),
		reading.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"))
	return err
}

// Fetch retrieves and verifies a reading. Wrong secret and missing id are
// the same error.
func (r *ReadingRepositoryImpl) Fetch(ctx context.Context, publicID core.PublicID, secret core.Secret) (*models.Reading, error) {
	var storedSecret, payload string
	var purchased int
	err := r.db.QueryRowContext(ctx, `
		SELECT secret, payload, purchased FROM readings WHERE public_id = ?
	`, publicID.String()).Scan(&storedSecret, &payload, &purchased)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFoundOrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !core.Secret(storedSecret).Matches(secret) {
		return nil, core.ErrNotFoundOrUnauthorized
	}

	// Integrity probe before the full unmarshal.
	if !gjson.Get(payload, "fingerprint").Exists() {
		return nil, fmt.Errorf("corrupt payload for reading %s", publicID)
	}

	var reading models.Reading
	if err := json.Unmarshal([]byte(payload), &reading); err != nil {
		return nil, fmt.Errorf("failed to decode reading %s: %w", publicID, err)
	}
	reading.Secret = storedSecret
	reading.Purchased = purchased != 0
	return &reading, nil
}

// MarkPurchased flips the purchased column, gated on the secret.
func (r *ReadingRepositoryImpl) MarkPurchased(ctx context.Context, publicID core.PublicID, secret core.Secret) error {
	if _, err := r.Fetch(ctx, publicID, secret); err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, `
		UPDATE readings SET purchased = 1 WHERE public_id = ?
	`, publicID.String())
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return core.ErrNotFoundOrUnauthorized
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
