package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"selfchart/domain/core"
	"selfchart/models"
	"selfchart/ports"
)

// ReadingRepositoryImpl implements ReadingRepository for PostgreSQL
type ReadingRepositoryImpl struct {
	db *sqlx.DB
}

// NewReadingRepository creates a new PostgreSQL reading repository
func NewReadingRepository(db *sqlx.DB) ports.ReadingRepository {
	return &ReadingRepositoryImpl{db: db}
}

// Create persists a new reading. Profiles go into JSONB columns via the
// models column types, which implement driver.Valuer.
func (r *ReadingRepositoryImpl) Create(ctx context.Context, reading *models.Reading) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO readings (public_id, secret, email, name, trait, chart, insights, fingerprint, purchased, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, reading.PublicID, reading.Secret, reading.Email, reading.Name,
		reading.Trait, reading.Chart, reading.Insights,
		reading.Fingerprint, reading.Purchased, reading.CreatedAt)
	return err
}

// Fetch retrieves a reading by public id and verifies the secret in
// constant time. Missing rows and wrong secrets both come back as
// core.ErrNotFoundOrUnauthorized; the two must stay indistinguishable.
func (r *ReadingRepositoryImpl) Fetch(ctx context.Context, publicID core.PublicID, secret core.Secret) (*models.Reading, error) {
	var reading models.Reading
	err := r.db.GetContext(ctx, &reading, `
		SELECT public_id, secret, email, name, trait, chart, insights, fingerprint, purchased, created_at
		FROM readings
		WHERE public_id = $1
	`, publicID.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFoundOrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	if !core.Secret(reading.Secret).Matches(secret) {
		return nil, core.ErrNotFoundOrUnauthorized
	}
	return &reading, nil
}

// MarkPurchased flips the purchased flag to true, gated on the secret.
func (r *ReadingRepositoryImpl) MarkPurchased(ctx context.Context, publicID core.PublicID, secret core.Secret) error {
	// The secret check goes through Fetch so wrong-secret and missing-id
	// share one code path and one error.
	if _, err := r.Fetch(ctx, publicID, secret); err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE readings
		SET purchased = TRUE
		WHERE public_id = $1
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
