package ports

import (
	"context"

	"selfchart/domain/core"
	"selfchart/models"
)

// ReadingRepository defines the interface for reading persistence.
//
// Fetch and MarkPurchased fail with core.ErrNotFoundOrUnauthorized for both
// a missing id and a wrong secret; implementations must never distinguish
// the two, so that ids cannot be enumerated.
type ReadingRepository interface {
	// Create persists a new reading. The reading carries its public id
	// and secret already; Create never generates identity.
	Create(ctx context.Context, reading *models.Reading) error

	// Fetch retrieves a reading by public id, gated on the secret.
	Fetch(ctx context.Context, publicID core.PublicID, secret core.Secret) (*models.Reading, error)

	// MarkPurchased flips the purchased flag to true. This is the only
	// legal mutation of a stored reading.
	MarkPurchased(ctx context.Context, publicID core.PublicID, secret core.Secret) error
}
