// Package history mirrors server-produced prediction records into the local
// database so past results stay viewable when the server is unreachable.
// The mirror is never authoritative: records are written as received and
// never edited.
package history

import (
	"context"

	"medadvisor/internal/client/models"
)

type Repository interface {
	// Upsert writes one record, replacing any previous copy with the same id.
	Upsert(ctx context.Context, rec *models.PredictionRecord) error

	// GetAll returns all cached records, newest first.
	GetAll(ctx context.Context) ([]models.PredictionRecord, error)

	// GetByID returns one record or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.PredictionRecord, error)

	// Clear drops the whole mirror.
	Clear(ctx context.Context) error
}
