// Package services contains the application services sitting between the
// CLI views and the transport client: symptom prediction with a local
// history mirror, and profile management.
package services

import (
	"context"
	"database/sql"
	"errors"

	"medadvisor/internal/client/api"
	"medadvisor/internal/client/models"
	"medadvisor/internal/client/repositories/history"
	"medadvisor/internal/client/symptoms"
	"medadvisor/internal/dbx"
	"medadvisor/internal/logging"
)

// PredictionAPI is the transport surface the prediction service needs.
type PredictionAPI interface {
	Predict(ctx context.Context, symptoms []string) (*models.PredictionRecord, error)
	PredictionHistory(ctx context.Context) ([]models.PredictionRecord, error)
}

// PredictionService validates symptom selections, submits them, and mirrors
// the resulting records into the local database so history stays readable
// when the server is down.
type PredictionService struct {
	api PredictionAPI
	db  *sql.DB
	log logging.Logger
}

func NewPredictionService(api PredictionAPI, db *sql.DB, log logging.Logger) *PredictionService {
	return &PredictionService{api: api, db: db, log: log}
}

func (s *PredictionService) historyRepo(db dbx.DBTX) history.Repository {
	return history.NewSQLiteRepository(db)
}

// Predict checks the selection client-side (an invalid one never reaches
// the network), submits it, and caches the returned record. A cache write
// failure is logged, not surfaced: the prediction itself succeeded.
func (s *PredictionService) Predict(ctx context.Context, selected []string) (*models.PredictionRecord, error) {
	cleaned, err := symptoms.Validate(selected)
	if err != nil {
		return nil, err
	}

	rec, err := s.api.Predict(ctx, cleaned)
	if err != nil {
		return nil, err
	}

	if rec.ID != "" {
		if err := s.historyRepo(s.db).Upsert(ctx, rec); err != nil {
			s.log.Warn(ctx, "failed to cache prediction", "id", rec.ID, "error", err)
		}
	}
	return rec, nil
}

// History returns the user's past predictions. The server copy is
// authoritative; on success the local mirror is replaced wholesale in one
// transaction. Only when the server is unreachable does the service fall
// back to the mirror, reporting fromCache=true so views can mark the data
// as possibly stale.
func (s *PredictionService) History(ctx context.Context) (recs []models.PredictionRecord, fromCache bool, err error) {
	recs, err = s.api.PredictionHistory(ctx)
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return nil, false, err
		}
		s.log.Warn(ctx, "server unreachable, serving cached history", "error", err)
		cached, cacheErr := s.historyRepo(s.db).GetAll(ctx)
		if cacheErr != nil {
			return nil, false, err
		}
		return cached, true, nil
	}

	if err := s.refreshCache(ctx, recs); err != nil {
		s.log.Warn(ctx, "failed to refresh history cache", "error", err)
	}
	return recs, false, nil
}

// Get looks a single record up in the local mirror.
func (s *PredictionService) Get(ctx context.Context, id string) (*models.PredictionRecord, error) {
	return s.historyRepo(s.db).GetByID(ctx, id)
}

func (s *PredictionService) refreshCache(ctx context.Context, recs []models.PredictionRecord) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.historyRepo(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		for i := range recs {
			if err := repo.Upsert(ctx, &recs[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
