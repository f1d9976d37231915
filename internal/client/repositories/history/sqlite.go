package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medadvisor/internal/client/models"
	"medadvisor/internal/common"
	"medadvisor/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
// Suggestion lists are stored as JSON arrays in TEXT columns.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func encodeList(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeList(raw string) ([]string, error) {
	var v []string
	if raw == "" {
		return nil, nil
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, rec *models.PredictionRecord) error {
	lists := make([]string, 0, 5)
	for _, l := range [][]string{rec.Symptoms, rec.Medications, rec.Diet, rec.Workout, rec.Precautions} {
		enc, err := encodeList(l)
		if err != nil {
			return fmt.Errorf("failed to encode record %s: %w", rec.ID, err)
		}
		lists = append(lists, enc)
	}

	query := `INSERT INTO prediction_history
			(id, user_id, symptoms, predicted_disease, description, medications, diet, workout, precautions, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				user_id = excluded.user_id,
				symptoms = excluded.symptoms,
				predicted_disease = excluded.predicted_disease,
				description = excluded.description,
				medications = excluded.medications,
				diet = excluded.diet,
				workout = excluded.workout,
				precautions = excluded.precautions,
				created_at = excluded.created_at
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.UserID, lists[0], rec.PredictedDisease, rec.Description,
		lists[1], lists[2], lists[3], lists[4], rec.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to upsert prediction record: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) scanRecord(scan func(dest ...any) error) (*models.PredictionRecord, error) {
	var (
		rec       models.PredictionRecord
		createdAt string
		lists     [5]string
	)
	if err := scan(&rec.ID, &rec.UserID, &lists[0], &rec.PredictedDisease, &rec.Description,
		&lists[1], &lists[2], &lists[3], &lists[4], &createdAt); err != nil {
		return nil, err
	}

	var err error
	if rec.Symptoms, err = decodeList(lists[0]); err != nil {
		return nil, fmt.Errorf("failed to decode symptoms for %s: %w", rec.ID, err)
	}
	if rec.Medications, err = decodeList(lists[1]); err != nil {
		return nil, fmt.Errorf("failed to decode medications for %s: %w", rec.ID, err)
	}
	if rec.Diet, err = decodeList(lists[2]); err != nil {
		return nil, fmt.Errorf("failed to decode diet for %s: %w", rec.ID, err)
	}
	if rec.Workout, err = decodeList(lists[3]); err != nil {
		return nil, fmt.Errorf("failed to decode workout for %s: %w", rec.ID, err)
	}
	if rec.Precautions, err = decodeList(lists[4]); err != nil {
		return nil, fmt.Errorf("failed to decode precautions for %s: %w", rec.ID, err)
	}
	if createdAt != "" {
		if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at for %s: %w", rec.ID, err)
		}
	}
	return &rec, nil
}

const selectColumns = `id, user_id, symptoms, predicted_disease, description, medications, diet, workout, precautions, created_at`

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.PredictionRecord, error) {
	query := `SELECT ` + selectColumns + ` FROM prediction_history ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select prediction records: %w", err)
	}
	defer rows.Close()

	var result []models.PredictionRecord
	for rows.Next() {
		rec, err := r.scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.PredictionRecord, error) {
	query := `SELECT ` + selectColumns + ` FROM prediction_history WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	rec, err := r.scanRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return rec, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM prediction_history`); err != nil {
		return fmt.Errorf("failed to clear prediction history: %w", err)
	}
	return nil
}
