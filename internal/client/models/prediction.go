package models

import "time"

// PredictionRecord is one server-produced result of a symptom submission.
// Records are immutable once received; the client only displays them and
// mirrors them into its local cache.
type PredictionRecord struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Symptoms         []string  `json:"symptoms"`
	PredictedDisease string    `json:"predicted_disease"`
	Description      string    `json:"description"`
	Medications      []string  `json:"medications"`
	Diet             []string  `json:"diet"`
	Workout          []string  `json:"workout"`
	Precautions      []string  `json:"precautions"`
	CreatedAt        time.Time `json:"created_at"`
}
