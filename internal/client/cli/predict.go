package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"medadvisor/internal/client/api"
	"medadvisor/internal/client/models"
)

// previewLimit is how many entries of each suggestion list the compact
// rendering shows before truncating.
const previewLimit = 3

// Predict reads a symptom selection and submits it. Client-side validation
// rejects an empty or unknown selection before any network traffic.
func (a *App) Predict(ctx context.Context) error {
	return a.guarded(ctx, ViewPredict, func(ctx context.Context) error {
		selected, err := GetSymptomList(a.reader, os.Stdout)
		if err != nil {
			return err
		}

		rec, err := a.predictions.Predict(ctx, selected)
		if err != nil {
			printlnFn(api.UserMessage(err))
			return nil
		}

		a.renderRecord(rec, false)
		return nil
	})
}

// Show renders one cached record in full.
func (a *App) Show(ctx context.Context, id string) error {
	return a.guarded(ctx, ViewHistory, func(ctx context.Context) error {
		if id == "" {
			printlnFn("Usage: show <id>")
			return nil
		}
		rec, err := a.predictions.Get(ctx, id)
		if err != nil {
			printlnFn("No cached record with id", id)
			return nil
		}
		a.renderRecord(rec, true)
		return nil
	})
}

func (a *App) renderRecord(rec *models.PredictionRecord, full bool) {
	printlnFn("Predicted disease:", rec.PredictedDisease)
	if rec.Description != "" {
		printlnFn(rec.Description)
	}
	printlnFn("Symptoms:", strings.Join(rec.Symptoms, ", "))
	a.renderList("Medications", rec.Medications, full)
	a.renderList("Diet", rec.Diet, full)
	a.renderList("Workout", rec.Workout, full)
	a.renderList("Precautions", rec.Precautions, full)
	if rec.ID != "" {
		printlnFn("Record id:", rec.ID)
	}
}

// renderList prints a suggestion list, truncated to previewLimit entries
// unless full rendering was asked for. Truncation is presentation only;
// the record itself is never modified.
func (a *App) renderList(title string, items []string, full bool) {
	if len(items) == 0 {
		return
	}
	printlnFn(title + ":")
	shown := items
	if !full && len(items) > previewLimit {
		shown = items[:previewLimit]
	}
	for _, item := range shown {
		printlnFn("  -", item)
	}
	if hidden := len(items) - len(shown); hidden > 0 {
		printlnFn(fmt.Sprintf("  (+%d more, use 'show <id>' for the full record)", hidden))
	}
}
