package cli

import (
	"context"
	"fmt"
	"strings"

	"medadvisor/internal/client/api"
	"medadvisor/internal/client/symptoms"
)

// History lists past predictions, newest first. When the server is
// unreachable the locally mirrored copy is shown and marked as such.
func (a *App) History(ctx context.Context) error {
	return a.guarded(ctx, ViewHistory, func(ctx context.Context) error {
		recs, fromCache, err := a.predictions.History(ctx)
		if err != nil {
			printlnFn(api.UserMessage(err))
			return nil
		}
		if fromCache {
			printlnFn("Server unreachable, showing the local copy.")
		}
		if len(recs) == 0 {
			printlnFn("No predictions yet.")
			return nil
		}
		for _, rec := range recs {
			when := ""
			if !rec.CreatedAt.IsZero() {
				when = rec.CreatedAt.Local().Format("2006-01-02 15:04")
			}
			printlnFn(fmt.Sprintf("%s  %-20s  %d symptom(s)  [%s]",
				when, rec.PredictedDisease, len(rec.Symptoms), rec.ID))
		}
		return nil
	})
}

// Symptoms prints the vocabulary, optionally filtered by substring. It is
// available without a session: the vocabulary is a static constant.
func (a *App) Symptoms(query string) error {
	matches := symptoms.Search(query)
	if len(matches) == 0 {
		printlnFn("No symptoms match", query)
		return nil
	}
	printlnFn(strings.Join(matches, "\n"))
	printlnFn(fmt.Sprintf("%d symptom(s)", len(matches)))
	return nil
}
