package handlers

import (
	"net/http"

	"scanworker/internal/worker"
)

// ProcessQueue runs one batch synchronously and reports per-job outcomes.
func (a *App) ProcessQueue(w http.ResponseWriter, r *http.Request) {
	results := a.Processor.ProcessQueue(r.Context())
	if results == nil {
		results = []worker.JobOutcome{}
	}
	a.json(w, http.StatusOK, map[string]any{
		"processed": len(results),
		"results":   results,
	})
}
