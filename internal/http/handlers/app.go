package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"scanworker/internal/worker"
)

// QueueProcessor runs one synchronous batch of queued scan jobs.
type QueueProcessor interface {
	ProcessQueue(ctx context.Context) []worker.JobOutcome
}

// EngineInfo exposes inference engine identity for the health query.
type EngineInfo interface {
	Model() string
	Device(ctx context.Context) string
}

// App bundles the collaborators the HTTP handlers need.
type App struct {
	Processor QueueProcessor
	Engine    EngineInfo
}

func NewApp(processor QueueProcessor, engine EngineInfo) *App {
	return &App{Processor: processor, Engine: engine}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
