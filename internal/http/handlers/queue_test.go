package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"scanworker/internal/domain"
	"scanworker/internal/worker"
)

type fakeProcessor struct {
	outcomes []worker.JobOutcome
}

func (f *fakeProcessor) ProcessQueue(ctx context.Context) []worker.JobOutcome {
	return f.outcomes
}

type fakeEngine struct {
	device string
}

func (f *fakeEngine) Model() string { return "donut-cord-v2" }

func (f *fakeEngine) Device(ctx context.Context) string { return f.device }

func TestProcessQueueHandler(t *testing.T) {
	confidence := 0.625
	app := NewApp(&fakeProcessor{outcomes: []worker.JobOutcome{
		{JobID: uuid.New(), Status: domain.JobStatusCompleted, Confidence: &confidence},
		{JobID: uuid.New(), Status: domain.JobStatusFailed, Error: "download image: object not found"},
	}}, &fakeEngine{device: "cpu"})

	req := httptest.NewRequest(http.MethodPost, "/process-queue", nil)
	rec := httptest.NewRecorder()
	app.ProcessQueue(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Processed int               `json:"processed"`
		Results   []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Processed != 2 || len(body.Results) != 2 {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestProcessQueueHandlerEmpty(t *testing.T) {
	app := NewApp(&fakeProcessor{}, &fakeEngine{device: "cpu"})

	req := httptest.NewRequest(http.MethodPost, "/process-queue", nil)
	rec := httptest.NewRecorder()
	app.ProcessQueue(rec, req)

	var body struct {
		Processed int   `json:"processed"`
		Results   []any `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Processed != 0 {
		t.Fatalf("processed = %d, want 0", body.Processed)
	}
	if body.Results == nil {
		t.Fatalf("results should be an empty array, got %s", rec.Body.String())
	}
}

func TestHealthHandler(t *testing.T) {
	app := NewApp(&fakeProcessor{}, &fakeEngine{device: "cuda"})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	app.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" || body["model"] != "donut-cord-v2" || body["device"] != "cuda" {
		t.Fatalf("body = %#v", body)
	}
}
