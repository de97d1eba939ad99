package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"

	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"scanworker/internal/domain"
	"scanworker/internal/extract"
	"scanworker/internal/infra"
	"scanworker/internal/storage"
)

const (
	batchSize = 5

	// Below this confidence the record should go through the
	// higher-fidelity enhancement path. Triggering that path lives
	// elsewhere; the worker only emits the signal.
	enhancementThreshold = 0.7
)

// Engine runs document-understanding inference on a decoded receipt image.
type Engine interface {
	Extract(ctx context.Context, img image.Image) (map[string]any, error)
}

// Processor drives the lifecycle of queued scan jobs: fetch a batch, run
// extraction per job, persist the outcome. Jobs run strictly sequentially and
// one job's failure never crosses its own boundary.
type Processor struct {
	jobs     domain.ScanJobRepository
	receipts domain.ReceiptRepository
	store    storage.ObjectStore
	engine   Engine
	logger   infra.Logger
}

// NewProcessor wires the processor. A nil jobs repository puts it in degraded
// mode: ProcessQueue becomes a no-op reporting zero jobs.
func NewProcessor(jobs domain.ScanJobRepository, receipts domain.ReceiptRepository, store storage.ObjectStore, engine Engine, logger infra.Logger) *Processor {
	return &Processor{jobs: jobs, receipts: receipts, store: store, engine: engine, logger: logger}
}

// JobOutcome is the per-job summary returned to the trigger surface.
type JobOutcome struct {
	JobID      uuid.UUID        `json:"job_id"`
	Status     domain.JobStatus `json:"status"`
	Confidence *float64         `json:"confidence,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// ProcessQueue fetches one batch of queued jobs and processes them in order.
func (p *Processor) ProcessQueue(ctx context.Context) []JobOutcome {
	if p.jobs == nil {
		return nil
	}

	jobs, err := p.jobs.ListQueued(ctx, batchSize)
	if err != nil {
		p.logger.Error().Err(err).Msg("worker: list queued jobs failed")
		return nil
	}

	outcomes := make([]JobOutcome, 0, len(jobs))
	for _, job := range jobs {
		outcomes = append(outcomes, p.processJob(ctx, job))
	}
	return outcomes
}

func (p *Processor) processJob(ctx context.Context, job domain.ScanJob) JobOutcome {
	p.logger.Info().Str("job_id", job.ID.String()).Str("image_path", job.ImagePath).Msg("worker: picked job")

	rec, err := p.runJob(ctx, job)
	if err != nil {
		p.logger.Error().Err(err).Str("job_id", job.ID.String()).Msg("worker: job failed")
		if ferr := p.jobs.MarkFailed(ctx, job.ID, err.Error()); ferr != nil {
			p.logger.Error().Err(ferr).Str("job_id", job.ID.String()).Msg("worker: record job failure failed")
		}
		if ferr := p.receipts.SetScanStatus(ctx, job.ReceiptID, domain.JobStatusFailed); ferr != nil {
			p.logger.Error().Err(ferr).Str("receipt_id", job.ReceiptID.String()).Msg("worker: record receipt failure failed")
		}
		return JobOutcome{JobID: job.ID, Status: domain.JobStatusFailed, Error: err.Error()}
	}

	if rec.Confidence < enhancementThreshold {
		p.logger.Info().
			Str("job_id", job.ID.String()).
			Float64("confidence", rec.Confidence).
			Msg("worker: low confidence, needs enhancement")
	}

	confidence := rec.Confidence
	return JobOutcome{JobID: job.ID, Status: domain.JobStatusCompleted, Confidence: &confidence}
}

// runJob executes the per-job pipeline. Any returned error is fatal to this
// job only; the caller records it on both the job and its parent receipt.
func (p *Processor) runJob(ctx context.Context, job domain.ScanJob) (domain.NormalizedReceipt, error) {
	if err := p.jobs.MarkProcessing(ctx, job.ID); err != nil {
		return domain.NormalizedReceipt{}, fmt.Errorf("mark job processing: %w", err)
	}
	if err := p.receipts.SetScanStatus(ctx, job.ReceiptID, domain.JobStatusProcessing); err != nil {
		return domain.NormalizedReceipt{}, fmt.Errorf("mark receipt processing: %w", err)
	}

	data, err := p.store.Download(ctx, job.ImagePath)
	if err != nil {
		return domain.NormalizedReceipt{}, fmt.Errorf("download image: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return domain.NormalizedReceipt{}, fmt.Errorf("decode image: %w", err)
	}

	raw, err := p.engine.Extract(ctx, img)
	if err != nil {
		return domain.NormalizedReceipt{}, fmt.Errorf("model inference: %w", err)
	}

	rec := extract.Normalize(raw)
	result, err := json.Marshal(rec)
	if err != nil {
		return domain.NormalizedReceipt{}, fmt.Errorf("encode result: %w", err)
	}

	if err := p.jobs.MarkCompleted(ctx, job.ID, result, rec.Confidence); err != nil {
		return domain.NormalizedReceipt{}, fmt.Errorf("persist job result: %w", err)
	}
	if err := p.receipts.SaveScanResult(ctx, job.ReceiptID, result, minorUnits(rec.TotalTTC), minorUnits(rec.TVAAmount)); err != nil {
		return domain.NormalizedReceipt{}, fmt.Errorf("persist receipt result: %w", err)
	}
	return rec, nil
}

// minorUnits converts a decimal amount to integer cents, truncating toward
// zero (45.90 -> 4590).
func minorUnits(d *decimal.Decimal) *int64 {
	if d == nil {
		return nil
	}
	cents := d.Shift(2).IntPart()
	return &cents
}
