package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JobStatus enumerates scan job lifecycle states. Transitions are monotonic:
// queued -> processing -> completed|failed.
type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// ScanJob is one queued extraction of a submitted receipt image. Jobs are
// created when a receipt is uploaded and mutated only by the worker.
type ScanJob struct {
	ID           uuid.UUID
	ReceiptID    uuid.UUID
	ImagePath    string
	Status       JobStatus
	Confidence   *float64
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizedReceipt is the canonical extraction result persisted onto the job.
// Raw keeps the unmodified model output for audit and for the enhancement
// path. The record is written once and never mutated afterwards.
type NormalizedReceipt struct {
	VendorName *string          `json:"vendor_name"`
	TotalTTC   *decimal.Decimal `json:"total_ttc"`
	TVAAmount  *decimal.Decimal `json:"tva_amount"`
	Date       *string          `json:"date"`
	Confidence float64          `json:"confidence"`
	Raw        map[string]any   `json:"raw"`
}
