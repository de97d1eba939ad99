package domain

import (
	"context"

	"github.com/google/uuid"
)

// ScanJobRepository defines persistence for scan jobs.
type ScanJobRepository interface {
	// ListQueued returns up to limit jobs still in the queued state, oldest
	// first. It performs no claim: two concurrent invocations may observe the
	// same job (known gap, see DESIGN.md).
	ListQueued(ctx context.Context, limit int) ([]ScanJob, error)
	MarkProcessing(ctx context.Context, jobID uuid.UUID) error
	// MarkCompleted stores the normalized result JSON and confidence and
	// moves the job to its terminal completed state.
	MarkCompleted(ctx context.Context, jobID uuid.UUID, result []byte, confidence float64) error
	// MarkFailed records the failure message and moves the job to its
	// terminal failed state.
	MarkFailed(ctx context.Context, jobID uuid.UUID, message string) error
}

// ReceiptRepository updates the scan projection on parent receipt records.
type ReceiptRepository interface {
	SetScanStatus(ctx context.Context, receiptID uuid.UUID, status JobStatus) error
	// SaveScanResult marks the receipt scan completed, stores the raw result
	// and, when amounts were parseable, the integer minor-unit projections.
	SaveScanResult(ctx context.Context, receiptID uuid.UUID, result []byte, ttcCents, tvaCents *int64) error
}
