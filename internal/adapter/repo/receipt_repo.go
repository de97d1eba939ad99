package repo

import (
	"context"

	"github.com/google/uuid"

	"scanworker/internal/domain"
	"scanworker/internal/infra"
	"scanworker/internal/sqlinline"
)

// ReceiptRepositoryPG implements domain.ReceiptRepository.
type ReceiptRepositoryPG struct {
	runner infra.SQLExecutor
}

// NewReceiptRepository creates a receipt repository backed by PostgreSQL.
func NewReceiptRepository(runner infra.SQLExecutor) *ReceiptRepositoryPG {
	return &ReceiptRepositoryPG{runner: runner}
}

// SetScanStatus projects a job status transition onto the parent receipt.
func (r *ReceiptRepositoryPG) SetScanStatus(ctx context.Context, receiptID uuid.UUID, status domain.JobStatus) error {
	_, err := r.runner.Exec(ctx, sqlinline.QSetReceiptScanStatus, receiptID, status)
	return err
}

// SaveScanResult stores the raw extraction and, when parsed, the minor-unit
// amounts, marking the receipt scan completed. This write and the job write
// are independent calls, not a transaction.
func (r *ReceiptRepositoryPG) SaveScanResult(ctx context.Context, receiptID uuid.UUID, result []byte, ttcCents, tvaCents *int64) error {
	_, err := r.runner.Exec(ctx, sqlinline.QSaveReceiptScanResult, receiptID, result, ttcCents, tvaCents)
	return err
}

var _ domain.ReceiptRepository = (*ReceiptRepositoryPG)(nil)
