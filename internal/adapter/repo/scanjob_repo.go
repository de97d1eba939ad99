package repo

import (
	"context"

	"github.com/google/uuid"

	"scanworker/internal/domain"
	"scanworker/internal/infra"
	"scanworker/internal/sqlinline"
)

// ScanJobRepositoryPG implements domain.ScanJobRepository.
type ScanJobRepositoryPG struct {
	runner infra.SQLExecutor
}

// NewScanJobRepository creates a scan job repository backed by PostgreSQL.
func NewScanJobRepository(runner infra.SQLExecutor) *ScanJobRepositoryPG {
	return &ScanJobRepositoryPG{runner: runner}
}

// ListQueued fetches up to limit queued jobs, oldest first.
func (r *ScanJobRepositoryPG) ListQueued(ctx context.Context, limit int) ([]domain.ScanJob, error) {
	rows, err := r.runner.Query(ctx, sqlinline.QListQueuedScanJobs, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.ScanJob
	for rows.Next() {
		var job domain.ScanJob
		if err := rows.Scan(&job.ID, &job.ReceiptID, &job.ImagePath, &job.Status); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// MarkProcessing transitions a job out of the queue.
func (r *ScanJobRepositoryPG) MarkProcessing(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.runner.Exec(ctx, sqlinline.QMarkScanJobProcessing, jobID)
	return err
}

// MarkCompleted writes the normalized result and confidence onto the job and
// moves it to its terminal completed state.
func (r *ScanJobRepositoryPG) MarkCompleted(ctx context.Context, jobID uuid.UUID, result []byte, confidence float64) error {
	_, err := r.runner.Exec(ctx, sqlinline.QCompleteScanJob, jobID, result, confidence)
	return err
}

// MarkFailed records the failure message and moves the job to its terminal
// failed state.
func (r *ScanJobRepositoryPG) MarkFailed(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.runner.Exec(ctx, sqlinline.QFailScanJob, jobID, message)
	return err
}

var _ domain.ScanJobRepository = (*ScanJobRepositoryPG)(nil)
