package salary

import (
	"context"
	"time"
)

// PolicyRepository reads the pay policies configured by HR.
type PolicyRepository interface {
	// ListActiveByWorker returns the worker's policies with
	// effective_date <= asOf and (end_date null or >= asOf), newest
	// effective_date first. An empty slice means no policy is configured.
	ListActiveByWorker(ctx context.Context, workerID string, asOf time.Time) ([]Policy, error)

	// GetLegacyRecord returns the worker's pre-migration salary record under
	// the same date constraint. The legacy table does not store an employment
	// type; callers infer it from the worker's role. Returns
	// ErrLegacyRecordNotFound when no row matches.
	GetLegacyRecord(ctx context.Context, workerID string, asOf time.Time) (Policy, error)
}

// WorkerRepository exposes the worker's general role, used to infer an
// employment type for legacy salary records.
type WorkerRepository interface {
	// GetRole returns ErrWorkerNotFound when the worker has no profile row.
	GetRole(ctx context.Context, workerID string) (string, error)
}

// TaxRateRepository reads the per-employment-type default deduction rates.
type TaxRateRepository interface {
	// GetByEmploymentType returns ErrTaxRateNotFound when no row exists for
	// the type; that is an expected condition, not a failure.
	GetByEmploymentType(ctx context.Context, employmentType EmploymentType) (TaxRatePolicy, error)
}
