package salary

import (
	"context"
	"time"
)

// Service is the payroll engine's public entry point. Both computations are
// pure functions of their inputs plus the current state of the attendance,
// policy and tax-rate stores; the engine itself has no side effects and is
// safe to call concurrently.
type Service interface {
	// ComputeDaily derives one day's pay for a worker.
	ComputeDaily(ctx context.Context, workerID string, date time.Time) (Result, error)

	// ComputeMonthly aggregates a calendar month of attendance, optionally
	// restricted to one site, and derives the month's pay.
	ComputeMonthly(ctx context.Context, workerID string, year, month int, siteID *string) (MonthlySalary, error)
}
