package attendance

import (
	"context"
	"time"
)

// Repository defines read access to attendance data. The payroll engine never
// writes attendance; creation and correction belong to the field subsystem.
type Repository interface {
	// ListByWorker returns the worker's records with work_date in [from, to],
	// optionally restricted to one site, ordered by work_date ascending.
	ListByWorker(ctx context.Context, workerID string, from, to time.Time, siteID *string) ([]Record, error)
}
