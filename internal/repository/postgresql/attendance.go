package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gpdavidyang/inopnc-payroll/internal/domain/attendance"
	"github.com/gpdavidyang/inopnc-payroll/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) ListByWorker(ctx context.Context, workerID string, from, to time.Time, siteID *string) ([]attendance.Record, error) {
	query := `
		SELECT ar.id, ar.worker_id, ar.work_date, ar.site_id,
			   COALESCE(ar.work_hours, 0), COALESCE(ar.labor_hours, 0),
			   COALESCE(ar.overtime_hours, 0), COALESCE(ar.status, ''),
			   ar.check_in_time, ar.check_out_time,
			   ar.created_at, ar.updated_at
		FROM attendance_records ar
		WHERE ar.worker_id = $1
		  AND ar.work_date BETWEEN $2 AND $3
	`
	args := []interface{}{workerID, from, to}
	if siteID != nil {
		query += " AND ar.site_id = $4"
		args = append(args, *siteID)
	}
	query += " ORDER BY ar.work_date"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.WorkerID, &rec.WorkDate, &rec.SiteID,
			&rec.WorkHours, &rec.LaborHours,
			&rec.OvertimeHours, &rec.Status,
			&rec.CheckInTime, &rec.CheckOutTime,
			&rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return records, nil
}
