package salary

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gpdavidyang/inopnc-payroll/internal/domain/attendance"
	"github.com/gpdavidyang/inopnc-payroll/internal/domain/salary"
)

// presenceStatuses are attendance status values that imply the worker was on
// site that day even when no hours were recorded. Such rows exist because
// check-in flows on older mobile builds set only the status.
var presenceStatuses = map[string]struct{}{
	"present":     {},
	"late":        {},
	"in_progress": {},
	"working":     {},
	"checked_in":  {},
	"checked_out": {},
	"done":        {},
}

var eightHours = decimal.NewFromInt(8)

// Aggregate is the attendance summary for one worker over one period.
// TotalLabor is in labor-days.
type Aggregate struct {
	WorkDays           int
	TotalLabor         attendance.LaborDuration
	TotalWorkHours     decimal.Decimal
	TotalOvertimeHours decimal.Decimal
}

// dayHours is one record normalized to consistent units.
type dayHours struct {
	labor     attendance.LaborDuration
	workHours decimal.Decimal
	overtime  decimal.Decimal
}

// AggregateRecords normalizes each record into labor-days and work hours and
// sums them. Records are taken as supplied; filtering by worker, period and
// site is the caller's job.
func AggregateRecords(records []attendance.Record, employmentType salary.EmploymentType) Aggregate {
	agg := Aggregate{
		TotalWorkHours:     decimal.Zero,
		TotalOvertimeHours: decimal.Zero,
	}

	for _, record := range records {
		day := normalizeRecord(record, employmentType)

		if day.labor.IsPositive() || day.workHours.IsPositive() {
			agg.WorkDays++
		}
		agg.TotalLabor = agg.TotalLabor.Add(day.labor)
		agg.TotalWorkHours = agg.TotalWorkHours.Add(day.workHours)
		agg.TotalOvertimeHours = agg.TotalOvertimeHours.Add(day.overtime)
	}

	return agg
}

func normalizeRecord(record attendance.Record, employmentType salary.EmploymentType) dayHours {
	var labor attendance.LaborDuration
	if record.LaborHours.IsPositive() {
		labor = attendance.LaborDays(record.LaborHours)
	} else {
		labor = attendance.LaborHours(record.WorkHours)
	}

	workHours := record.WorkHours
	if !workHours.IsPositive() {
		workHours = labor.Hours()
	}

	// Presence inference: an empty-hours row whose status or check-in/out
	// timestamps show the worker was on site counts as exactly one labor-day.
	if labor.IsZero() && workHours.IsZero() && wasPresent(record) {
		labor = attendance.OneLaborDay()
		workHours = labor.Hours()
	}

	var overtime decimal.Decimal
	if employmentType.AccruesOvertime() {
		switch {
		case record.OvertimeHours.IsPositive():
			overtime = record.OvertimeHours
		case workHours.GreaterThan(eightHours):
			overtime = workHours.Sub(eightHours)
		default:
			overtime = decimal.Zero
		}
	} else {
		overtime = decimal.Zero
	}

	return dayHours{labor: labor, workHours: workHours, overtime: overtime}
}

func wasPresent(record attendance.Record) bool {
	status := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(record.Status)), "-", "_")
	if _, ok := presenceStatuses[status]; ok {
		return true
	}
	return record.CheckInTime != nil || record.CheckOutTime != nil
}
