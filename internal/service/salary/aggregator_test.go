package salary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gpdavidyang/inopnc-payroll/internal/domain/attendance"
	"github.com/gpdavidyang/inopnc-payroll/internal/domain/salary"
)

func record(workHours, laborHours, overtimeHours string) attendance.Record {
	return attendance.Record{
		WorkerID:      "worker-1",
		WorkDate:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		WorkHours:     decimal.RequireFromString(workHours),
		LaborHours:    decimal.RequireFromString(laborHours),
		OvertimeHours: decimal.RequireFromString(overtimeHours),
	}
}

func TestAggregateRecords_WorkHoursOnly(t *testing.T) {
	agg := AggregateRecords([]attendance.Record{record("8", "0", "0")}, salary.EmploymentRegular)

	assert.Equal(t, 1, agg.WorkDays)
	assert.True(t, agg.TotalLabor.Days().Equal(decimal.NewFromInt(1)), "labor = %s", agg.TotalLabor.Days())
	assert.True(t, agg.TotalWorkHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, agg.TotalOvertimeHours.IsZero())
}

func TestAggregateRecords_LaborHoursOnly(t *testing.T) {
	agg := AggregateRecords([]attendance.Record{record("0", "0.5", "0")}, salary.EmploymentRegular)

	assert.Equal(t, 1, agg.WorkDays)
	assert.True(t, agg.TotalLabor.Days().Equal(decimal.RequireFromString("0.5")))
	assert.True(t, agg.TotalWorkHours.Equal(decimal.NewFromInt(4)), "work hours = %s", agg.TotalWorkHours)
}

func TestAggregateRecords_InferredOvertime(t *testing.T) {
	// 10 recorded hours with no explicit overtime yields 2 inferred hours.
	agg := AggregateRecords([]attendance.Record{record("10", "0", "0")}, salary.EmploymentRegular)

	assert.True(t, agg.TotalOvertimeHours.Equal(decimal.NewFromInt(2)), "overtime = %s", agg.TotalOvertimeHours)
	assert.True(t, agg.TotalLabor.Days().Equal(decimal.RequireFromString("1.25")))
}

func TestAggregateRecords_RecordedOvertimeWins(t *testing.T) {
	agg := AggregateRecords([]attendance.Record{record("8", "0", "3")}, salary.EmploymentRegular)

	assert.True(t, agg.TotalOvertimeHours.Equal(decimal.NewFromInt(3)))
}

func TestAggregateRecords_OvertimeExemptTypes(t *testing.T) {
	records := []attendance.Record{
		record("12", "0", "0"),
		record("8", "0", "5"),
	}

	for _, et := range []salary.EmploymentType{salary.EmploymentDailyWorker, salary.EmploymentFreelancer} {
		t.Run(string(et), func(t *testing.T) {
			agg := AggregateRecords(records, et)
			assert.True(t, agg.TotalOvertimeHours.IsZero(),
				"overtime = %s for %s", agg.TotalOvertimeHours, et)
		})
	}
}

func TestAggregateRecords_PresenceInference(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*attendance.Record)
	}{
		{"status checked_in", func(r *attendance.Record) { r.Status = "checked_in" }},
		{"status with dash", func(r *attendance.Record) { r.Status = "checked-out" }},
		{"status uppercase", func(r *attendance.Record) { r.Status = "Present" }},
		{"check-in timestamp only", func(r *attendance.Record) {
			in := time.Date(2025, 6, 2, 7, 30, 0, 0, time.UTC)
			r.CheckInTime = &in
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := record("0", "0", "0")
			tc.modify(&rec)

			agg := AggregateRecords([]attendance.Record{rec}, salary.EmploymentRegular)

			assert.Equal(t, 1, agg.WorkDays)
			assert.True(t, agg.TotalLabor.Days().Equal(decimal.NewFromInt(1)))
			assert.True(t, agg.TotalWorkHours.Equal(decimal.NewFromInt(8)))
		})
	}
}

func TestAggregateRecords_EmptyRowNotCounted(t *testing.T) {
	rec := record("0", "0", "0")
	rec.Status = "absent"

	agg := AggregateRecords([]attendance.Record{rec}, salary.EmploymentRegular)

	assert.Equal(t, 0, agg.WorkDays)
	assert.True(t, agg.TotalLabor.IsZero())
	assert.True(t, agg.TotalWorkHours.IsZero())
}

func TestAggregateRecords_MonthOfLaborDays(t *testing.T) {
	var records []attendance.Record
	for i := 0; i < 20; i++ {
		records = append(records, record("0", "1.0", "0"))
	}

	agg := AggregateRecords(records, salary.EmploymentDailyWorker)

	assert.Equal(t, 20, agg.WorkDays)
	assert.True(t, agg.TotalLabor.Days().Equal(decimal.NewFromInt(20)))
	assert.True(t, agg.TotalWorkHours.Equal(decimal.NewFromInt(160)))
	assert.True(t, agg.TotalOvertimeHours.IsZero())
}
