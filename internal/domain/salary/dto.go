package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Result is the outcome of a single-period payroll computation. The two sum
// invariants hold exactly in integer arithmetic:
//
//	TotalDeductions == TaxDeduction + NationalPension + HealthInsurance + EmploymentInsurance
//	NetPay          == TotalGrossPay - TotalDeductions
type Result struct {
	ComputationID  string         `json:"computation_id"`
	WorkerID       string         `json:"worker_id"`
	EmploymentType EmploymentType `json:"employment_type"`

	BasePay       int64 `json:"base_pay"`
	OvertimePay   int64 `json:"overtime_pay"`
	TotalGrossPay int64 `json:"total_gross_pay"`

	TaxDeduction        int64 `json:"tax_deduction"`
	NationalPension     int64 `json:"national_pension"`
	HealthInsurance     int64 `json:"health_insurance"`
	EmploymentInsurance int64 `json:"employment_insurance"`
	TotalDeductions     int64 `json:"total_deductions"`
	NetPay              int64 `json:"net_pay"`

	RateSource RateSource                        `json:"rate_source"`
	Rates      map[DeductionKind]decimal.Decimal `json:"rates"`
	ComputedAt time.Time                         `json:"computed_at"`
}

// MonthlySalary extends Result with the attendance aggregates of the period.
// TotalLaborHours is in labor-days (1.0 per full 8-hour day).
type MonthlySalary struct {
	Result

	WorkDays           int             `json:"work_days"`
	TotalLaborHours    decimal.Decimal `json:"total_labor_hours"`
	TotalWorkHours     decimal.Decimal `json:"total_work_hours"`
	TotalOvertimeHours decimal.Decimal `json:"total_overtime_hours"`
	PeriodStart        time.Time       `json:"period_start"`
	PeriodEnd          time.Time       `json:"period_end"`
	SiteID             *string         `json:"site_id,omitempty"`
}
