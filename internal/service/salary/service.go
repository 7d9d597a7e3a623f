package salary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gpdavidyang/inopnc-payroll/internal/config"
	"github.com/gpdavidyang/inopnc-payroll/internal/domain/attendance"
	"github.com/gpdavidyang/inopnc-payroll/internal/domain/salary"
)

// OvertimeStrategy computes overtime pay from the daily rate and the overtime
// hours of the period. The premium multiplier is not settled product-wide, so
// the strategy is pluggable per deployment.
type OvertimeStrategy func(dailyRate int64, overtimeHours decimal.Decimal) int64

var overtimePremium = decimal.NewFromFloat(1.5)

// TimeAndAHalf pays each overtime hour at 1.5x the hourly rate derived from
// the daily rate.
func TimeAndAHalf(dailyRate int64, overtimeHours decimal.Decimal) int64 {
	return decimal.NewFromInt(dailyRate).
		Div(eightHours).
		Mul(overtimePremium).
		Mul(overtimeHours).
		Round(0).
		IntPart()
}

type SalaryServiceImpl struct {
	attendanceRepo attendance.Repository
	resolver       *PolicyResolver
	deductions     *DeductionCalculator
	overtimePay    OvertimeStrategy
	logger         *slog.Logger
}

func NewSalaryService(
	attendanceRepo attendance.Repository,
	policyRepo salary.PolicyRepository,
	workerRepo salary.WorkerRepository,
	taxRateRepo salary.TaxRateRepository,
	payrollCfg config.PayrollConfig,
	logger *slog.Logger,
) salary.Service {
	return &SalaryServiceImpl{
		attendanceRepo: attendanceRepo,
		resolver:       NewPolicyResolver(policyRepo, workerRepo, payrollCfg, logger),
		deductions:     NewDeductionCalculator(taxRateRepo, payrollCfg.FallbackRates, logger),
		overtimePay:    TimeAndAHalf,
		logger:         logger,
	}
}

func (s *SalaryServiceImpl) ComputeDaily(ctx context.Context, workerID string, date time.Time) (salary.Result, error) {
	policy, err := s.resolver.Resolve(ctx, workerID, date)
	if err != nil {
		return salary.Result{}, err
	}

	day := startOfDay(date)
	records, err := s.attendanceRepo.ListByWorker(ctx, workerID, day, day, nil)
	if err != nil {
		return salary.Result{}, fmt.Errorf("%w: %w", attendance.ErrFetchFailed, err)
	}

	agg := AggregateRecords(records, policy.EmploymentType)

	// base_pay = round(laborDays * hourlyRate * 8)
	basePay := decimal.NewFromInt(policy.HourlyRate).
		Mul(eightHours).
		Mul(agg.TotalLabor.Days()).
		Round(0).
		IntPart()

	breakdown := s.deductions.Apply(ctx, basePay, policy.EmploymentType, policy.CustomTaxRates)

	return s.assembleResult(workerID, policy, basePay, 0, breakdown), nil
}

func (s *SalaryServiceImpl) ComputeMonthly(ctx context.Context, workerID string, year, month int, siteID *string) (salary.MonthlySalary, error) {
	if month < 1 || month > 12 || year < 1 {
		return salary.MonthlySalary{}, salary.ErrInvalidPeriod
	}

	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListByWorker(ctx, workerID, periodStart, periodEnd, siteID)
	if err != nil {
		return salary.MonthlySalary{}, fmt.Errorf("%w: %w", attendance.ErrFetchFailed, err)
	}

	// The policy is evaluated once, as of period end.
	policy, err := s.resolver.Resolve(ctx, workerID, periodEnd)
	if err != nil {
		return salary.MonthlySalary{}, err
	}

	agg := AggregateRecords(records, policy.EmploymentType)

	dailyRate := policy.HourlyRate * 8
	basePay := decimal.NewFromInt(dailyRate).
		Mul(agg.TotalLabor.Days()).
		Round(0).
		IntPart()

	var overtimePay int64
	if policy.EmploymentType.AccruesOvertime() && agg.TotalOvertimeHours.IsPositive() {
		overtimePay = s.overtimePay(dailyRate, agg.TotalOvertimeHours)
	}

	totalGross := basePay + overtimePay
	breakdown := s.deductions.Apply(ctx, totalGross, policy.EmploymentType, policy.CustomTaxRates)

	return salary.MonthlySalary{
		Result:             s.assembleResult(workerID, policy, basePay, overtimePay, breakdown),
		WorkDays:           agg.WorkDays,
		TotalLaborHours:    agg.TotalLabor.Days(),
		TotalWorkHours:     agg.TotalWorkHours,
		TotalOvertimeHours: agg.TotalOvertimeHours,
		PeriodStart:        periodStart,
		PeriodEnd:          periodEnd,
		SiteID:             siteID,
	}, nil
}

func (s *SalaryServiceImpl) assembleResult(workerID string, policy salary.Policy, basePay, overtimePay int64, breakdown salary.DeductionBreakdown) salary.Result {
	totalGross := basePay + overtimePay

	return salary.Result{
		ComputationID:       uuid.NewString(),
		WorkerID:            workerID,
		EmploymentType:      policy.EmploymentType,
		BasePay:             basePay,
		OvertimePay:         overtimePay,
		TotalGrossPay:       totalGross,
		TaxDeduction:        breakdown.TaxDeduction,
		NationalPension:     breakdown.NationalPension,
		HealthInsurance:     breakdown.HealthInsurance,
		EmploymentInsurance: breakdown.EmploymentInsurance,
		TotalDeductions:     breakdown.TotalDeductions,
		NetPay:              totalGross - breakdown.TotalDeductions,
		RateSource:          breakdown.RateSource,
		Rates:               breakdown.Rates,
		ComputedAt:          time.Now().UTC(),
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
