package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmploymentType enum
type EmploymentType string

const (
	EmploymentRegular     EmploymentType = "regular_employee"
	EmploymentDailyWorker EmploymentType = "daily_worker"
	EmploymentFreelancer  EmploymentType = "freelancer"
)

// AccruesOvertime reports whether this employment type earns overtime.
// Daily workers and freelancers are paid per labor-day and have no overtime
// concept.
func (t EmploymentType) AccruesOvertime() bool {
	return t == EmploymentRegular
}

// UsesSimplifiedTax reports whether this employment type falls under the
// simplified withholding scheme (3% income tax + 0.3% local tax, no social
// insurance).
func (t EmploymentType) UsesSimplifiedTax() bool {
	return t == EmploymentDailyWorker || t == EmploymentFreelancer
}

// DeductionKind enum, keys of custom rate maps and of the audit rates map on
// every result.
type DeductionKind string

const (
	DeductionIncomeTax           DeductionKind = "income_tax"
	DeductionLocalTax            DeductionKind = "local_tax"
	DeductionNationalPension     DeductionKind = "national_pension"
	DeductionHealthInsurance     DeductionKind = "health_insurance"
	DeductionEmploymentInsurance DeductionKind = "employment_insurance"
)

// Policy is the effective-dated pay terms for one worker. Policies are
// configured by HR and read-only to the engine; among all rows for a worker
// the one with the latest effective_date not after the target date wins.
type Policy struct {
	ID             string
	WorkerID       string
	EmploymentType EmploymentType
	HourlyRate     int64 // currency minor units
	EffectiveDate  time.Time
	EndDate        *time.Time
	CustomTaxRates map[DeductionKind]decimal.Decimal // percentages 0-100
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p Policy) HasCustomRates() bool {
	return len(p.CustomTaxRates) > 0
}

// TaxRatePolicy holds the default deduction percentages for one employment
// type. Reference data; a missing row for a type is a valid condition and
// triggers the configured fallback rates instead of an error.
type TaxRatePolicy struct {
	EmploymentType          EmploymentType
	IncomeTaxRate           decimal.Decimal
	NationalPensionRate     decimal.Decimal
	HealthInsuranceRate     decimal.Decimal
	EmploymentInsuranceRate decimal.Decimal
}

// RateSource enum, provenance tag recorded on every result so the deduction
// tier actually used can be audited after the fact.
type RateSource string

const (
	RateSourceCustom            RateSource = "custom"
	RateSourceEmploymentDefault RateSource = "employment_type_default"
)

// DeductionBreakdown is the itemized output of the deduction calculator.
// TotalDeductions is always the exact sum of the four components.
type DeductionBreakdown struct {
	TaxDeduction        int64 // income tax + local tax
	NationalPension     int64
	HealthInsurance     int64
	EmploymentInsurance int64
	TotalDeductions     int64
	RateSource          RateSource
	Rates               map[DeductionKind]decimal.Decimal
}
