package salary

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/gpdavidyang/inopnc-payroll/internal/config"
	"github.com/gpdavidyang/inopnc-payroll/internal/domain/salary"
)

var hundred = decimal.NewFromInt(100)

// Simplified withholding for daily workers and freelancers: 3% income tax
// plus 0.3% local tax, no social insurance.
var (
	simplifiedIncomeTaxRate = decimal.NewFromInt(3)
	simplifiedLocalTaxRate  = decimal.NewFromFloat(0.3)
)

// DeductionCalculator applies the tiered deduction policy to a gross pay
// figure. It never returns an error: a missing tax-rate row or a tax-store
// fault degrades to the configured fallback rates, because payroll must
// always produce a net pay. The tier used is recorded in RateSource/Rates.
type DeductionCalculator struct {
	taxRates salary.TaxRateRepository
	fallback config.FallbackRates
	logger   *slog.Logger
}

func NewDeductionCalculator(taxRates salary.TaxRateRepository, fallback config.FallbackRates, logger *slog.Logger) *DeductionCalculator {
	return &DeductionCalculator{
		taxRates: taxRates,
		fallback: fallback,
		logger:   logger,
	}
}

// Apply evaluates the tiers in order: worker custom rates, simplified rates
// for daily workers and freelancers, the employment-type reference table,
// then the configured hard fallback.
func (c *DeductionCalculator) Apply(
	ctx context.Context,
	grossPay int64,
	employmentType salary.EmploymentType,
	customRates map[salary.DeductionKind]decimal.Decimal,
) (breakdown salary.DeductionBreakdown) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("deduction calculation fault, degrading to fallback rates",
				slog.String("employment_type", string(employmentType)),
				slog.Any("fault", r),
			)
			breakdown = c.fallbackBreakdown(grossPay)
		}
	}()

	if len(customRates) > 0 {
		return c.applyCustomRates(grossPay, customRates)
	}
	if employmentType.UsesSimplifiedTax() {
		return c.applySimplifiedRates(grossPay)
	}
	return c.applyDefaultRates(ctx, grossPay, employmentType)
}

// applyCustomRates uses worker-specific overrides. Local tax is intentionally
// computed on the income-tax amount rather than on gross pay, matching how
// the rates were entered in production data.
func (c *DeductionCalculator) applyCustomRates(grossPay int64, rates map[salary.DeductionKind]decimal.Decimal) salary.DeductionBreakdown {
	incomeTax := floorPercent(grossPay, rates[salary.DeductionIncomeTax])
	localTax := floorPercent(incomeTax, rates[salary.DeductionLocalTax])
	pension := floorPercent(grossPay, rates[salary.DeductionNationalPension])
	health := floorPercent(grossPay, rates[salary.DeductionHealthInsurance])
	employment := floorPercent(grossPay, rates[salary.DeductionEmploymentInsurance])

	recorded := make(map[salary.DeductionKind]decimal.Decimal, len(rates))
	for kind, rate := range rates {
		recorded[kind] = rate
	}

	return newBreakdown(incomeTax+localTax, pension, health, employment, salary.RateSourceCustom, recorded)
}

func (c *DeductionCalculator) applySimplifiedRates(grossPay int64) salary.DeductionBreakdown {
	incomeTax := floorPercent(grossPay, simplifiedIncomeTaxRate)
	localTax := floorPercent(grossPay, simplifiedLocalTaxRate)

	rates := map[salary.DeductionKind]decimal.Decimal{
		salary.DeductionIncomeTax:           simplifiedIncomeTaxRate,
		salary.DeductionLocalTax:            simplifiedLocalTaxRate,
		salary.DeductionNationalPension:     decimal.Zero,
		salary.DeductionHealthInsurance:     decimal.Zero,
		salary.DeductionEmploymentInsurance: decimal.Zero,
	}

	return newBreakdown(incomeTax+localTax, 0, 0, 0, salary.RateSourceEmploymentDefault, rates)
}

func (c *DeductionCalculator) applyDefaultRates(ctx context.Context, grossPay int64, employmentType salary.EmploymentType) salary.DeductionBreakdown {
	policy, err := c.taxRates.GetByEmploymentType(ctx, employmentType)
	if err != nil {
		if !errors.Is(err, salary.ErrTaxRateNotFound) {
			c.logger.Warn("tax rate lookup failed, degrading to fallback rates",
				slog.String("employment_type", string(employmentType)),
				slog.String("error", err.Error()),
			)
		}
		return c.fallbackBreakdown(grossPay)
	}

	incomeTax := floorPercent(grossPay, policy.IncomeTaxRate)
	pension := floorPercent(grossPay, policy.NationalPensionRate)
	health := floorPercent(grossPay, policy.HealthInsuranceRate)
	employment := floorPercent(grossPay, policy.EmploymentInsuranceRate)

	rates := map[salary.DeductionKind]decimal.Decimal{
		salary.DeductionIncomeTax:           policy.IncomeTaxRate,
		salary.DeductionNationalPension:     policy.NationalPensionRate,
		salary.DeductionHealthInsurance:     policy.HealthInsuranceRate,
		salary.DeductionEmploymentInsurance: policy.EmploymentInsuranceRate,
	}

	return newBreakdown(incomeTax, pension, health, employment, salary.RateSourceEmploymentDefault, rates)
}

func (c *DeductionCalculator) fallbackBreakdown(grossPay int64) salary.DeductionBreakdown {
	incomeTax := floorPercent(grossPay, c.fallback.IncomeTax)
	pension := floorPercent(grossPay, c.fallback.NationalPension)
	health := floorPercent(grossPay, c.fallback.HealthInsurance)
	employment := floorPercent(grossPay, c.fallback.EmploymentInsurance)

	// The literal rates are recorded so the degraded computation stays
	// auditable.
	rates := map[salary.DeductionKind]decimal.Decimal{
		salary.DeductionIncomeTax:           c.fallback.IncomeTax,
		salary.DeductionNationalPension:     c.fallback.NationalPension,
		salary.DeductionHealthInsurance:     c.fallback.HealthInsurance,
		salary.DeductionEmploymentInsurance: c.fallback.EmploymentInsurance,
	}

	return newBreakdown(incomeTax, pension, health, employment, salary.RateSourceEmploymentDefault, rates)
}

func newBreakdown(taxDeduction, pension, health, employment int64, source salary.RateSource, rates map[salary.DeductionKind]decimal.Decimal) salary.DeductionBreakdown {
	return salary.DeductionBreakdown{
		TaxDeduction:        taxDeduction,
		NationalPension:     pension,
		HealthInsurance:     health,
		EmploymentInsurance: employment,
		TotalDeductions:     taxDeduction + pension + health + employment,
		RateSource:          source,
		Rates:               rates,
	}
}

// floorPercent is the rounding contract for every deduction component:
// floor(amount * rate / 100) in integer currency units.
func floorPercent(amount int64, ratePercent decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(ratePercent).Div(hundred).Floor().IntPart()
}
