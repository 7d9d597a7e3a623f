package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gpdavidyang/inopnc-payroll/internal/domain/salary"
	"github.com/gpdavidyang/inopnc-payroll/internal/pkg/database"
)

type taxRateRepository struct {
	db *database.DB
}

func NewTaxRateRepository(db *database.DB) salary.TaxRateRepository {
	return &taxRateRepository{db: db}
}

func (r *taxRateRepository) GetByEmploymentType(ctx context.Context, employmentType salary.EmploymentType) (salary.TaxRatePolicy, error) {
	query := `
		SELECT employment_type, income_tax_rate, national_pension_rate,
			   health_insurance_rate, employment_insurance_rate
		FROM employment_tax_rates
		WHERE employment_type = $1
	`

	var p salary.TaxRatePolicy
	err := r.db.QueryRow(ctx, query, employmentType).Scan(
		&p.EmploymentType, &p.IncomeTaxRate, &p.NationalPensionRate,
		&p.HealthInsuranceRate, &p.EmploymentInsuranceRate,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.TaxRatePolicy{}, salary.ErrTaxRateNotFound
		}
		return salary.TaxRatePolicy{}, fmt.Errorf("failed to get tax rate policy: %w", err)
	}

	return p, nil
}
