package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gpdavidyang/inopnc-payroll/internal/domain/salary"
	"github.com/gpdavidyang/inopnc-payroll/internal/pkg/database"
)

type salaryPolicyRepository struct {
	db *database.DB
}

func NewSalaryPolicyRepository(db *database.DB) salary.PolicyRepository {
	return &salaryPolicyRepository{db: db}
}

func (r *salaryPolicyRepository) ListActiveByWorker(ctx context.Context, workerID string, asOf time.Time) ([]salary.Policy, error) {
	query := `
		SELECT id, worker_id, employment_type, hourly_rate,
			   effective_date, end_date, custom_tax_rates,
			   created_at, updated_at
		FROM worker_salary_settings
		WHERE worker_id = $1
		  AND effective_date <= $2
		  AND (end_date IS NULL OR end_date >= $2)
		ORDER BY effective_date DESC
	`

	rows, err := r.db.Query(ctx, query, workerID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary settings: %w", err)
	}
	defer rows.Close()

	var policies []salary.Policy
	for rows.Next() {
		var p salary.Policy
		var customRates []byte
		if err := rows.Scan(
			&p.ID, &p.WorkerID, &p.EmploymentType, &p.HourlyRate,
			&p.EffectiveDate, &p.EndDate, &customRates,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary setting: %w", err)
		}
		if p.CustomTaxRates, err = parseCustomRates(customRates); err != nil {
			return nil, fmt.Errorf("failed to parse custom tax rates: %w", err)
		}
		policies = append(policies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read salary settings: %w", err)
	}

	return policies, nil
}

// GetLegacyRecord reads the pre-migration salary table. It stores only the
// rate and dates; the employment type is inferred by the resolver from the
// worker's role.
func (r *salaryPolicyRepository) GetLegacyRecord(ctx context.Context, workerID string, asOf time.Time) (salary.Policy, error) {
	query := `
		SELECT id, worker_id, hourly_rate, effective_date, end_date, created_at, updated_at
		FROM salary_info
		WHERE worker_id = $1
		  AND effective_date <= $2
		  AND (end_date IS NULL OR end_date >= $2)
		ORDER BY effective_date DESC
		LIMIT 1
	`

	var p salary.Policy
	err := r.db.QueryRow(ctx, query, workerID, asOf).Scan(
		&p.ID, &p.WorkerID, &p.HourlyRate, &p.EffectiveDate, &p.EndDate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Policy{}, salary.ErrLegacyRecordNotFound
		}
		return salary.Policy{}, fmt.Errorf("failed to get legacy salary record: %w", err)
	}

	return p, nil
}

func parseCustomRates(raw []byte) (map[salary.DeductionKind]decimal.Decimal, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rates map[salary.DeductionKind]decimal.Decimal
	if err := json.Unmarshal(raw, &rates); err != nil {
		return nil, err
	}
	if len(rates) == 0 {
		return nil, nil
	}
	return rates, nil
}
