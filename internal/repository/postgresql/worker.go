package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gpdavidyang/inopnc-payroll/internal/domain/salary"
	"github.com/gpdavidyang/inopnc-payroll/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) salary.WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) GetRole(ctx context.Context, workerID string) (string, error) {
	query := `
		SELECT COALESCE(role, '')
		FROM profiles
		WHERE id = $1
	`

	var role string
	err := r.db.QueryRow(ctx, query, workerID).Scan(&role)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", salary.ErrWorkerNotFound
		}
		return "", fmt.Errorf("failed to get worker role: %w", err)
	}

	return role, nil
}
