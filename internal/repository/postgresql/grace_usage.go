package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/crestfin/crm-backend-go/internal/domain/attendance"
	"github.com/crestfin/crm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type graceUsageRepository struct {
	db *database.DB
}

func NewGraceUsageRepository(db *database.DB) attendance.GraceUsageRepository {
	return &graceUsageRepository{db: db}
}

// GetForUpdate implements attendance.GraceUsageRepository. The row is
// locked until the surrounding transaction commits, so two punch-ins
// racing for the last grace slot serialize here.
func (g *graceUsageRepository) GetForUpdate(ctx context.Context, employeeID string, year int, month time.Month) (attendance.GraceUsage, error) {
	q := GetQuerier(ctx, g.db)

	query := `
		SELECT employee_id, year, month, used
		FROM grace_usages
		WHERE employee_id = $1 AND year = $2 AND month = $3
		FOR UPDATE
	`

	var usage attendance.GraceUsage
	err := q.QueryRow(ctx, query, employeeID, year, int(month)).Scan(
		&usage.EmployeeID, &usage.Year, &usage.Month, &usage.Used,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.GraceUsage{
				EmployeeID: employeeID,
				Year:       year,
				Month:      int(month),
				Used:       0,
			}, nil
		}
		return attendance.GraceUsage{}, fmt.Errorf("failed to get grace usage: %w", err)
	}

	return usage, nil
}

// Increment implements attendance.GraceUsageRepository.
func (g *graceUsageRepository) Increment(ctx context.Context, employeeID string, year int, month time.Month) error {
	q := GetQuerier(ctx, g.db)

	query := `
		INSERT INTO grace_usages (employee_id, year, month, used)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (employee_id, year, month)
		DO UPDATE SET used = grace_usages.used + 1, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, employeeID, year, int(month)); err != nil {
		return fmt.Errorf("failed to increment grace usage: %w", err)
	}

	return nil
}
