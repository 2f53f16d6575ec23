package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/crestfin/crm-backend-go/internal/domain/holiday"
	"github.com/crestfin/crm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// IsHoliday implements holiday.HolidayRepository.
func (h *holidayRepository) IsHoliday(ctx context.Context, date time.Time, companyID string) (bool, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM holidays
			WHERE date = $1 AND company_id = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, date, companyID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}

	return exists, nil
}

// ListMonth implements holiday.HolidayRepository.
func (h *holidayRepository) ListMonth(ctx context.Context, year int, month time.Month, companyID string) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, company_id, date, name, created_at
		FROM holidays
		WHERE company_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, companyID, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

// ListYear implements holiday.HolidayRepository.
func (h *holidayRepository) ListYear(ctx context.Context, year int, companyID string) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, company_id, date, name, created_at
		FROM holidays
		WHERE company_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, companyID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

func collectHolidays(rows pgx.Rows) ([]holiday.Holiday, error) {
	holidays := []holiday.Holiday{}
	for rows.Next() {
		var hd holiday.Holiday
		if err := rows.Scan(&hd.ID, &hd.CompanyID, &hd.Date, &hd.Name, &hd.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, hd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}
	return holidays, nil
}
