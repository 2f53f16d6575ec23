package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	IsHoliday(ctx context.Context, date time.Time, companyID string) (bool, error)

	// ListMonth returns the holidays of one calendar month.
	ListMonth(ctx context.Context, year int, month time.Month, companyID string) ([]Holiday, error)

	ListYear(ctx context.Context, year int, companyID string) ([]Holiday, error)
}
