package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
// Methods carry companyID to prevent cross-company data access.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string, companyID string) (Attendance, error)

	// GetByEmployeeAndDate is used to prevent double punch-in. Returns
	// nil when no record exists for the date.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*Attendance, error)

	Update(ctx context.Context, attendance Attendance) error

	List(ctx context.Context, filter AttendanceFilter, companyID string) ([]Attendance, int64, error)

	// GetMonth returns all records for one employee in a calendar
	// month, ordered by date.
	GetMonth(ctx context.Context, employeeID string, year int, month time.Month, companyID string) ([]Attendance, error)

	// GetOpenSession returns the punch-in record without a punch-out.
	GetOpenSession(ctx context.Context, employeeID string) (Attendance, error)

	// ListUnresolved returns records for a date that still need their
	// end-of-day status computed.
	ListUnresolved(ctx context.Context, date time.Time) ([]Attendance, error)
}

// GraceUsageRepository manages the per-employee monthly grace counter.
// GetForUpdate must be called inside a transaction; it locks the row
// until Increment commits so concurrent punch-ins cannot both consume
// the last grace slot.
type GraceUsageRepository interface {
	GetForUpdate(ctx context.Context, employeeID string, year int, month time.Month) (GraceUsage, error)
	Increment(ctx context.Context, employeeID string, year int, month time.Month) error
}
