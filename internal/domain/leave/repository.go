package leave

import (
	"context"
	"time"
)

// LeaveRepository defines data access for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string, companyID string) (LeaveRequest, error)

	Update(ctx context.Context, req LeaveRequest) error

	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]LeaveRequest, error)

	// GetForDate returns the leave request covering the given date for
	// an employee, or nil when none does.
	GetForDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*LeaveRequest, error)

	// ListStalePending returns requests still pending that were
	// submitted on or before the cutoff. Feeds the auto-converter.
	ListStalePending(ctx context.Context, cutoff time.Time) ([]LeaveRequest, error)
}
