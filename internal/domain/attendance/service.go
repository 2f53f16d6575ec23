package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// CheckIn records a punch-in: face verification, geofence, grace
	// evaluation and the late annotation happen here.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes the open session and resolves the day's status
	// from the priority table.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetCalendar returns the per-day status grid plus monthly stats.
	GetCalendar(ctx context.Context, employeeID string, year int, month time.Month) (CalendarResponse, error)

	// Override replaces a record's status manually, bypassing the
	// resolver. The comment is mandatory.
	Override(ctx context.Context, req EditRequest) (AttendanceResponse, error)

	GetMyAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// ResolveDay recomputes and persists the status of all unresolved
	// records for a date. Used by the nightly job.
	ResolveDay(ctx context.Context, date time.Time) (int, error)

	// ApplySundaySandwich applies the weekend penalty for the week
	// ending at the given Sunday.
	ApplySundaySandwich(ctx context.Context, sunday time.Time) (int, error)
}
