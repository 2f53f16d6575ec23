package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/crestfin/crm-backend-go/internal/domain/attendance"
	"github.com/crestfin/crm-backend-go/internal/domain/leave"
)

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	leaveService      leave.LeaveService
}

func NewAttendanceJobs(
	attendanceService attendance.AttendanceService,
	leaveService leave.LeaveService,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceService: attendanceService,
		leaveService:      leaveService,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("resolve_previous_day", 1*time.Hour, j.ResolvePreviousDay)
	scheduler.AddJob("convert_stale_pending_leaves", 1*time.Hour, j.ConvertStalePendingLeaves)
	scheduler.AddJob("apply_sunday_sandwich", 1*time.Hour, j.ApplySundaySandwich)
}

// ResolvePreviousDay closes out yesterday's records that never got a
// punch-out, so they land as ISS instead of staying unmarked.
func (j *AttendanceJobs) ResolvePreviousDay(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1)

	resolved, err := j.attendanceService.ResolveDay(ctx, yesterday)
	if err != nil {
		return err
	}

	if resolved > 0 {
		slog.Info("Cron: Resolved previous day attendances", "count", resolved)
	}
	return nil
}

// ConvertStalePendingLeaves escalates leave requests stuck in pending
// past the policy threshold.
func (j *AttendanceJobs) ConvertStalePendingLeaves(ctx context.Context) error {
	// Only run at 01:00-01:59 UTC
	if time.Now().UTC().Hour() != 1 {
		return nil
	}

	converted, err := j.leaveService.ConvertStalePending(ctx)
	if err != nil {
		return err
	}

	if converted > 0 {
		slog.Info("Cron: Converted stale pending leaves", "count", converted)
	}
	return nil
}

// ApplySundaySandwich runs on Tuesdays, once the flanking Monday has
// been resolved, and targets the Sunday two days back.
func (j *AttendanceJobs) ApplySundaySandwich(ctx context.Context) error {
	now := time.Now().UTC()
	if now.Weekday() != time.Tuesday || now.Hour() != 2 {
		return nil
	}

	sunday := now.AddDate(0, 0, -2)

	penalized, err := j.attendanceService.ApplySundaySandwich(ctx, sunday)
	if err != nil {
		return err
	}

	if penalized > 0 {
		slog.Info("Cron: Applied sunday sandwich penalties", "count", penalized)
	}
	return nil
}
