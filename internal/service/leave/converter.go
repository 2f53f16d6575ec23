package leave

import (
	"time"

	"github.com/crestfin/crm-backend-go/internal/domain/leave"
)

// ConvertStale escalates a leave request stuck in pending for too
// long: once days_pending reaches the policy threshold the request
// becomes absconding. Re-running on a converted record is a no-op
// because the status is no longer pending.
func ConvertStale(req leave.LeaveRequest, now time.Time, autoConvertDays int) (leave.LeaveRequest, bool) {
	if req.Status != leave.StatusPending {
		return req, false
	}

	if req.DaysPending(now) < autoConvertDays {
		return req, false
	}

	req.Status = leave.StatusAbsconding
	req.AutoConverted = true
	converted := now
	req.AutoConvertedAt = &converted

	return req, true
}

// DaysUntilConvert is the countdown shown next to a pending request.
// Zero for requests that are not pending or are already due.
func DaysUntilConvert(req leave.LeaveRequest, now time.Time, autoConvertDays int) int {
	if req.Status != leave.StatusPending {
		return 0
	}
	remaining := autoConvertDays - req.DaysPending(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
