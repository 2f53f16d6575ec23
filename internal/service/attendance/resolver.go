package attendance

import (
	"fmt"

	"github.com/crestfin/crm-backend-go/internal/domain/attendance"
)

// Resolve turns one employee-day's raw facts into a status and a
// day-count. Rules are checked in strict priority order; the first
// match wins.
//
// Lateness never appears here: a late punch-in with enough working
// hours still resolves to P. The late flag is annotated at punch-in
// time by the check-in service, as a separate pass over the same
// record.
func Resolve(facts attendance.DayFacts, policy attendance.Policy) attendance.StatusResult {
	if facts.IsHoliday {
		return attendance.StatusResult{
			Status: attendance.StatusHoliday,
			Count:  attendance.CountZero,
			Reason: "company holiday",
		}
	}

	if facts.IsWeekend {
		return attendance.StatusResult{
			Status: attendance.StatusHoliday,
			Count:  attendance.CountZero,
			Reason: "weekly off",
		}
	}

	switch facts.LeaveState {
	case attendance.LeaveApproved:
		return attendance.StatusResult{
			Status: attendance.StatusLeave,
			Count:  attendance.CountZero,
			Reason: "approved leave",
		}
	case attendance.LeavePending:
		return attendance.StatusResult{
			Status: attendance.StatusPendingLeave,
			Count:  attendance.CountZero,
			Reason: "leave request pending approval",
		}
	case attendance.LeaveAbsconding:
		return attendance.StatusResult{
			Status: attendance.StatusAbsconding,
			Count:  attendance.CountAbsconding,
			Reason: "marked absconding",
		}
	}

	if facts.PunchIn == "" || facts.PunchOut == "" {
		reason := "missing punch-out"
		if facts.PunchIn == "" {
			reason = "missing punch-in"
		}
		return attendance.StatusResult{
			Status: attendance.StatusIssue,
			Count:  attendance.CountZero,
			Reason: reason + ", needs HR correction",
		}
	}

	if facts.WorkingHours >= policy.FullDayWorkingHours {
		return attendance.StatusResult{
			Status: attendance.StatusPresent,
			Count:  attendance.CountFull,
			Reason: fmt.Sprintf("%.2f hours worked", facts.WorkingHours),
		}
	}

	if facts.WorkingHours >= policy.HalfDayMinimumWorkingHours {
		return attendance.StatusResult{
			Status: attendance.StatusHalfDay,
			Count:  attendance.CountHalf,
			Reason: fmt.Sprintf("only %.2f hours worked", facts.WorkingHours),
		}
	}

	return attendance.StatusResult{
		Status: attendance.StatusZero,
		Count:  attendance.CountZero,
		Reason: fmt.Sprintf("insufficient working hours (%.2f)", facts.WorkingHours),
	}
}
