package attendance

import (
	"github.com/crestfin/crm-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Aggregate folds one employee's month of resolved days into summary
// counters and an attendance percentage.
//
// A day flagged late at punch-in lands in the Late bucket instead of
// its resolver bucket, mirroring how the calendar displays it as "L".
// Working days are the calendar days minus company holidays; only
// holidays shrink the denominator, absences do not.
func Aggregate(entries []attendance.DayEntry, daysInMonth int, holidayCount int) attendance.MonthlyStats {
	stats := attendance.MonthlyStats{}

	for _, e := range entries {
		if e.Late && countedForWork(e.Result.Status) {
			stats.Late++
			continue
		}

		switch e.Result.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusLate:
			stats.Late++
		case attendance.StatusHalfDay:
			stats.HalfDay++
		case attendance.StatusLeave:
			stats.Leave++
		case attendance.StatusPendingLeave:
			stats.PendingLeave++
		case attendance.StatusHoliday:
			stats.Holiday++
		case attendance.StatusAbsconding:
			stats.Absconding++
		case attendance.StatusIssue:
			stats.Issue++
		case attendance.StatusZero:
			stats.Zero++
		default:
			stats.NotMarked++
		}
	}

	stats.WorkingDays = daysInMonth - holidayCount

	if stats.WorkingDays > 0 {
		attended := decimal.NewFromInt(int64(stats.Present + stats.Late + stats.HalfDay))
		stats.AttendancePercentage = attended.
			Div(decimal.NewFromInt(int64(stats.WorkingDays))).
			Mul(hundred).
			Round(1)
	} else {
		stats.AttendancePercentage = decimal.Zero
	}

	return stats
}

// countedForWork reports whether a status came from the working-hours
// rules, the only ones the punch-in late flag can shadow.
func countedForWork(s attendance.DayStatus) bool {
	switch s {
	case attendance.StatusPresent, attendance.StatusHalfDay, attendance.StatusZero:
		return true
	}
	return false
}
