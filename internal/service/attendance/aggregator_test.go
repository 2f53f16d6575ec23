package attendance

import (
	"testing"

	"github.com/crestfin/crm-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func entry(day int, status attendance.DayStatus, late bool) attendance.DayEntry {
	e := attendance.DayEntry{Day: day, Late: late}
	e.Result.Status = status
	switch status {
	case attendance.StatusPresent, attendance.StatusLate:
		e.Result.Count = attendance.CountFull
	case attendance.StatusHalfDay:
		e.Result.Count = attendance.CountHalf
	case attendance.StatusAbsconding:
		e.Result.Count = attendance.CountAbsconding
	default:
		e.Result.Count = attendance.CountZero
	}
	return e
}

func TestAggregate_PerfectMonth(t *testing.T) {
	t.Parallel()

	// 30-day month, 4 Sundays as holidays, rest all present
	entries := []attendance.DayEntry{}
	for day := 1; day <= 30; day++ {
		if day%7 == 0 {
			entries = append(entries, entry(day, attendance.StatusHoliday, false))
			continue
		}
		entries = append(entries, entry(day, attendance.StatusPresent, false))
	}

	stats := Aggregate(entries, 30, 4)

	assert.Equal(t, 26, stats.Present)
	assert.Equal(t, 4, stats.Holiday)
	assert.Equal(t, 26, stats.WorkingDays)
	assert.Equal(t, "100.0", stats.AttendancePercentage.StringFixed(1))
}

func TestAggregate_LateShadowsWorkBuckets(t *testing.T) {
	t.Parallel()

	entries := []attendance.DayEntry{
		entry(1, attendance.StatusPresent, false),
		entry(2, attendance.StatusPresent, true), // late but full hours
		entry(3, attendance.StatusHalfDay, true), // late and short
		entry(4, attendance.StatusLeave, true),   // late flag cannot shadow leave
	}

	stats := Aggregate(entries, 4, 0)

	assert.Equal(t, 1, stats.Present)
	assert.Equal(t, 2, stats.Late)
	assert.Equal(t, 0, stats.HalfDay)
	assert.Equal(t, 1, stats.Leave)
}

func TestAggregate_MixedMonth(t *testing.T) {
	t.Parallel()

	entries := []attendance.DayEntry{
		entry(1, attendance.StatusPresent, false),
		entry(2, attendance.StatusPresent, false),
		entry(3, attendance.StatusLate, false),
		entry(4, attendance.StatusHalfDay, false),
		entry(5, attendance.StatusLeave, false),
		entry(6, attendance.StatusPendingLeave, false),
		entry(7, attendance.StatusHoliday, false),
		entry(8, attendance.StatusAbsconding, false),
		entry(9, attendance.StatusIssue, false),
		entry(10, attendance.StatusZero, false),
		entry(11, attendance.StatusNotMarked, false),
	}

	stats := Aggregate(entries, 11, 1)

	assert.Equal(t, 2, stats.Present)
	assert.Equal(t, 1, stats.Late)
	assert.Equal(t, 1, stats.HalfDay)
	assert.Equal(t, 1, stats.Leave)
	assert.Equal(t, 1, stats.PendingLeave)
	assert.Equal(t, 1, stats.Holiday)
	assert.Equal(t, 1, stats.Absconding)
	assert.Equal(t, 1, stats.Issue)
	assert.Equal(t, 1, stats.Zero)
	assert.Equal(t, 1, stats.NotMarked)

	// (2 present + 1 late + 1 half day) / 10 working days
	assert.Equal(t, 10, stats.WorkingDays)
	assert.Equal(t, "40.0", stats.AttendancePercentage.StringFixed(1))
}

func TestAggregate_EmptyMonth(t *testing.T) {
	t.Parallel()

	stats := Aggregate(nil, 30, 30)
	assert.Equal(t, 0, stats.WorkingDays)
	assert.True(t, stats.AttendancePercentage.IsZero())
}

func TestAggregate_PercentageRounding(t *testing.T) {
	t.Parallel()

	// 2 present out of 3 working days: 66.666... rounds to 66.7
	entries := []attendance.DayEntry{
		entry(1, attendance.StatusPresent, false),
		entry(2, attendance.StatusPresent, false),
		entry(3, attendance.StatusZero, false),
	}

	stats := Aggregate(entries, 3, 0)
	assert.Equal(t, "66.7", stats.AttendancePercentage.StringFixed(1))
}
