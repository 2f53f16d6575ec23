package attendance

import (
	"testing"

	"github.com/crestfin/crm-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func fullWeek() attendance.WeekSummary {
	return attendance.WeekSummary{
		SaturdayStatus: attendance.StatusPresent,
		MondayStatus:   attendance.StatusPresent,
		WorkingDays:    6,
	}
}

func TestEvaluateSundaySandwich_NoPenalty(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()

	d := EvaluateSundaySandwich(fullWeek(), policy)
	assert.False(t, d.Penalize)
}

func TestEvaluateSundaySandwich_Disabled(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()
	policy.EnableSundaySandwichRule = false

	week := fullWeek()
	week.SaturdayStatus = attendance.StatusAbsconding
	week.MondayStatus = attendance.StatusAbsconding
	week.WorkingDays = 0

	assert.False(t, EvaluateSundaySandwich(week, policy).Penalize)
}

func TestEvaluateSundaySandwich_Triggers(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()

	tests := []struct {
		name     string
		mutate   func(*attendance.WeekSummary)
		penalize bool
	}{
		{"saturday absconding", func(w *attendance.WeekSummary) {
			w.SaturdayStatus = attendance.StatusAbsconding
		}, true},
		{"saturday pending leave", func(w *attendance.WeekSummary) {
			w.SaturdayStatus = attendance.StatusPendingLeave
		}, true},
		{"monday absconding", func(w *attendance.WeekSummary) {
			w.MondayStatus = attendance.StatusAbsconding
		}, true},
		{"monday pending leave", func(w *attendance.WeekSummary) {
			w.MondayStatus = attendance.StatusPendingLeave
		}, true},
		{"saturday approved leave is safe", func(w *attendance.WeekSummary) {
			w.SaturdayStatus = attendance.StatusLeave
		}, false},
		{"monday half day is safe", func(w *attendance.WeekSummary) {
			w.MondayStatus = attendance.StatusHalfDay
		}, false},
		{"too few working days", func(w *attendance.WeekSummary) {
			w.WorkingDays = 4
		}, true},
		{"minimum working days is enough", func(w *attendance.WeekSummary) {
			w.WorkingDays = 5
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := fullWeek()
			tt.mutate(&week)
			assert.Equal(t, tt.penalize, EvaluateSundaySandwich(week, policy).Penalize)
		})
	}
}

func TestEvaluateSundaySandwich_SaturdayCitedFirst(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()

	week := fullWeek()
	week.SaturdayStatus = attendance.StatusAbsconding
	week.MondayStatus = attendance.StatusAbsconding

	d := EvaluateSundaySandwich(week, policy)
	assert.True(t, d.Penalize)
	assert.Contains(t, d.Reason, "Saturday")
}

func TestEvaluateSundaySandwich_AlreadyApplied(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()

	// the guard makes re-running the job a no-op
	week := fullWeek()
	week.SaturdayStatus = attendance.StatusAbsconding
	week.PenaltyApplied = true

	assert.False(t, EvaluateSundaySandwich(week, policy).Penalize)
}
