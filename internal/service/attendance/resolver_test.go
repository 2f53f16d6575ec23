package attendance

import (
	"testing"

	"github.com/crestfin/crm-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func TestResolve_PriorityOrder(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()

	// holiday wins over everything, even an absconding mark
	result := Resolve(attendance.DayFacts{
		IsHoliday:  true,
		LeaveState: attendance.LeaveAbsconding,
	}, policy)
	assert.Equal(t, attendance.StatusHoliday, result.Status)
	assert.True(t, result.Count.Equal(attendance.CountZero))

	// weekend wins over leave
	result = Resolve(attendance.DayFacts{
		IsWeekend:  true,
		LeaveState: attendance.LeaveApproved,
	}, policy)
	assert.Equal(t, attendance.StatusHoliday, result.Status)

	// leave wins over punch data
	result = Resolve(attendance.DayFacts{
		PunchIn:      "09:00",
		PunchOut:     "19:00",
		WorkingHours: 10,
		LeaveState:   attendance.LeaveApproved,
	}, policy)
	assert.Equal(t, attendance.StatusLeave, result.Status)
}

func TestResolve_LeaveStates(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()

	tests := []struct {
		name   string
		state  attendance.LeaveState
		status attendance.DayStatus
		count  string
	}{
		{"approved", attendance.LeaveApproved, attendance.StatusLeave, "0"},
		{"pending", attendance.LeavePending, attendance.StatusPendingLeave, "0"},
		{"absconding", attendance.LeaveAbsconding, attendance.StatusAbsconding, "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Resolve(attendance.DayFacts{LeaveState: tt.state}, policy)
			assert.Equal(t, tt.status, result.Status)
			assert.Equal(t, tt.count, result.Count.String())
		})
	}
}

func TestResolve_MissingPunch(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()

	// punch-in without punch-out is an issue no matter the hours
	result := Resolve(attendance.DayFacts{
		PunchIn:      "09:00",
		WorkingHours: 10,
	}, policy)
	assert.Equal(t, attendance.StatusIssue, result.Status)
	assert.Contains(t, result.Reason, "missing punch-out")

	result = Resolve(attendance.DayFacts{
		PunchOut:     "19:00",
		WorkingHours: 10,
	}, policy)
	assert.Equal(t, attendance.StatusIssue, result.Status)
	assert.Contains(t, result.Reason, "missing punch-in")
}

func TestResolve_WorkingHoursThresholds(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()

	tests := []struct {
		name   string
		hours  float64
		status attendance.DayStatus
		count  string
	}{
		{"full day exact", 9.0, attendance.StatusPresent, "1"},
		{"over full day", 10.5, attendance.StatusPresent, "1"},
		{"just under full", 8.999, attendance.StatusHalfDay, "0.5"},
		{"half day exact", 5.0, attendance.StatusHalfDay, "0.5"},
		{"just under half", 4.999, attendance.StatusZero, "0"},
		{"barely worked", 0.25, attendance.StatusZero, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Resolve(attendance.DayFacts{
				PunchIn:      "09:00",
				PunchOut:     "19:00",
				WorkingHours: tt.hours,
			}, policy)
			assert.Equal(t, tt.status, result.Status)
			assert.Equal(t, tt.count, result.Count.String())
		})
	}
}

func TestResolve_LatePunchStillPresent(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()

	// came in at 11:00, well past the deadline, but worked a full day:
	// the resolver still says P. Lateness is annotated separately at
	// punch-in time.
	result := Resolve(attendance.DayFacts{
		PunchIn:      "11:00",
		PunchOut:     "20:30",
		WorkingHours: 9.5,
	}, policy)
	assert.Equal(t, attendance.StatusPresent, result.Status)
	assert.True(t, result.Count.Equal(attendance.CountFull))
}

func TestParseDayStatus_Synonyms(t *testing.T) {
	t.Parallel()

	assert.Equal(t, attendance.StatusIssue, attendance.ParseDayStatus("ISSUE"))
	assert.Equal(t, attendance.StatusZero, attendance.ParseDayStatus("ZERO"))
	assert.Equal(t, attendance.StatusIssue, attendance.ParseDayStatus("ISS"))
	assert.Equal(t, attendance.StatusZero, attendance.ParseDayStatus("Z"))
	assert.Equal(t, attendance.StatusNotMarked, attendance.ParseDayStatus("WAT"))
	assert.Equal(t, attendance.StatusNotMarked, attendance.ParseDayStatus("p"))
}
