package attendance

import (
	"testing"

	"github.com/crestfin/crm-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateGrace_OnTime(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()

	d := EvaluateGrace("09:30", policy, 0)
	assert.False(t, d.WithinGrace)
	assert.Equal(t, 0, d.MinutesLate)

	// exactly at the deadline is not late
	d = EvaluateGrace("10:15", policy, 0)
	assert.False(t, d.WithinGrace)
	assert.Equal(t, 0, d.MinutesLate)
}

func TestEvaluateGrace_WithinWindow(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()

	tests := []struct {
		name        string
		punchIn     string
		used        int
		withinGrace bool
		minutesLate int
	}{
		{"one minute late", "10:16", 0, true, 1},
		{"at window edge", "10:45", 0, true, 30},
		{"past window", "10:46", 0, false, 31},
		{"way past window", "12:00", 0, false, 105},
		{"quota left", "10:30", 1, true, 15},
		{"quota exhausted", "10:30", 2, false, 15},
		{"quota over-exhausted", "10:30", 5, false, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := EvaluateGrace(tt.punchIn, policy, tt.used)
			assert.Equal(t, tt.withinGrace, d.WithinGrace)
			assert.Equal(t, tt.minutesLate, d.MinutesLate)
		})
	}
}

func TestEvaluateGrace_ExhaustedQuotaStillLate(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()

	// 20 minutes late with both grace slots used: the lateness stands,
	// only the forgiveness is gone.
	d := EvaluateGrace("10:35", policy, 2)
	assert.False(t, d.WithinGrace)
	assert.Equal(t, 20, d.MinutesLate)
}

func TestEvaluateGrace_Pure(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()

	first := EvaluateGrace("10:20", policy, 1)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, EvaluateGrace("10:20", policy, 1))
	}
}

func TestEvaluateGrace_MissingInputs(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()

	assert.Equal(t, attendance.GraceDecision{}, EvaluateGrace("", policy, 0))

	policy.ReportingDeadline = ""
	assert.Equal(t, attendance.GraceDecision{}, EvaluateGrace("10:30", policy, 0))
}
