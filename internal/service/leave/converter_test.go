package leave

import (
	"testing"
	"time"

	"github.com/crestfin/crm-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingRequest(submittedDaysAgo int, now time.Time) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:          "req-1",
		EmployeeID:  "emp-1",
		Status:      leave.StatusPending,
		SubmittedAt: now.AddDate(0, 0, -submittedDaysAgo),
	}
}

func TestConvertStale_BelowThreshold(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	req := pendingRequest(2, now)
	updated, ok := ConvertStale(req, now, 3)

	assert.False(t, ok)
	assert.Equal(t, leave.StatusPending, updated.Status)
	assert.False(t, updated.AutoConverted)
}

func TestConvertStale_AtThreshold(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	req := pendingRequest(3, now)
	updated, ok := ConvertStale(req, now, 3)

	require.True(t, ok)
	assert.Equal(t, leave.StatusAbsconding, updated.Status)
	assert.True(t, updated.AutoConverted)
	require.NotNil(t, updated.AutoConvertedAt)
	assert.Equal(t, now, *updated.AutoConvertedAt)
}

func TestConvertStale_NonPendingUntouched(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	for _, status := range []leave.Status{
		leave.StatusApproved,
		leave.StatusRejected,
		leave.StatusCancelled,
		leave.StatusAbsconding,
	} {
		req := pendingRequest(10, now)
		req.Status = status

		updated, ok := ConvertStale(req, now, 3)
		assert.False(t, ok, "status %s should not convert", status)
		assert.Equal(t, status, updated.Status)
	}
}

func TestConvertStale_Idempotent(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	req := pendingRequest(5, now)
	once, ok := ConvertStale(req, now, 3)
	require.True(t, ok)

	// a second run sees an absconding request and leaves it alone
	twice, ok := ConvertStale(once, now.AddDate(0, 0, 1), 3)
	assert.False(t, ok)
	assert.Equal(t, once, twice)
}

func TestDaysUntilConvert(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysUntilConvert(pendingRequest(0, now), now, 3))
	assert.Equal(t, 1, DaysUntilConvert(pendingRequest(2, now), now, 3))
	assert.Equal(t, 0, DaysUntilConvert(pendingRequest(3, now), now, 3))
	assert.Equal(t, 0, DaysUntilConvert(pendingRequest(9, now), now, 3))
}
