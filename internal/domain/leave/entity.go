package leave

import (
	"time"

	"github.com/crestfin/crm-backend-go/internal/domain/attendance"
)

// Status is the leave request lifecycle. Absconding is reached either
// by an admin marking it or by the auto-converter once a request has
// been pending past the policy threshold.
type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusCancelled  Status = "cancelled"
	StatusAbsconding Status = "absconding"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string
	CompanyID  string

	StartDate time.Time
	EndDate   time.Time
	Reason    string

	Status          Status
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	// AutoConverted marks requests flipped to absconding by the
	// pending-leave converter rather than by a person.
	AutoConverted   bool
	AutoConvertedAt *time.Time

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
}

// DaysPending returns whole days since submission, for requests still
// pending.
func (r LeaveRequest) DaysPending(now time.Time) int {
	if r.Status != StatusPending {
		return 0
	}
	d := int(now.Sub(r.SubmittedAt).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// DayState maps a request's status onto the resolver's four-valued
// leave input.
func (r LeaveRequest) DayState() attendance.LeaveState {
	switch r.Status {
	case StatusApproved:
		return attendance.LeaveApproved
	case StatusPending:
		return attendance.LeavePending
	case StatusAbsconding:
		return attendance.LeaveAbsconding
	}
	return attendance.LeaveNone
}

// Covers reports whether date falls inside the request's range.
func (r LeaveRequest) Covers(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(r.StartDate.Truncate(24*time.Hour)) && !d.After(r.EndDate.Truncate(24*time.Hour))
}
