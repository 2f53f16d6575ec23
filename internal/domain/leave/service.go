package leave

import (
	"context"
)

// LeaveService defines business logic for leave requests.
type LeaveService interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)

	GetMyLeaves(ctx context.Context) ([]LeaveResponse, error)

	Approve(ctx context.Context, id string) (LeaveResponse, error)

	Reject(ctx context.Context, req RejectLeaveRequest) (LeaveResponse, error)

	// ConvertStalePending flips requests pending past the policy
	// threshold to absconding. Returns how many were converted.
	ConvertStalePending(ctx context.Context) (int, error)
}
