package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request has already been processed")
	ErrOverlappingLeave             = errors.New("an overlapping leave request already exists")
	ErrInvalidDateRange             = errors.New("end date must not be before start date")
)
