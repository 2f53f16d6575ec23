package response

import (
	"errors"
	"net/http"

	"github.com/crestfin/crm-backend-go/internal/domain/attendance"
	"github.com/crestfin/crm-backend-go/internal/domain/employee"
	"github.com/crestfin/crm-backend-go/internal/domain/leave"
	"github.com/crestfin/crm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in today")
	case errors.Is(err, attendance.ErrAlreadyPunchedOut):
		Conflict(w, "Already punched out")
	case errors.Is(err, attendance.ErrNotPunchedIn):
		BadRequest(w, "No open punch-in session", nil)
	case errors.Is(err, attendance.ErrOutsideAllowedRadius):
		Forbidden(w, "Outside the allowed office radius")
	case errors.Is(err, attendance.ErrFaceNotRecognized):
		Forbidden(w, "Face verification failed")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrCommentRequired):
		BadRequest(w, "A comment is required for manual overrides", nil)
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this record")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
