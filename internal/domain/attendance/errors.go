package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyPunchedIn     = errors.New("you have already punched in today")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed office radius")
	ErrFaceNotRecognized    = errors.New("face verification failed")
	ErrNotPunchedIn         = errors.New("you have not punched in yet")
	ErrAlreadyPunchedOut    = errors.New("you have already punched out")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrCommentRequired    = errors.New("a comment is required for manual overrides")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)
