package attendance

import "errors"

// Attendance domain errors
var (
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
	ErrMalformedExport    = errors.New("punch-clock export could not be read")
	ErrMissingHeader      = errors.New("punch-clock export is missing required columns")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
