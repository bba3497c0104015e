package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrNotWorkDay       = errors.New("not a scheduled training day")
	ErrAlreadyPunched   = errors.New("attendance for today has already been entered")
	ErrNoPunchIn        = errors.New("cannot clock out without a clock-in")
	ErrInvalidTimeRange = errors.New("clock-out time must be later than clock-in time")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
