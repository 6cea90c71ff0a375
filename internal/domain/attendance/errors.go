package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrNoClockInRecord   = errors.New("no clock-in record found for today")
	ErrAlreadyClockedOut = errors.New("already clocked out today")

	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrMonthYearRequired  = errors.New("month and year are required")
)
