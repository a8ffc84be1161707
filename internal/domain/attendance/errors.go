package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out preconditions
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("please check in first")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")

	// Query errors
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrNoRecordsFound = errors.New("no attendance records found")
)
