package attendance

import "errors"

var (
	ErrAttendanceNotFound    = errors.New("attendance record not found")
	ErrAlreadyCheckedIn      = errors.New("already checked in for this date")
	ErrAlreadyCheckedOut     = errors.New("attendance already checked out")
	ErrNotCheckedIn          = errors.New("no open attendance session")
	ErrCheckOutBeforeCheckIn = errors.New("check-out must not be before check-in")
	ErrNotCompleted          = errors.New("attendance record has no check-out yet")
)
