package response

import (
	"errors"
	"net/http"

	"github.com/restotrack/personnel-backend-go/internal/domain/absence"
	"github.com/restotrack/personnel-backend-go/internal/domain/adjustment"
	"github.com/restotrack/personnel-backend-go/internal/domain/attendance"
	"github.com/restotrack/personnel-backend-go/internal/domain/auth"
	"github.com/restotrack/personnel-backend-go/internal/domain/kiosk"
	"github.com/restotrack/personnel-backend-go/internal/domain/leave"
	"github.com/restotrack/personnel-backend-go/internal/domain/personnel"
	"github.com/restotrack/personnel-backend-go/internal/domain/user"
	"github.com/restotrack/personnel-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Personnel
	case errors.Is(err, personnel.ErrPersonnelNotFound):
		NotFound(w, "Personnel not found")
	case errors.Is(err, personnel.ErrPersonnelNoExists):
		Conflict(w, "Personnel number already exists")
	case errors.Is(err, personnel.ErrPersonnelInactive):
		BadRequest(w, "Personnel is not active", nil)

	// Attendance
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in for this date")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Attendance already checked out")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No open attendance session", nil)
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		BadRequest(w, "Check-out must not be before check-in", nil)
	case errors.Is(err, attendance.ErrNotCompleted):
		BadRequest(w, "Attendance record has no check-out yet", nil)

	// Leave and absence ledgers
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence record not found")
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Salary adjustment not found")

	// Kiosk
	case errors.Is(err, kiosk.ErrLocationNotFound):
		NotFound(w, "Location not found")
	case errors.Is(err, kiosk.ErrTokenInvalid):
		BadRequest(w, "QR token invalid, expired or already used", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
