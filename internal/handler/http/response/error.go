package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Marshmallowc/hrms-backend/internal/domain/attendance"
	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
	"github.com/Marshmallowc/hrms-backend/internal/domain/employee"
	"github.com/Marshmallowc/hrms-backend/internal/domain/leave"
	"github.com/Marshmallowc/hrms-backend/internal/domain/performance"
	"github.com/Marshmallowc/hrms-backend/internal/domain/user"
	"github.com/Marshmallowc/hrms-backend/internal/pkg/validator"
)

// errorMappings pins each domain error to its HTTP status and exact wire
// message. Clients match on these strings, so they change together or not
// at all.
var errorMappings = []struct {
	err     error
	status  int
	message string
}{
	{attendance.ErrAlreadyClockedIn, http.StatusBadRequest, "Already clocked in today"},
	{attendance.ErrNoClockInRecord, http.StatusBadRequest, "No clock-in record found for today"},
	{attendance.ErrAlreadyClockedOut, http.StatusBadRequest, "Already clocked out today"},
	{attendance.ErrMonthYearRequired, http.StatusBadRequest, "Month and year are required"},
	{leave.ErrInvalidStatus, http.StatusBadRequest, "Valid status (approved/rejected) is required"},
	{performance.ErrRatingOutOfRange, http.StatusBadRequest, "Rating must be between 1 and 5"},
	{performance.ErrNoFieldsToUpdate, http.StatusBadRequest, "No fields to update"},
	{employee.ErrNoFieldsToUpdate, http.StatusBadRequest, "No fields to update"},
	{user.ErrInvalidRole, http.StatusBadRequest, "Invalid role"},

	{auth.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{auth.ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token"},

	{user.ErrInsufficientPermissions, http.StatusForbidden, "Insufficient permissions"},

	{user.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{employee.ErrEmployeeNotFound, http.StatusNotFound, "Employee not found"},
	{employee.ErrNoEmployeeRecord, http.StatusNotFound, "Employee record not found"},
	{attendance.ErrAttendanceNotFound, http.StatusNotFound, "Attendance record not found"},
	{leave.ErrLeaveRequestNotFound, http.StatusNotFound, "Leave request not found"},
	{performance.ErrReviewNotFound, http.StatusNotFound, "Performance review not found"},

	{user.ErrUserExists, http.StatusConflict, "User with this email or username already exists"},
	{leave.ErrLeaveAlreadyProcessed, http.StatusConflict, "Leave request has already been processed"},
}

// HandleError translates domain errors into their HTTP representation.
// Anything not recognized is logged and reported as a generic 500 so
// internal details never leak to clients.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error())
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			writeJSON(w, m.status, ErrorBody{Error: m.message})
			return
		}
	}

	slog.ErrorContext(r.Context(), "unhandled error", slog.Any("error", err))
	InternalServerError(w, "Internal server error")
}
