package response

import (
	"errors"
	"net/http"

	"github.com/itschool-lms/lms-backend-go/internal/domain/attendance"
	"github.com/itschool-lms/lms-backend-go/internal/domain/auth"
	"github.com/itschool-lms/lms-backend-go/internal/domain/user"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/messages"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/trainingtime"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/validator"
)

var catalog = messages.NewCatalog()

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Field validation errors carry both views of the same content.
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap(), validationErrs.Messages())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Permission errors
	case errors.Is(err, user.ErrStudentRoleRequired),
		errors.Is(err, user.ErrForbiddenTraineeEdits):
		Forbidden(w, catalog.Get(messages.KeyAuthorization))
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Attendance state-precondition errors
	case errors.Is(err, attendance.ErrNotWorkDay):
		BadRequest(w, catalog.Get(messages.KeyNotWorkDay), nil)
	case errors.Is(err, attendance.ErrAlreadyPunched):
		Conflict(w, catalog.Get(messages.KeyPunchAlreadyExist))
	case errors.Is(err, attendance.ErrNoPunchIn):
		Conflict(w, catalog.Get(messages.KeyPunchInEmpty))
	case errors.Is(err, attendance.ErrInvalidTimeRange):
		BadRequest(w, "Clock-out time must be later than clock-in time", nil)
	case errors.Is(err, trainingtime.ErrInvalidTimeFormat):
		BadRequest(w, "Invalid time value", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
