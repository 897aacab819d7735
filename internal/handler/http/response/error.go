package response

import (
	"errors"
	"net/http"

	"github.com/staffhub-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/auth"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/holiday"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/master/department"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/user"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, attendance.ErrAlreadySignedIn),
		errors.Is(err, attendance.ErrAlreadySignedOut),
		errors.Is(err, attendance.ErrNoSignIn),
		errors.Is(err, leave.ErrInvalidRange),
		errors.Is(err, leave.ErrOverlappingLeave),
		errors.Is(err, leave.ErrInsufficientBalance),
		errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, err.Error(), nil)

	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, err.Error())

	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())

	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, attendance.ErrRecordNotFound),
		errors.Is(err, leave.ErrRequestNotFound),
		errors.Is(err, holiday.ErrHolidayNotFound),
		errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, err.Error())

	case errors.Is(err, user.ErrEmailExists),
		errors.Is(err, leave.ErrAlreadyDecided),
		errors.Is(err, holiday.ErrHolidayExists),
		errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, err.Error())

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
