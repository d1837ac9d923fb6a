package response

import (
	"errors"
	"net/http"

	"github.com/staffdesk/hr-backend-go/internal/domain/attendance"
	"github.com/staffdesk/hr-backend-go/internal/domain/auth"
	"github.com/staffdesk/hr-backend-go/internal/domain/department"
	"github.com/staffdesk/hr-backend-go/internal/domain/employee"
	"github.com/staffdesk/hr-backend-go/internal/domain/leave"
	"github.com/staffdesk/hr-backend-go/internal/domain/user"
	"github.com/staffdesk/hr-backend-go/internal/pkg/validator"
)

// HandleError translates domain errors into HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, employee.ErrUnauthorized),
		errors.Is(err, leave.ErrUnauthorized),
		errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "You do not have access to this resource")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, leave.ErrApplicationNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, leave.ErrApplicationAlreadyProcessed):
		Conflict(w, "Leave application has already been processed")
	case errors.Is(err, employee.ErrInvalidEmployeeID),
		errors.Is(err, leave.ErrInvalidApplicationID):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrMalformedExport),
		errors.Is(err, attendance.ErrMissingHeader):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrDepartmentUnresolved):
		BadRequest(w, err.Error(), nil)
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
