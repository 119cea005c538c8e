package response

import (
	"errors"
	"net/http"

	"github.com/mcube35/infranet-team1/internal/domain/attendance"
	"github.com/mcube35/infranet-team1/internal/domain/employee"
	"github.com/mcube35/infranet-team1/internal/domain/leave"
	"github.com/mcube35/infranet-team1/internal/domain/user"
	"github.com/mcube35/infranet-team1/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrMemoNotSaved):
		NotFound(w, "Failed to save memo")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrRequestNotPending):
		Conflict(w, "Leave request cannot be modified after processing")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotProcessed):
		Conflict(w, "Leave request is still pending")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Authorization errors
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Administrator privilege required")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
