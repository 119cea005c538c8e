package employee

import "github.com/mcube35/infranet-team1/internal/pkg/validator"

type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	Role       string  `json:"role"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}
	if r.Role != "" && !validator.IsInSlice(r.Role, []string{"system", "admin", "employee"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of system, admin, employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAnnualLeaveRequest struct {
	AnnualLeaveDays int `json:"annual_leave_days"`
}

func (r *UpdateAnnualLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AnnualLeaveDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "annual_leave_days",
			Message: "annual_leave_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Position        *string `json:"position,omitempty"`
	Department      *string `json:"department,omitempty"`
	Role            string  `json:"role"`
	AnnualLeaveDays int     `json:"annual_leave_days"`
}
