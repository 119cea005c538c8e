package leave

import (
	"github.com/mcube35/infranet-team1/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// DefaultPageSize is the leave request list page size.
const DefaultPageSize = 10

type CreateRequestRequest struct {
	Type      string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	return validateRequestFields(r.Type, r.StartDate, r.EndDate, r.Reason)
}

type UpdateRequestRequest struct {
	Type      string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *UpdateRequestRequest) Validate() error {
	return validateRequestFields(r.Type, r.StartDate, r.EndDate, r.Reason)
}

// validateRequestFields enforces the submission rules shared by create and
// edit: known leave type, well-formed dates, start not after end, and a
// half-day pinned to a single calendar date.
func validateRequestFields(leaveType, startDate, endDate, reason string) error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(leaveType, []string{string(TypeFullDay), string(TypeHalfDay)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of full_day, half_day",
		})
	}

	start, startOK := validator.IsValidDate(startDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(endDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK {
		if start.After(end) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must not be after end_date",
			})
		}
		if Type(leaveType) == TypeHalfDay && !start.Equal(end) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "a half-day request must start and end on the same date",
			})
		}
	}

	if validator.IsEmpty(reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectRequestRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "rejection reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	Page  int
	Limit int
}

type RequestResponse struct {
	ID              string        `json:"id"`
	EmployeeID      string        `json:"employee_id"`
	Type            Type          `json:"leave_type"`
	StartDate       string        `json:"start_date"`
	EndDate         string        `json:"end_date"`
	Reason          string        `json:"reason"`
	Status          RequestStatus `json:"status"`
	DaysConsumed    string        `json:"days_consumed"`
	ApprovedAt      *string       `json:"approved_at,omitempty"`
	RejectedAt      *string       `json:"rejected_at,omitempty"`
	RejectionReason *string       `json:"rejection_reason,omitempty"`
	ProcessedBy     *string       `json:"processed_by,omitempty"`
	CreatedAt       string        `json:"created_at"`
}

// Balance is the computed paid-leave position shipped alongside the
// employee's request list.
type Balance struct {
	TotalDays     decimal.Decimal `json:"total_days"`
	UsedDays      decimal.Decimal `json:"used_days"`
	RemainingDays decimal.Decimal `json:"remaining_days"`
}

type ListRequestsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Balance    Balance           `json:"balance"`
	Requests   []RequestResponse `json:"requests"`
}

type ListPendingResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Requests   []RequestResponse `json:"requests"`
}
