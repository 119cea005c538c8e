package attendance

import "github.com/mcube35/infranet-team1/internal/pkg/validator"

// DefaultPageSize is the attendance history page size.
const DefaultPageSize = 15

type ListFilter struct {
	StartDate string
	EndDate   string
	Page      int
	Limit     int
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SaveMemoRequest struct {
	Memo string `json:"memo"`
}

type RecordResponse struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"`
	ClockIn        *string `json:"clock_in,omitempty"`
	ClockOut       *string `json:"clock_out,omitempty"`
	WorkingMinutes *int    `json:"working_minutes,omitempty"`
	Status         Status  `json:"status"`
	Memo           string  `json:"memo"`
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	StartDate  string           `json:"start_date"`
	EndDate    string           `json:"end_date"`
	Records    []RecordResponse `json:"records"`
}
