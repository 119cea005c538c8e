package leave

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Type is the granularity of a leave request. A half day always consumes
// exactly 0.5 day regardless of the stored date range.
type Type string

const (
	TypeFullDay Type = "full_day"
	TypeHalfDay Type = "half_day"
)

// Request is a paid-leave request. StartDate and EndDate are inclusive
// calendar dates in "2006-01-02" form; for half-day requests they are equal.
type Request struct {
	ID         string
	EmployeeID string
	Type       Type
	StartDate  string
	EndDate    string
	Reason     string
	Status     RequestStatus

	// Processing metadata, present only after an administrator decision and
	// cleared again on revert to pending.
	ApprovedAt      *time.Time
	RejectedAt      *time.Time
	RejectionReason *string
	ProcessedBy     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
