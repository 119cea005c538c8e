package attendance

import "context"

// RecordRepository defines data access for attendance records. The store
// carries a uniqueness constraint on (employee_id, date) so concurrent
// clock-ins cannot create duplicates.
type RecordRepository interface {
	// Create inserts the day's record. When a record for (employee_id, date)
	// already exists the insert is a no-op and inserted is false.
	Create(ctx context.Context, record Record) (inserted bool, err error)

	// GetByEmployeeAndDate returns nil when no record exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Record, error)

	// SetClockOut completes the day's record with the clock-out time and the
	// derived working minutes.
	SetClockOut(ctx context.Context, id string, record Record) error

	// UpdateMemo updates the memo only when the record belongs to employeeID,
	// and reports whether a row matched.
	UpdateMemo(ctx context.Context, id, employeeID, memo string) (bool, error)

	// ListByEmployee returns records in the inclusive date range, newest date
	// first, with the total count for pagination.
	ListByEmployee(ctx context.Context, employeeID string, filter ListFilter) ([]Record, int64, error)
}
