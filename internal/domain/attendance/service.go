package attendance

import "context"

// LedgerService maintains one attendance entry per employee per day.
//
// ClockIn and ClockOut deliberately report success on their precondition
// misses: a second clock-in the same day and a clock-out without a prior
// clock-in both leave the record set untouched and raise no error.
type LedgerService interface {
	ClockIn(ctx context.Context, employeeID string) (RecordResponse, error)
	ClockOut(ctx context.Context, employeeID string) (RecordResponse, error)
	SaveMemo(ctx context.Context, recordID, employeeID string, req SaveMemoRequest) error
	ListRecords(ctx context.Context, employeeID string, filter ListFilter) (ListRecordsResponse, error)
}
