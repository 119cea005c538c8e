package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mcube35/infranet-team1/internal/domain/attendance"
)

type LedgerServiceImpl struct {
	attendance.RecordRepository
	now func() time.Time
}

func NewLedgerService(recordRepo attendance.RecordRepository) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		RecordRepository: recordRepo,
		now:              time.Now,
	}
}

// NewLedgerServiceWithClock pins "now"; used by tests.
func NewLedgerServiceWithClock(recordRepo attendance.RecordRepository, now func() time.Time) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		RecordRepository: recordRepo,
		now:              now,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// ClockIn implements attendance.LedgerService.
//
// The day's record is created at most once. A second clock-in the same day,
// including one racing this call, finds or inserts nothing and returns the
// existing record without error.
func (s *LedgerServiceImpl) ClockIn(ctx context.Context, employeeID string) (attendance.RecordResponse, error) {
	now := s.now()
	today := attendance.DateOf(now)

	existing, err := s.RecordRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if existing != nil {
		return mapRecordToResponse(*existing), nil
	}

	clockIn := now
	record := attendance.Record{
		EmployeeID: employeeID,
		Date:       today,
		ClockIn:    &clockIn,
		Status:     attendance.StatusOf(now),
		Memo:       "",
	}

	inserted, err := s.RecordRepository.Create(ctx, record)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	if !inserted {
		// Lost the race to a concurrent clock-in; same observable outcome as
		// the find above succeeding.
		winner, err := s.RecordRepository.GetByEmployeeAndDate(ctx, employeeID, today)
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to re-read attendance record: %w", err)
		}
		if winner == nil {
			return attendance.RecordResponse{}, attendance.ErrRecordNotFound
		}
		return mapRecordToResponse(*winner), nil
	}

	created, err := s.RecordRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to read back attendance record: %w", err)
	}
	if created == nil {
		return attendance.RecordResponse{}, attendance.ErrRecordNotFound
	}

	return mapRecordToResponse(*created), nil
}

// ClockOut implements attendance.LedgerService.
//
// Without a prior clock-in today this is a silent no-op; no absence record is
// synthesized. The status decided at clock-in is never recomputed here.
func (s *LedgerServiceImpl) ClockOut(ctx context.Context, employeeID string) (attendance.RecordResponse, error) {
	now := s.now()
	today := attendance.DateOf(now)

	record, err := s.RecordRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if record == nil || record.ClockIn == nil {
		return attendance.RecordResponse{
			Date:   today,
			Status: attendance.StatusUnrecorded,
		}, nil
	}

	clockOut := now
	minutes := attendance.WorkingMinutes(*record.ClockIn, clockOut)
	record.ClockOut = &clockOut
	record.WorkingMinutes = &minutes

	if err := s.RecordRepository.SetClockOut(ctx, record.ID, *record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapRecordToResponse(*record), nil
}

// SaveMemo implements attendance.LedgerService. The ownership check lives in
// the update predicate; a miss surfaces as ErrMemoNotSaved.
func (s *LedgerServiceImpl) SaveMemo(ctx context.Context, recordID, employeeID string, req attendance.SaveMemoRequest) error {
	matched, err := s.RecordRepository.UpdateMemo(ctx, recordID, employeeID, req.Memo)
	if err != nil {
		return fmt.Errorf("failed to save memo: %w", err)
	}
	if !matched {
		return attendance.ErrMemoNotSaved
	}
	return nil
}

// ListRecords implements attendance.LedgerService. An unspecified range
// defaults to the first of the current month through today.
func (s *LedgerServiceImpl) ListRecords(ctx context.Context, employeeID string, filter attendance.ListFilter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	now := s.now()
	if filter.StartDate == "" {
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		filter.StartDate = attendance.DateOf(firstOfMonth)
	}
	if filter.EndDate == "" {
		filter.EndDate = attendance.DateOf(now)
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = attendance.DefaultPageSize
	}

	records, total, err := s.RecordRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
		Records:    responses,
	}, nil
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:             rec.ID,
		Date:           rec.Date,
		ClockIn:        timePtrToString(rec.ClockIn),
		ClockOut:       timePtrToString(rec.ClockOut),
		WorkingMinutes: rec.WorkingMinutes,
		Status:         rec.Status,
		Memo:           rec.Memo,
	}
}
