package attendance

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcube35/infranet-team1/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecordRepository keeps records in memory with the same
// (employee_id, date) uniqueness guarantee the real table enforces.
type fakeRecordRepository struct {
	records map[string]*attendance.Record // keyed by employeeID|date
}

func newFakeRecordRepository() *fakeRecordRepository {
	return &fakeRecordRepository{records: make(map[string]*attendance.Record)}
}

func (f *fakeRecordRepository) key(employeeID, date string) string {
	return employeeID + "|" + date
}

func (f *fakeRecordRepository) Create(_ context.Context, record attendance.Record) (bool, error) {
	k := f.key(record.EmployeeID, record.Date)
	if _, exists := f.records[k]; exists {
		return false, nil
	}
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	f.records[k] = &record
	return true, nil
}

func (f *fakeRecordRepository) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (*attendance.Record, error) {
	if rec, ok := f.records[f.key(employeeID, date)]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeRecordRepository) SetClockOut(_ context.Context, id string, record attendance.Record) error {
	for _, rec := range f.records {
		if rec.ID == id {
			rec.ClockOut = record.ClockOut
			rec.WorkingMinutes = record.WorkingMinutes
			rec.UpdatedAt = time.Now()
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func (f *fakeRecordRepository) UpdateMemo(_ context.Context, id, employeeID, memo string) (bool, error) {
	for _, rec := range f.records {
		if rec.ID == id && rec.EmployeeID == employeeID {
			rec.Memo = memo
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRecordRepository) ListByEmployee(_ context.Context, employeeID string, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	var matched []attendance.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Date >= filter.StartDate && rec.Date <= filter.EndDate {
			matched = append(matched, *rec)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date > matched[j].Date })

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestClockIn_LateAfterNine(t *testing.T) {
	repo := newFakeRecordRepository()
	svc := NewLedgerServiceWithClock(repo, fixedClock(time.Date(2025, 3, 3, 9, 15, 0, 0, time.Local)))

	result, err := svc.ClockIn(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Equal(t, "2025-03-03", result.Date)
	assert.Equal(t, attendance.StatusLate, result.Status)
	require.NotNil(t, result.ClockIn)
	assert.Nil(t, result.ClockOut)
	assert.Nil(t, result.WorkingMinutes)
}

func TestClockIn_BeforeNineIsNormal(t *testing.T) {
	repo := newFakeRecordRepository()
	svc := NewLedgerServiceWithClock(repo, fixedClock(time.Date(2025, 3, 3, 8, 59, 59, 0, time.Local)))

	result, err := svc.ClockIn(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusNormal, result.Status)
}

func TestClockIn_SecondCallIsNoOp(t *testing.T) {
	repo := newFakeRecordRepository()
	svc := NewLedgerServiceWithClock(repo, fixedClock(time.Date(2025, 3, 3, 8, 30, 0, 0, time.Local)))

	first, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)

	// Later in the day, after the late cut-off: the record must not change.
	svc.now = fixedClock(time.Date(2025, 3, 3, 10, 0, 0, 0, time.Local))
	second, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, repo.records, 1)
	assert.Equal(t, attendance.StatusNormal, second.Status)
}

func TestClockOut_ComputesMinutesAndKeepsStatus(t *testing.T) {
	repo := newFakeRecordRepository()
	svc := NewLedgerServiceWithClock(repo, fixedClock(time.Date(2025, 3, 3, 9, 15, 0, 0, time.Local)))

	_, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.now = fixedClock(time.Date(2025, 3, 3, 18, 0, 0, 0, time.Local))
	result, err := svc.ClockOut(context.Background(), "emp-1")

	require.NoError(t, err)
	require.NotNil(t, result.WorkingMinutes)
	assert.Equal(t, 525, *result.WorkingMinutes)
	assert.Equal(t, attendance.StatusLate, result.Status)
	require.NotNil(t, result.ClockOut)
}

func TestClockOut_WithoutClockInIsNoOp(t *testing.T) {
	repo := newFakeRecordRepository()
	svc := NewLedgerServiceWithClock(repo, fixedClock(time.Date(2025, 3, 3, 18, 0, 0, 0, time.Local)))

	result, err := svc.ClockOut(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusUnrecorded, result.Status)
	assert.Empty(t, repo.records)
}

func TestClockOut_ClockSkewClampsToZero(t *testing.T) {
	repo := newFakeRecordRepository()
	svc := NewLedgerServiceWithClock(repo, fixedClock(time.Date(2025, 3, 3, 9, 0, 0, 0, time.Local)))

	_, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)

	// Wall clock stepped backwards between clock-in and clock-out.
	svc.now = fixedClock(time.Date(2025, 3, 3, 8, 0, 0, 0, time.Local))
	result, err := svc.ClockOut(context.Background(), "emp-1")

	require.NoError(t, err)
	require.NotNil(t, result.WorkingMinutes)
	assert.Equal(t, 0, *result.WorkingMinutes)
}

func TestSaveMemo_OwnerOnly(t *testing.T) {
	repo := newFakeRecordRepository()
	svc := NewLedgerServiceWithClock(repo, fixedClock(time.Date(2025, 3, 3, 9, 0, 0, 0, time.Local)))

	created, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)

	err = svc.SaveMemo(context.Background(), created.ID, "emp-1", attendance.SaveMemoRequest{Memo: "worked from the annex"})
	require.NoError(t, err)

	err = svc.SaveMemo(context.Background(), created.ID, "emp-2", attendance.SaveMemoRequest{Memo: "not mine"})
	assert.ErrorIs(t, err, attendance.ErrMemoNotSaved)

	rec, err := repo.GetByEmployeeAndDate(context.Background(), "emp-1", "2025-03-03")
	require.NoError(t, err)
	assert.Equal(t, "worked from the annex", rec.Memo)
}

func TestListRecords_DefaultsAndOrdering(t *testing.T) {
	repo := newFakeRecordRepository()
	svc := NewLedgerServiceWithClock(repo, fixedClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)))

	for day := 1; day <= 3; day++ {
		svc.now = fixedClock(time.Date(2025, 3, day, 9, 0, 0, 0, time.Local))
		_, err := svc.ClockIn(context.Background(), "emp-1")
		require.NoError(t, err)
	}
	// A February record sits outside the default range.
	svc.now = fixedClock(time.Date(2025, 2, 28, 9, 0, 0, 0, time.Local))
	_, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.now = fixedClock(time.Date(2025, 3, 3, 12, 0, 0, 0, time.Local))
	result, err := svc.ListRecords(context.Background(), "emp-1", attendance.ListFilter{})

	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", result.StartDate)
	assert.Equal(t, "2025-03-03", result.EndDate)
	assert.Equal(t, int64(3), result.TotalCount)
	require.Len(t, result.Records, 3)
	assert.Equal(t, "2025-03-03", result.Records[0].Date)
	assert.Equal(t, "2025-03-01", result.Records[2].Date)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, attendance.DefaultPageSize, result.Limit)
}

func TestListRecords_ExplicitRange(t *testing.T) {
	repo := newFakeRecordRepository()
	svc := NewLedgerServiceWithClock(repo, fixedClock(time.Date(2025, 2, 28, 9, 0, 0, 0, time.Local)))

	_, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.now = fixedClock(time.Date(2025, 3, 3, 12, 0, 0, 0, time.Local))
	result, err := svc.ListRecords(context.Background(), "emp-1", attendance.ListFilter{
		StartDate: "2025-02-01",
		EndDate:   "2025-02-28",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.TotalCount)
}

func TestListRecords_RejectsMalformedDates(t *testing.T) {
	repo := newFakeRecordRepository()
	svc := NewLedgerServiceWithClock(repo, fixedClock(time.Date(2025, 3, 3, 12, 0, 0, 0, time.Local)))

	_, err := svc.ListRecords(context.Background(), "emp-1", attendance.ListFilter{StartDate: "03/01/2025"})
	assert.Error(t, err)
}
