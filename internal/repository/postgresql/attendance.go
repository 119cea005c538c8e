package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mcube35/infranet-team1/internal/domain/attendance"
	"github.com/mcube35/infranet-team1/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, date, clock_in, clock_out, working_minutes, status, memo,
	created_at, updated_at
`

// Create implements attendance.RecordRepository. The table carries
// UNIQUE (employee_id, date); losing an insert race is reported as
// inserted=false, never as an error.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, clock_in, clock_out, working_minutes, status, memo
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query,
		uuid.NewString(),
		record.EmployeeID,
		record.Date,
		record.ClockIn,
		record.ClockOut,
		record.WorkingMinutes,
		record.Status,
		record.Memo,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetByEmployeeAndDate implements attendance.RecordRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
		&rec.WorkingMinutes, &rec.Status, &rec.Memo,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for the day
		}
		return nil, fmt.Errorf("failed to get attendance record by employee and date: %w", err)
	}

	return &rec, nil
}

// SetClockOut implements attendance.RecordRepository.
func (a *attendanceRepository) SetClockOut(ctx context.Context, id string, record attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET clock_out = $2,
		    working_minutes = $3,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, record.ClockOut, record.WorkingMinutes)
	if err != nil {
		return fmt.Errorf("failed to set clock out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// UpdateMemo implements attendance.RecordRepository. Ownership is part of the
// predicate so a non-owner update simply matches nothing.
func (a *attendanceRepository) UpdateMemo(ctx context.Context, id, employeeID, memo string) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET memo = $3,
		    updated_at = NOW()
		WHERE id = $1
		  AND employee_id = $2
	`

	tag, err := q.Exec(ctx, query, id, employeeID, memo)
	if err != nil {
		return false, fmt.Errorf("failed to update memo: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListByEmployee implements attendance.RecordRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	countQuery := `
		SELECT COUNT(*)
		FROM attendance_records
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
	`

	var total int64
	if err := q.QueryRow(ctx, countQuery, employeeID, filter.StartDate, filter.EndDate).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date DESC
		LIMIT $4 OFFSET $5
	`

	offset := (filter.Page - 1) * filter.Limit
	rows, err := q.Query(ctx, query, employeeID, filter.StartDate, filter.EndDate, filter.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
			&rec.WorkingMinutes, &rec.Status, &rec.Memo,
			&rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return records, total, nil
}
