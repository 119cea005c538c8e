package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mcube35/infranet-team1/internal/domain/leave"
	"github.com/mcube35/infranet-team1/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	id, employee_id, leave_type, start_date, end_date, reason, status,
	approved_at, rejected_at, rejection_reason, processed_by,
	created_at, updated_at
`

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate,
		&req.Reason, &req.Status,
		&req.ApprovedAt, &req.RejectedAt, &req.RejectionReason, &req.ProcessedBy,
		&req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

// Create implements leave.RequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING ` + leaveRequestColumns

	row := q.QueryRow(ctx, query,
		uuid.NewString(),
		request.EmployeeID,
		request.Type,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.Status,
	)

	created, err := scanLeaveRequest(row)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// GetByID implements leave.RequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE id = $1
	`

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return request, nil
}

// ListByEmployee implements leave.RequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string, filter leave.ListFilter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_requests WHERE employee_id = $1`
	if err := q.QueryRow(ctx, countQuery, employeeID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	offset := (filter.Page - 1) * filter.Limit
	rows, err := q.Query(ctx, query, employeeID, filter.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests, err := collectLeaveRequests(rows)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// ListPending implements leave.RequestRepository.
func (r *leaveRequestRepository) ListPending(ctx context.Context, filter leave.ListFilter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_requests WHERE status = 'pending'`
	if err := q.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE status = 'pending'
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	offset := (filter.Page - 1) * filter.Limit
	rows, err := q.Query(ctx, query, filter.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	defer rows.Close()

	requests, err := collectLeaveRequests(rows)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// ListApprovedByEmployee implements leave.RequestRepository.
func (r *leaveRequestRepository) ListApprovedByEmployee(ctx context.Context, employeeID string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = 'approved'
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

// UpdatePending implements leave.RequestRepository. Status and ownership sit
// in the predicate; an approval racing this update makes it match nothing.
func (r *leaveRequestRepository) UpdatePending(ctx context.Context, request leave.Request) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET leave_type = $3,
		    start_date = $4,
		    end_date = $5,
		    reason = $6,
		    updated_at = NOW()
		WHERE id = $1
		  AND employee_id = $2
		  AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query,
		request.ID,
		request.EmployeeID,
		request.Type,
		request.StartDate,
		request.EndDate,
		request.Reason,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update leave request: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeletePending implements leave.RequestRepository.
func (r *leaveRequestRepository) DeletePending(ctx context.Context, id, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM leave_requests
		WHERE id = $1
		  AND employee_id = $2
		  AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, employeeID)
	if err != nil {
		return false, fmt.Errorf("failed to delete leave request: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// SetStatus implements leave.RequestRepository.
func (r *leaveRequestRepository) SetStatus(ctx context.Context, request leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2,
		    approved_at = $3,
		    rejected_at = $4,
		    rejection_reason = $5,
		    processed_by = $6,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		request.ID,
		request.Status,
		request.ApprovedAt,
		request.RejectedAt,
		request.RejectionReason,
		request.ProcessedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to set leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}

	return nil
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.Request, error) {
	var requests []leave.Request
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave requests: %w", err)
	}
	return requests, nil
}
