package leave

import "context"

// RequestRepository defines data access for leave requests. Pending-only
// guards live in the SQL predicates so a concurrent approval cannot race an
// owner edit or delete.
type RequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)

	// ListByEmployee returns the employee's requests newest first with the
	// total count for pagination.
	ListByEmployee(ctx context.Context, employeeID string, filter ListFilter) ([]Request, int64, error)

	// ListPending returns all pending requests, newest first. Administrator
	// approval queue.
	ListPending(ctx context.Context, filter ListFilter) ([]Request, int64, error)

	// ListApprovedByEmployee returns every approved request for the employee;
	// input to the balance calculation.
	ListApprovedByEmployee(ctx context.Context, employeeID string) ([]Request, error)

	// UpdatePending rewrites type, dates and reason only while the request is
	// pending and owned by employeeID; reports whether a row matched.
	UpdatePending(ctx context.Context, request Request) (bool, error)

	// DeletePending removes the request only while pending and owned by
	// employeeID; reports whether a row matched.
	DeletePending(ctx context.Context, id, employeeID string) (bool, error)

	// SetStatus applies an administrator transition, overwriting the
	// processing metadata columns with the given request's values.
	SetStatus(ctx context.Context, request Request) error
}
