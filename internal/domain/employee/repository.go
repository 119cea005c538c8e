package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetAnnualLeaveDays returns the entitlement for the employee. A missing
	// employee is reported through ErrEmployeeNotFound; callers that compute
	// balances treat that as a zero entitlement.
	GetAnnualLeaveDays(ctx context.Context, employeeID string) (int, error)

	// UpdateAnnualLeaveDays overwrites the entitlement. Administrator only,
	// enforced at the handler boundary.
	UpdateAnnualLeaveDays(ctx context.Context, employeeID string, days int) error
}
