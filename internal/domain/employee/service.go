package employee

import "context"

// EmployeeService covers the slice of employee administration this system
// owns: registration with the default entitlement, and entitlement reads and
// writes. Everything else about the employee record belongs to the external
// employee-admin collaborator.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	UpdateAnnualLeave(ctx context.Context, employeeID string, req UpdateAnnualLeaveRequest) (EmployeeResponse, error)
}
