package employee

import (
	"context"
	"fmt"

	"github.com/mcube35/infranet-team1/internal/domain/employee"
	"github.com/mcube35/infranet-team1/internal/domain/user"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
	}
}

// Create implements employee.EmployeeService. New employees always start with
// the default annual-leave entitlement.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = string(user.RoleEmployee)
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Name:            req.Name,
		Email:           req.Email,
		Position:        req.Position,
		Department:      req.Department,
		Role:            role,
		AnnualLeaveDays: employee.DefaultAnnualLeaveDays,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// UpdateAnnualLeave implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateAnnualLeave(ctx context.Context, employeeID string, req employee.UpdateAnnualLeaveRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.EmployeeRepository.UpdateAnnualLeaveDays(ctx, employeeID, req.AnnualLeaveDays); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to read back employee: %w", err)
	}

	return mapEmployeeToResponse(updated), nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:              emp.ID,
		Name:            emp.Name,
		Email:           emp.Email,
		Position:        emp.Position,
		Department:      emp.Department,
		Role:            emp.Role,
		AnnualLeaveDays: emp.AnnualLeaveDays,
	}
}
