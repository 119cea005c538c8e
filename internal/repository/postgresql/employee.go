package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mcube35/infranet-team1/internal/domain/employee"
	"github.com/mcube35/infranet-team1/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, name, email, position, department, role, annual_leave_days,
	created_at, updated_at
`

// Create implements employee.EmployeeRepository.
func (e *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			id, name, email, position, department, role, annual_leave_days
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING ` + employeeColumns

	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		emp.Name,
		emp.Email,
		emp.Position,
		emp.Department,
		emp.Role,
		emp.AnnualLeaveDays,
	).Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.Position, &emp.Department,
		&emp.Role, &emp.AnnualLeaveDays, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.Position, &emp.Department,
		&emp.Role, &emp.AnnualLeaveDays, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// GetAnnualLeaveDays implements employee.EmployeeRepository.
func (e *employeeRepository) GetAnnualLeaveDays(ctx context.Context, employeeID string) (int, error) {
	q := GetQuerier(ctx, e.db)

	var days int
	err := q.QueryRow(ctx, `SELECT annual_leave_days FROM employees WHERE id = $1`, employeeID).Scan(&days)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, employee.ErrEmployeeNotFound
		}
		return 0, fmt.Errorf("failed to get annual leave days: %w", err)
	}

	return days, nil
}

// UpdateAnnualLeaveDays implements employee.EmployeeRepository.
func (e *employeeRepository) UpdateAnnualLeaveDays(ctx context.Context, employeeID string, days int) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET annual_leave_days = $2,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, employeeID, days)
	if err != nil {
		return fmt.Errorf("failed to update annual leave days: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
