package employee

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mcube35/infranet-team1/internal/domain/employee"
	"github.com/mcube35/infranet-team1/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepository struct {
	employees map[string]*employee.Employee
}

func newFakeEmployeeRepository() *fakeEmployeeRepository {
	return &fakeEmployeeRepository{employees: make(map[string]*employee.Employee)}
}

func (f *fakeEmployeeRepository) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	for _, existing := range f.employees {
		if strings.EqualFold(existing.Email, emp.Email) {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	emp.ID = uuid.NewString()
	f.employees[emp.ID] = &emp
	return emp, nil
}

func (f *fakeEmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if emp, ok := f.employees[id]; ok {
		return *emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) GetAnnualLeaveDays(_ context.Context, employeeID string) (int, error) {
	emp, ok := f.employees[employeeID]
	if !ok {
		return 0, employee.ErrEmployeeNotFound
	}
	return emp.AnnualLeaveDays, nil
}

func (f *fakeEmployeeRepository) UpdateAnnualLeaveDays(_ context.Context, employeeID string, days int) error {
	emp, ok := f.employees[employeeID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.AnnualLeaveDays = days
	return nil
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepository())

	resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:  "Kim Minsu",
		Email: "minsu@example.com",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "employee", resp.Role, "role defaults to employee")
	assert.Equal(t, employee.DefaultAnnualLeaveDays, resp.AnnualLeaveDays)

	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:  "Kim Minsu",
		Email: "MINSU@example.com",
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{Email: "nobody@example.com"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:  "Park Jiwoo",
		Email: "jiwoo@example.com",
		Role:  "superuser",
	})
	assert.ErrorAs(t, err, &verrs)
}

func TestEmployeeService_UpdateAnnualLeave(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepository()
	svc := NewEmployeeService(repo)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:  "Kim Minsu",
		Email: "minsu@example.com",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateAnnualLeave(ctx, created.ID, employee.UpdateAnnualLeaveRequest{AnnualLeaveDays: 20})
	require.NoError(t, err)
	assert.Equal(t, 20, updated.AnnualLeaveDays)

	_, err = svc.UpdateAnnualLeave(ctx, created.ID, employee.UpdateAnnualLeaveRequest{AnnualLeaveDays: -1})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.UpdateAnnualLeave(ctx, "missing", employee.UpdateAnnualLeaveRequest{AnnualLeaveDays: 10})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.AnnualLeaveDays)
}
