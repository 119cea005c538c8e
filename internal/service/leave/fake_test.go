package leave

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mcube35/infranet-team1/internal/domain/employee"
	"github.com/mcube35/infranet-team1/internal/domain/leave"
)

// fakeRequestRepository keeps leave requests in memory and mirrors the SQL
// predicates of the real repository (pending-only mutation guards included).
type fakeRequestRepository struct {
	requests map[string]*leave.Request
	seq      int
}

func newFakeRequestRepository() *fakeRequestRepository {
	return &fakeRequestRepository{requests: make(map[string]*leave.Request)}
}

func (f *fakeRequestRepository) Create(_ context.Context, request leave.Request) (leave.Request, error) {
	request.ID = uuid.NewString()
	f.seq++
	request.CreatedAt = time.Unix(int64(f.seq), 0)
	request.UpdatedAt = request.CreatedAt
	f.requests[request.ID] = &request
	return request, nil
}

func (f *fakeRequestRepository) GetByID(_ context.Context, id string) (leave.Request, error) {
	if request, ok := f.requests[id]; ok {
		return *request, nil
	}
	return leave.Request{}, leave.ErrRequestNotFound
}

func (f *fakeRequestRepository) ListByEmployee(_ context.Context, employeeID string, filter leave.ListFilter) ([]leave.Request, int64, error) {
	var matched []leave.Request
	for _, request := range f.requests {
		if request.EmployeeID == employeeID {
			matched = append(matched, *request)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return paginate(matched, filter), int64(len(matched)), nil
}

func (f *fakeRequestRepository) ListPending(_ context.Context, filter leave.ListFilter) ([]leave.Request, int64, error) {
	var matched []leave.Request
	for _, request := range f.requests {
		if request.Status == leave.RequestStatusPending {
			matched = append(matched, *request)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return paginate(matched, filter), int64(len(matched)), nil
}

func (f *fakeRequestRepository) ListApprovedByEmployee(_ context.Context, employeeID string) ([]leave.Request, error) {
	var matched []leave.Request
	for _, request := range f.requests {
		if request.EmployeeID == employeeID && request.Status == leave.RequestStatusApproved {
			matched = append(matched, *request)
		}
	}
	return matched, nil
}

func (f *fakeRequestRepository) UpdatePending(_ context.Context, update leave.Request) (bool, error) {
	request, ok := f.requests[update.ID]
	if !ok || request.EmployeeID != update.EmployeeID || request.Status != leave.RequestStatusPending {
		return false, nil
	}
	request.Type = update.Type
	request.StartDate = update.StartDate
	request.EndDate = update.EndDate
	request.Reason = update.Reason
	request.UpdatedAt = time.Now()
	return true, nil
}

func (f *fakeRequestRepository) DeletePending(_ context.Context, id, employeeID string) (bool, error) {
	request, ok := f.requests[id]
	if !ok || request.EmployeeID != employeeID || request.Status != leave.RequestStatusPending {
		return false, nil
	}
	delete(f.requests, id)
	return true, nil
}

func (f *fakeRequestRepository) SetStatus(_ context.Context, update leave.Request) error {
	request, ok := f.requests[update.ID]
	if !ok {
		return leave.ErrRequestNotFound
	}
	request.Status = update.Status
	request.ApprovedAt = update.ApprovedAt
	request.RejectedAt = update.RejectedAt
	request.RejectionReason = update.RejectionReason
	request.ProcessedBy = update.ProcessedBy
	request.UpdatedAt = time.Now()
	return nil
}

func paginate(requests []leave.Request, filter leave.ListFilter) []leave.Request {
	start := (filter.Page - 1) * filter.Limit
	if start > len(requests) {
		start = len(requests)
	}
	end := start + filter.Limit
	if end > len(requests) {
		end = len(requests)
	}
	return requests[start:end]
}

// fakeEmployeeRepository serves entitlements only.
type fakeEmployeeRepository struct {
	entitlements map[string]int
}

func newFakeEmployeeRepository() *fakeEmployeeRepository {
	return &fakeEmployeeRepository{entitlements: make(map[string]int)}
}

func (f *fakeEmployeeRepository) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = uuid.NewString()
	f.entitlements[emp.ID] = emp.AnnualLeaveDays
	return emp, nil
}

func (f *fakeEmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	days, ok := f.entitlements[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id, AnnualLeaveDays: days}, nil
}

func (f *fakeEmployeeRepository) GetAnnualLeaveDays(_ context.Context, employeeID string) (int, error) {
	days, ok := f.entitlements[employeeID]
	if !ok {
		return 0, employee.ErrEmployeeNotFound
	}
	return days, nil
}

func (f *fakeEmployeeRepository) UpdateAnnualLeaveDays(_ context.Context, employeeID string, days int) error {
	if _, ok := f.entitlements[employeeID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.entitlements[employeeID] = days
	return nil
}
