package leave

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mcube35/infranet-team1/internal/domain/leave"
)

type RequestServiceImpl struct {
	leave.RequestRepository
	calculator leave.BalanceCalculator
	now        func() time.Time
}

func NewRequestService(requestRepo leave.RequestRepository, calculator leave.BalanceCalculator) *RequestServiceImpl {
	return &RequestServiceImpl{
		RequestRepository: requestRepo,
		calculator:        calculator,
		now:               time.Now,
	}
}

// NewRequestServiceWithClock pins "now"; used by tests.
func NewRequestServiceWithClock(requestRepo leave.RequestRepository, calculator leave.BalanceCalculator, now func() time.Time) *RequestServiceImpl {
	return &RequestServiceImpl{
		RequestRepository: requestRepo,
		calculator:        calculator,
		now:               now,
	}
}

// Submit implements leave.RequestService.
func (s *RequestServiceImpl) Submit(ctx context.Context, employeeID string, req leave.CreateRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	request := leave.Request{
		EmployeeID: employeeID,
		Type:       leave.Type(req.Type),
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Status:     leave.RequestStatusPending,
	}

	created, err := s.RequestRepository.Create(ctx, request)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapRequestToResponse(created), nil
}

// Edit implements leave.RequestService. The pending-and-owner predicate lives
// in the repository update; a miss is reported as "cannot modify" when the
// request exists and not-found otherwise.
func (s *RequestServiceImpl) Edit(ctx context.Context, id, employeeID string, req leave.UpdateRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	request := leave.Request{
		ID:         id,
		EmployeeID: employeeID,
		Type:       leave.Type(req.Type),
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
	}

	matched, err := s.RequestRepository.UpdatePending(ctx, request)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	if !matched {
		return leave.RequestResponse{}, s.modifyFailure(ctx, id, employeeID)
	}

	updated, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to read back leave request: %w", err)
	}

	return mapRequestToResponse(updated), nil
}

// Delete implements leave.RequestService.
func (s *RequestServiceImpl) Delete(ctx context.Context, id, employeeID string) error {
	matched, err := s.RequestRepository.DeletePending(ctx, id, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if !matched {
		return s.modifyFailure(ctx, id, employeeID)
	}
	return nil
}

// modifyFailure distinguishes "gone" from "exists but not modifiable".
func (s *RequestServiceImpl) modifyFailure(ctx context.Context, id, employeeID string) error {
	request, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.ErrRequestNotFound
	}
	if request.EmployeeID != employeeID {
		return leave.ErrRequestNotFound
	}
	return leave.ErrRequestNotPending
}

// ListMine implements leave.RequestService. The response carries the computed
// balance so the list page can show remaining days next to the history.
func (s *RequestServiceImpl) ListMine(ctx context.Context, employeeID string, filter leave.ListFilter) (leave.ListRequestsResponse, error) {
	normalizeFilter(&filter)

	requests, total, err := s.RequestRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return leave.ListRequestsResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	balance, err := s.calculator.RemainingBalance(ctx, employeeID)
	if err != nil {
		return leave.ListRequestsResponse{}, err
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapRequestToResponse(request))
	}

	return leave.ListRequestsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
		Balance:    balance,
		Requests:   responses,
	}, nil
}

// ListPending implements leave.RequestService.
func (s *RequestServiceImpl) ListPending(ctx context.Context, filter leave.ListFilter) (leave.ListPendingResponse, error) {
	normalizeFilter(&filter)

	requests, total, err := s.RequestRepository.ListPending(ctx, filter)
	if err != nil {
		return leave.ListPendingResponse{}, fmt.Errorf("failed to list pending leave requests: %w", err)
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapRequestToResponse(request))
	}

	return leave.ListPendingResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
		Requests:   responses,
	}, nil
}

// Approve implements leave.RequestService.
func (s *RequestServiceImpl) Approve(ctx context.Context, id, adminID string) (leave.RequestResponse, error) {
	request, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if request.Status != leave.RequestStatusPending {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	approvedAt := s.now()
	request.Status = leave.RequestStatusApproved
	request.ApprovedAt = &approvedAt
	request.RejectedAt = nil
	request.RejectionReason = nil
	request.ProcessedBy = &adminID

	if err := s.RequestRepository.SetStatus(ctx, request); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to approve leave request: %w", err)
	}

	return mapRequestToResponse(request), nil
}

// Reject implements leave.RequestService.
func (s *RequestServiceImpl) Reject(ctx context.Context, id, adminID string, req leave.RejectRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	request, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if request.Status != leave.RequestStatusPending {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	rejectedAt := s.now()
	request.Status = leave.RequestStatusRejected
	request.ApprovedAt = nil
	request.RejectedAt = &rejectedAt
	request.RejectionReason = &req.Reason
	request.ProcessedBy = &adminID

	if err := s.RequestRepository.SetStatus(ctx, request); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to reject leave request: %w", err)
	}

	return mapRequestToResponse(request), nil
}

// Revert implements leave.RequestService. Reverting clears every piece of
// processing metadata so the request is indistinguishable from a fresh
// submission apart from its timestamps.
func (s *RequestServiceImpl) Revert(ctx context.Context, id, adminID string) (leave.RequestResponse, error) {
	request, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if request.Status == leave.RequestStatusPending {
		return leave.RequestResponse{}, leave.ErrNotProcessed
	}

	request.Status = leave.RequestStatusPending
	request.ApprovedAt = nil
	request.RejectedAt = nil
	request.RejectionReason = nil
	request.ProcessedBy = nil

	if err := s.RequestRepository.SetStatus(ctx, request); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to revert leave request: %w", err)
	}

	return mapRequestToResponse(request), nil
}

func normalizeFilter(filter *leave.ListFilter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = leave.DefaultPageSize
	}
}

func totalPages(total int64, limit int) int {
	return int(math.Ceil(float64(total) / float64(limit)))
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func mapRequestToResponse(request leave.Request) leave.RequestResponse {
	return leave.RequestResponse{
		ID:              request.ID,
		EmployeeID:      request.EmployeeID,
		Type:            request.Type,
		StartDate:       request.StartDate,
		EndDate:         request.EndDate,
		Reason:          request.Reason,
		Status:          request.Status,
		DaysConsumed:    DaysConsumed(request).String(),
		ApprovedAt:      timePtrToString(request.ApprovedAt),
		RejectedAt:      timePtrToString(request.RejectedAt),
		RejectionReason: request.RejectionReason,
		ProcessedBy:     request.ProcessedBy,
		CreatedAt:       request.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
