package leave

import (
	"context"

	"github.com/shopspring/decimal"
)

// BalanceCalculator computes an employee's paid-leave position from the
// entitlement and the set of approved requests. It recomputes from committed
// state on every call; no caching.
type BalanceCalculator interface {
	TotalConsumed(ctx context.Context, employeeID string) (decimal.Decimal, error)
	RemainingBalance(ctx context.Context, employeeID string) (Balance, error)
}

// RequestService owns the leave request lifecycle. Owner operations
// (Submit, Edit, Delete) act only on pending requests; Approve, Reject and
// Revert are administrator transitions.
type RequestService interface {
	Submit(ctx context.Context, employeeID string, req CreateRequestRequest) (RequestResponse, error)
	Edit(ctx context.Context, id, employeeID string, req UpdateRequestRequest) (RequestResponse, error)
	Delete(ctx context.Context, id, employeeID string) error
	ListMine(ctx context.Context, employeeID string, filter ListFilter) (ListRequestsResponse, error)

	ListPending(ctx context.Context, filter ListFilter) (ListPendingResponse, error)
	Approve(ctx context.Context, id, adminID string) (RequestResponse, error)
	Reject(ctx context.Context, id, adminID string, req RejectRequestRequest) (RequestResponse, error)
	Revert(ctx context.Context, id, adminID string) (RequestResponse, error)
}
