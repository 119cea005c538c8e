package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mcube35/infranet-team1/internal/domain/employee"
	"github.com/mcube35/infranet-team1/internal/domain/leave"
	"github.com/shopspring/decimal"
)

var halfDay = decimal.NewFromFloat(0.5)

// DaysConsumed returns how many paid-leave days a single request costs.
// A half day is always exactly 0.5 regardless of the stored range; a full-day
// request counts its inclusive calendar days. Unparseable stored dates cost
// nothing so one bad document cannot break the balance display.
func DaysConsumed(request leave.Request) decimal.Decimal {
	if request.Type == leave.TypeHalfDay {
		return halfDay
	}

	start, err := time.Parse("2006-01-02", request.StartDate)
	if err != nil {
		return decimal.Zero
	}
	end, err := time.Parse("2006-01-02", request.EndDate)
	if err != nil {
		return decimal.Zero
	}

	days := int64(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(days)
}

type BalanceCalculatorImpl struct {
	leave.RequestRepository
	employee.EmployeeRepository
}

func NewBalanceCalculator(requestRepo leave.RequestRepository, employeeRepo employee.EmployeeRepository) *BalanceCalculatorImpl {
	return &BalanceCalculatorImpl{
		RequestRepository:  requestRepo,
		EmployeeRepository: employeeRepo,
	}
}

// TotalConsumed implements leave.BalanceCalculator. Only approved requests
// count; pending and rejected ones never do.
func (c *BalanceCalculatorImpl) TotalConsumed(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	approved, err := c.RequestRepository.ListApprovedByEmployee(ctx, employeeID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list approved leave requests: %w", err)
	}

	total := decimal.Zero
	for _, request := range approved {
		total = total.Add(DaysConsumed(request))
	}
	return total, nil
}

// RemainingBalance implements leave.BalanceCalculator. A missing employee
// record contributes a zero entitlement; the result may be negative when an
// administrator approves leave beyond the entitlement and is reported as-is.
func (c *BalanceCalculatorImpl) RemainingBalance(ctx context.Context, employeeID string) (leave.Balance, error) {
	entitlementDays := 0
	days, err := c.EmployeeRepository.GetAnnualLeaveDays(ctx, employeeID)
	switch {
	case err == nil:
		entitlementDays = days
	case errors.Is(err, employee.ErrEmployeeNotFound):
		// keep zero
	default:
		return leave.Balance{}, fmt.Errorf("failed to read annual leave entitlement: %w", err)
	}

	used, err := c.TotalConsumed(ctx, employeeID)
	if err != nil {
		return leave.Balance{}, err
	}

	entitlement := decimal.NewFromInt(int64(entitlementDays))
	return leave.Balance{
		TotalDays:     entitlement,
		UsedDays:      used,
		RemainingDays: entitlement.Sub(used),
	}, nil
}
