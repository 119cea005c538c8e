package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mcube35/infranet-team1/internal/domain/employee"
	"github.com/mcube35/infranet-team1/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetAnnualLeave(w http.ResponseWriter, r *http.Request)
	UpdateAnnualLeave(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employees employee.EmployeeService
}

func NewEmployeeHandler(employees employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employees: employees}
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode employee request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employees.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

// GetAnnualLeave implements EmployeeHandler.
func (h *employeeHandlerImpl) GetAnnualLeave(w http.ResponseWriter, r *http.Request) {
	result, err := h.employees.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"annual_leave_days": result.AnnualLeaveDays})
}

// UpdateAnnualLeave implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateAnnualLeave(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateAnnualLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode annual leave request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employees.UpdateAnnualLeave(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Annual leave entitlement updated", result)
}
