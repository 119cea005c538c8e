package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mcube35/infranet-team1/internal/domain/attendance"
	"github.com/mcube35/infranet-team1/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	SaveMemo(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	ledger attendance.LedgerService
}

func NewAttendanceHandler(ledger attendance.LedgerService) AttendanceHandler {
	return &attendanceHandlerImpl{ledger: ledger}
}

// ClockIn implements AttendanceHandler. Clocking in twice the same day
// returns the existing record with 200; the double call is not an error.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.ledger.ClockIn(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock in recorded", result)
}

// ClockOut implements AttendanceHandler. Without a prior clock-in this still
// responds with success; the ledger deliberately leaves the record set
// untouched.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.ledger.ClockOut(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out recorded", result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	filter := attendance.ListFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			filter.Page = pageNum
		}
	}

	result, err := h.ledger.ListRecords(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveMemo implements AttendanceHandler.
func (h *attendanceHandlerImpl) SaveMemo(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	recordID := chi.URLParam(r, "id")

	var req attendance.SaveMemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode memo request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.ledger.SaveMemo(r.Context(), recordID, employeeID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Memo saved", nil)
}
