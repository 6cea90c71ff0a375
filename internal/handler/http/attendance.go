package http

import (
	"net/http"

	"github.com/Marshmallowc/hrms-backend/internal/domain/attendance"
	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
	"github.com/Marshmallowc/hrms-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	StatsSummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	result, err := h.attendanceService.List(r.Context(), principal, queryParam(r, "date"))
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	result, err := h.attendanceService.Today(r.Context(), principal)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, result)
}

// ListByEmployee implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	month := attendance.MonthFilter{
		Year:  queryInt(r, "year"),
		Month: queryInt(r, "month"),
	}

	result, err := h.attendanceService.ListByEmployee(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, result)
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), principal)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Created(w, result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), principal)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, result)
}

// MonthlyReport implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	month := attendance.MonthFilter{
		Year:  queryInt(r, "year"),
		Month: queryInt(r, "month"),
	}

	result, err := h.attendanceService.MonthlyReport(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, result)
}

// StatsSummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) StatsSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.StatsSummary(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, result)
}
