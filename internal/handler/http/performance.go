package http

import (
	"encoding/json"
	"net/http"

	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
	"github.com/Marshmallowc/hrms-backend/internal/domain/performance"
	"github.com/Marshmallowc/hrms-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PerformanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &performanceHandlerImpl{
		performanceService: performanceService,
	}
}

// List implements PerformanceHandler.
func (h *performanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	result, err := h.performanceService.List(r.Context(), principal)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, result)
}

// ListByEmployee implements PerformanceHandler.
func (h *performanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	result, err := h.performanceService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, result)
}

// Create implements PerformanceHandler.
func (h *performanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	var req performance.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, r, err)
		return
	}

	result, err := h.performanceService.Create(r.Context(), principal, req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Created(w, result)
}

// Update implements PerformanceHandler.
func (h *performanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req performance.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.performanceService.Update(r.Context(), id, req); err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, performance.MessageResponse{Message: "Performance review updated successfully"})
}

// Stats implements PerformanceHandler.
func (h *performanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, result)
}
