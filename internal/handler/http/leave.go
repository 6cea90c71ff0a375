package http

import (
	"encoding/json"
	"net/http"

	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
	"github.com/Marshmallowc/hrms-backend/internal/domain/leave"
	"github.com/Marshmallowc/hrms-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// List implements LeaveHandler.
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	result, err := h.leaveService.List(r.Context(), principal, queryParam(r, "status"))
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, result)
}

// Create implements LeaveHandler.
func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, r, err)
		return
	}

	result, err := h.leaveService.Create(r.Context(), principal, req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Created(w, result)
}

// UpdateStatus implements LeaveHandler.
func (h *leaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req leave.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.leaveService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, result)
}

// Delete implements LeaveHandler.
func (h *leaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.leaveService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, leave.MessageResponse{Message: "Leave request deleted successfully"})
}
