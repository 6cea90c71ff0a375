package http

import (
	"net/http"

	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
	"github.com/Marshmallowc/hrms-backend/internal/domain/dashboard"
	"github.com/Marshmallowc/hrms-backend/internal/handler/http/response"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	DepartmentStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Stats implements DashboardHandler.
func (h *dashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	result, err := h.dashboardService.BuildDashboard(r.Context(), principal)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, result)
}

// DepartmentStats implements DashboardHandler.
func (h *dashboardHandlerImpl) DepartmentStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.DepartmentStats(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, result)
}
