package http

import (
	"errors"
	"net/http"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/handler/http/response"
	dashboardsvc "github.com/ponpes-albadr/pesantren-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	GuardianSummary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboardsvc.DashboardService
}

func NewDashboardHandler(dashboardService dashboardsvc.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Summary implements DashboardHandler.
func (h *dashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GuardianSummary implements DashboardHandler.
func (h *dashboardHandlerImpl) GuardianSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GuardianSummary(r.Context())
	if err != nil {
		if errors.Is(err, dashboardsvc.ErrNoLinkedStudent) {
			response.Forbidden(w, err.Error())
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
