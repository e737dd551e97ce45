package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/conduct"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/handler/http/response"
	conductsvc "github.com/ponpes-albadr/pesantren-backend-go/internal/service/conduct"
)

type ConductHandler interface {
	RecordViolation(w http.ResponseWriter, r *http.Request)
	ListViolations(w http.ResponseWriter, r *http.Request)
	DeleteViolation(w http.ResponseWriter, r *http.Request)
	RecordAchievement(w http.ResponseWriter, r *http.Request)
	ListAchievements(w http.ResponseWriter, r *http.Request)
	DeleteAchievement(w http.ResponseWriter, r *http.Request)
	PointSummary(w http.ResponseWriter, r *http.Request)
}

type conductHandlerImpl struct {
	conductService conductsvc.ConductService
}

func NewConductHandler(conductService conductsvc.ConductService) ConductHandler {
	return &conductHandlerImpl{conductService: conductService}
}

func (h *conductHandlerImpl) RecordViolation(w http.ResponseWriter, r *http.Request) {
	var req conduct.CreateViolationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.conductService.RecordViolation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Violation recorded successfully", result)
}

func (h *conductHandlerImpl) ListViolations(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")
	from, to := parseDateRange(r)

	results, err := h.conductService.ListViolations(r.Context(), studentID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *conductHandlerImpl) DeleteViolation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.conductService.DeleteViolation(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Violation deleted successfully", nil)
}

func (h *conductHandlerImpl) RecordAchievement(w http.ResponseWriter, r *http.Request) {
	var req conduct.CreateAchievementRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.conductService.RecordAchievement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Achievement recorded successfully", result)
}

func (h *conductHandlerImpl) ListAchievements(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")
	from, to := parseDateRange(r)

	results, err := h.conductService.ListAchievements(r.Context(), studentID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *conductHandlerImpl) DeleteAchievement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.conductService.DeleteAchievement(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Achievement deleted successfully", nil)
}

func (h *conductHandlerImpl) PointSummary(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")

	result, err := h.conductService.PointSummary(r.Context(), studentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// parseDateRange reads optional from/to query params as YYYY-MM-DD.
func parseDateRange(r *http.Request) (*time.Time, *time.Time) {
	var from, to *time.Time
	if v := r.URL.Query().Get("from"); v != "" {
		if parsed, err := time.Parse("2006-01-02", v); err == nil {
			from = &parsed
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if parsed, err := time.Parse("2006-01-02", v); err == nil {
			to = &parsed
		}
	}
	return from, to
}
