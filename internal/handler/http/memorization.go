package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/memorization"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/handler/http/response"
	memorizationsvc "github.com/ponpes-albadr/pesantren-backend-go/internal/service/memorization"
)

type MemorizationHandler interface {
	RecordEntry(w http.ResponseWriter, r *http.Request)
	ListByStudent(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Progress(w http.ResponseWriter, r *http.Request)
}

type memorizationHandlerImpl struct {
	memorizationService memorizationsvc.MemorizationService
}

func NewMemorizationHandler(memorizationService memorizationsvc.MemorizationService) MemorizationHandler {
	return &memorizationHandlerImpl{memorizationService: memorizationService}
}

func (h *memorizationHandlerImpl) RecordEntry(w http.ResponseWriter, r *http.Request) {
	var req memorization.CreateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.memorizationService.RecordEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Memorization entry recorded successfully", result)
}

func (h *memorizationHandlerImpl) ListByStudent(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")
	from, to := parseDateRange(r)

	results, err := h.memorizationService.ListByStudent(r.Context(), studentID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *memorizationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.memorizationService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Memorization entry deleted successfully", nil)
}

func (h *memorizationHandlerImpl) Progress(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")

	result, err := h.memorizationService.Progress(r.Context(), studentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
