package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/leave"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Transition(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByStudent(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Leave create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Leave create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created successfully", result)
}

// Transition implements LeaveHandler. The event name comes from the
// URL so each lifecycle step is its own endpoint.
func (h *leaveHandlerImpl) Transition(w http.ResponseWriter, r *http.Request) {
	req := leave.TransitionRequest{
		ID:    chi.URLParam(r, "id"),
		Event: chi.URLParam(r, "event"),
	}

	result, err := h.leaveService.Transition(r.Context(), req)
	if err != nil {
		slog.Error("Leave transition service error", "error", err, "id", req.ID, "event", req.Event)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated successfully", result)
}

// Get implements LeaveHandler.
func (h *leaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.leaveService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements LeaveHandler.
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := leave.Filter{
		Page:  parsePage(r),
		Limit: parseLimit(r),
	}
	if v := r.URL.Query().Get("student_id"); v != "" {
		filter.StudentID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	results, total, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(filter.Page, filter.Limit, total))
}

// ListByStudent implements LeaveHandler.
func (h *leaveHandlerImpl) ListByStudent(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")

	results, err := h.leaveService.ListByStudent(r.Context(), studentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
