package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/activity"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/dormitory"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/room"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/schoolclass"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/handler/http/response"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/service/master"
)

type MasterHandler interface {
	// Dormitory handlers
	CreateDormitory(w http.ResponseWriter, r *http.Request)
	GetDormitory(w http.ResponseWriter, r *http.Request)
	ListDormitories(w http.ResponseWriter, r *http.Request)
	UpdateDormitory(w http.ResponseWriter, r *http.Request)
	DeleteDormitory(w http.ResponseWriter, r *http.Request)

	// Room handlers
	CreateRoom(w http.ResponseWriter, r *http.Request)
	GetRoom(w http.ResponseWriter, r *http.Request)
	ListRooms(w http.ResponseWriter, r *http.Request)
	UpdateRoom(w http.ResponseWriter, r *http.Request)
	DeleteRoom(w http.ResponseWriter, r *http.Request)

	// School class handlers
	CreateClass(w http.ResponseWriter, r *http.Request)
	GetClass(w http.ResponseWriter, r *http.Request)
	ListClasses(w http.ResponseWriter, r *http.Request)
	UpdateClass(w http.ResponseWriter, r *http.Request)
	DeleteClass(w http.ResponseWriter, r *http.Request)

	// Activity and occurrence handlers
	CreateActivity(w http.ResponseWriter, r *http.Request)
	GetActivity(w http.ResponseWriter, r *http.Request)
	ListActivities(w http.ResponseWriter, r *http.Request)
	UpdateActivity(w http.ResponseWriter, r *http.Request)
	DeactivateActivity(w http.ResponseWriter, r *http.Request)
	CreateOccurrence(w http.ResponseWriter, r *http.Request)
	ListOccurrences(w http.ResponseWriter, r *http.Request)
	DeleteOccurrence(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== DORMITORY HANDLERS ====================

func (h *masterHandlerImpl) CreateDormitory(w http.ResponseWriter, r *http.Request) {
	var req dormitory.CreateDormitoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateDormitory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Dormitory created successfully", result)
}

func (h *masterHandlerImpl) GetDormitory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetDormitory(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListDormitories(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListDormitories(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateDormitory(w http.ResponseWriter, r *http.Request) {
	var req dormitory.UpdateDormitoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateDormitory(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Dormitory updated successfully", nil)
}

func (h *masterHandlerImpl) DeleteDormitory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteDormitory(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Dormitory deleted successfully", nil)
}

// ==================== ROOM HANDLERS ====================

func (h *masterHandlerImpl) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req room.CreateRoomRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateRoom(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Room created successfully", result)
}

func (h *masterHandlerImpl) GetRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetRoom(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListRooms(w http.ResponseWriter, r *http.Request) {
	var dormitoryID *string
	if d := r.URL.Query().Get("dormitory_id"); d != "" {
		dormitoryID = &d
	}

	results, err := h.masterService.ListRooms(r.Context(), dormitoryID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var req room.UpdateRoomRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateRoom(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Room updated successfully", nil)
}

func (h *masterHandlerImpl) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteRoom(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Room deleted successfully", nil)
}

// ==================== SCHOOL CLASS HANDLERS ====================

func (h *masterHandlerImpl) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req schoolclass.CreateSchoolClassRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateClass(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "School class created successfully", result)
}

func (h *masterHandlerImpl) GetClass(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetClass(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListClasses(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListClasses(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateClass(w http.ResponseWriter, r *http.Request) {
	var req schoolclass.UpdateSchoolClassRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateClass(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "School class updated successfully", nil)
}

func (h *masterHandlerImpl) DeleteClass(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteClass(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "School class deleted successfully", nil)
}

// ==================== ACTIVITY HANDLERS ====================

func (h *masterHandlerImpl) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req activity.CreateActivityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateActivity(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Activity created successfully", result)
}

func (h *masterHandlerImpl) GetActivity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetActivity(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListActivities(w http.ResponseWriter, r *http.Request) {
	var category *string
	if c := r.URL.Query().Get("category"); c != "" {
		category = &c
	}

	results, err := h.masterService.ListActivities(r.Context(), category)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	var req activity.UpdateActivityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateActivity(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity updated successfully", nil)
}

func (h *masterHandlerImpl) DeactivateActivity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeactivateActivity(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity deactivated successfully", nil)
}

func (h *masterHandlerImpl) CreateOccurrence(w http.ResponseWriter, r *http.Request) {
	var req activity.CreateOccurrenceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ActivityID = chi.URLParam(r, "id")

	result, err := h.masterService.CreateOccurrence(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Activity occurrence created successfully", result)
}

func (h *masterHandlerImpl) ListOccurrences(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "id")

	results, err := h.masterService.ListOccurrences(r.Context(), activityID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) DeleteOccurrence(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "occurrenceID")

	if err := h.masterService.DeleteOccurrence(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity occurrence deleted successfully", nil)
}
