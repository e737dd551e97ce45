package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/attendance"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	RecordRollCall(w http.ResponseWriter, r *http.Request)
	ListByStudent(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	OccurrenceSheet(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Record implements AttendanceHandler.
func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded successfully", result)
}

// RecordRollCall implements AttendanceHandler.
func (h *attendanceHandlerImpl) RecordRollCall(w http.ResponseWriter, r *http.Request) {
	var req attendance.RollCallRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.attendanceService.RecordRollCall(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Roll call recorded successfully", results)
}

// ListByStudent implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByStudent(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	results, err := h.attendanceService.ListStudentAttendance(r.Context(), studentID, startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.Filter{
		Page:  parsePage(r),
		Limit: parseLimit(r),
	}
	if v := r.URL.Query().Get("student_id"); v != "" {
		filter.StudentID = &v
	}
	if v := r.URL.Query().Get("occurrence_id"); v != "" {
		filter.OccurrenceID = &v
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

	result, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, paginationMeta(filter.Page, filter.Limit, result.Total))
}

// OccurrenceSheet implements AttendanceHandler.
func (h *attendanceHandlerImpl) OccurrenceSheet(w http.ResponseWriter, r *http.Request) {
	occurrenceID := chi.URLParam(r, "id")
	date := r.URL.Query().Get("date")

	results, err := h.attendanceService.GetOccurrenceSheet(r.Context(), occurrenceID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
