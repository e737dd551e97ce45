package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/recap"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/handler/http/response"
)

type RecapHandler interface {
	StudentPerformance(w http.ResponseWriter, r *http.Request)
	StudentMonthlyMatrix(w http.ResponseWriter, r *http.Request)
	StaffMonthlyMatrix(w http.ResponseWriter, r *http.Request)
	StudentMonthlyMatrixPDF(w http.ResponseWriter, r *http.Request)
}

type recapHandlerImpl struct {
	recapService recap.Service
}

func NewRecapHandler(recapService recap.Service) RecapHandler {
	return &recapHandlerImpl{recapService: recapService}
}

// StudentPerformance implements RecapHandler.
func (h *recapHandlerImpl) StudentPerformance(w http.ResponseWriter, r *http.Request) {
	req := recap.PerformanceRequest{
		StudentID: chi.URLParam(r, "id"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.recapService.ComputePerformance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// StudentMonthlyMatrix implements RecapHandler.
func (h *recapHandlerImpl) StudentMonthlyMatrix(w http.ResponseWriter, r *http.Request) {
	req := matrixRequest(r)

	result, err := h.recapService.StudentMonthlyMatrix(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// StaffMonthlyMatrix implements RecapHandler.
func (h *recapHandlerImpl) StaffMonthlyMatrix(w http.ResponseWriter, r *http.Request) {
	req := matrixRequest(r)

	result, err := h.recapService.StaffMonthlyMatrix(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// StudentMonthlyMatrixPDF implements RecapHandler. Responds with the
// rendered PDF instead of the JSON envelope.
func (h *recapHandlerImpl) StudentMonthlyMatrixPDF(w http.ResponseWriter, r *http.Request) {
	req := matrixRequest(r)

	pdfBytes, err := h.recapService.StudentMonthlyMatrixPDF(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("rekap-%s-%04d-%02d.pdf", req.SubjectID, req.Year, req.Month)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

func matrixRequest(r *http.Request) recap.MonthlyMatrixRequest {
	req := recap.MonthlyMatrixRequest{
		SubjectID: chi.URLParam(r, "id"),
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		req.Year = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil {
		req.Month = v
	}
	return req
}
