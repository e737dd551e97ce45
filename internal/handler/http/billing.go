package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/billing"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/handler/http/response"
	billingsvc "github.com/ponpes-albadr/pesantren-backend-go/internal/service/billing"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/xendit"
)

type BillingHandler interface {
	GenerateBills(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByStudent(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	XenditInvoiceWebhook(w http.ResponseWriter, r *http.Request)
}

type billingHandlerImpl struct {
	billingService  billingsvc.BillingService
	webhookVerifier *xendit.WebhookVerifier
}

func NewBillingHandler(billingService billingsvc.BillingService, webhookVerifier *xendit.WebhookVerifier) BillingHandler {
	return &billingHandlerImpl{
		billingService:  billingService,
		webhookVerifier: webhookVerifier,
	}
}

// GenerateBills implements BillingHandler.
func (h *billingHandlerImpl) GenerateBills(w http.ResponseWriter, r *http.Request) {
	var req billing.GenerateBillsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.billingService.GenerateBills(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bills generated successfully", results)
}

// Get implements BillingHandler.
func (h *billingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.billingService.GetBill(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements BillingHandler.
func (h *billingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := billing.Filter{
		Page:  parsePage(r),
		Limit: parseLimit(r),
	}
	if v := r.URL.Query().Get("student_id"); v != "" {
		filter.StudentID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("month"); v != "" {
		if month, err := strconv.Atoi(v); err == nil {
			filter.Month = &month
		}
	}
	if v := r.URL.Query().Get("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			filter.Year = &year
		}
	}

	results, total, err := h.billingService.ListBills(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(filter.Page, filter.Limit, total))
}

// ListByStudent implements BillingHandler.
func (h *billingHandlerImpl) ListByStudent(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")

	var year *int
	if v := r.URL.Query().Get("year"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			year = &parsed
		}
	}

	results, err := h.billingService.ListByStudent(r.Context(), studentID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Pay implements BillingHandler.
func (h *billingHandlerImpl) Pay(w http.ResponseWriter, r *http.Request) {
	var req billing.PayBillRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.billingService.PayBill(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bill payment processed successfully", result)
}

// XenditInvoiceWebhook implements BillingHandler. Xendit authenticates
// callbacks with the x-callback-token header, not a JWT.
func (h *billingHandlerImpl) XenditInvoiceWebhook(w http.ResponseWriter, r *http.Request) {
	if !h.webhookVerifier.VerifyToken(r.Header.Get("x-callback-token")) {
		slog.Warn("xendit webhook rejected: bad callback token")
		response.Unauthorized(w, "Invalid callback token")
		return
	}

	var payload xendit.InvoiceWebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.Error("xendit webhook decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.billingService.HandleInvoiceWebhook(r.Context(), payload); err != nil {
		slog.Error("xendit webhook service error", "error", err, "invoice_id", payload.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Webhook processed", nil)
}
