package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/budgetron-org/budgetron-sub001/internal/http/middleware"
	"github.com/budgetron-org/budgetron-sub001/internal/report"
	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/categories", h.categoryBreakdown)
	r.Get("/cashflow", h.cashFlow)
}

type categoryTotalResponse struct {
	CategoryID   *uuid.UUID       `json:"category_id,omitempty"`
	CategoryName string           `json:"category_name"`
	Type         transaction.Type `json:"type"`
	Total        int64            `json:"total"`
}

func (h *Handler) categoryBreakdown(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	from, err := time.Parse(time.DateOnly, r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "from date is required (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	to, err := time.Parse(time.DateOnly, r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "to date is required (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	totals, err := h.svc.CategoryBreakdown(r.Context(), userID, from, to)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	responses := make([]categoryTotalResponse, 0, len(totals))
	for _, t := range totals {
		responses = append(responses, categoryTotalResponse{
			CategoryID:   t.CategoryID,
			CategoryName: t.CategoryName,
			Type:         t.Type,
			Total:        t.Total,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(responses); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type monthlyTotalResponse struct {
	Month    int   `json:"month"`
	Income   int64 `json:"income"`
	Expenses int64 `json:"expenses"`
}

func (h *Handler) cashFlow(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "year is required", http.StatusBadRequest)
		return
	}

	totals, err := h.svc.CashFlow(r.Context(), userID, year)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	responses := make([]monthlyTotalResponse, 0, len(totals))
	for _, t := range totals {
		responses = append(responses, monthlyTotalResponse{
			Month:    int(t.Month),
			Income:   t.Income,
			Expenses: t.Expenses,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(responses); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
