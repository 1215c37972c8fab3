package budget

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/kharcha-app/kharcha/internal/action"
	"github.com/kharcha-app/kharcha/internal/http/auth"
)

type Handler struct {
	actions *action.Facade
}

func NewHandler(actions *action.Facade) *Handler {
	return &Handler{actions: actions}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.set)
	r.Delete("/{id}", h.delete)
	r.Get("/alerts", h.alerts)
}

type setBudgetRequest struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
}

func (h *Handler) set(w http.ResponseWriter, r *http.Request) {
	var req setBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.actions.SetBudget(r.Context(), auth.FromRequest(r).TenantID, req.Category, req.Limit)

	writeJSON(w, result)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	result := h.actions.DeleteBudget(r.Context(), auth.FromRequest(r).TenantID, chi.URLParam(r, "id"))

	writeJSON(w, result)
}

func (h *Handler) alerts(w http.ResponseWriter, r *http.Request) {
	result := h.actions.BudgetAlerts(r.Context(), auth.FromRequest(r).TenantID)

	writeJSON(w, result)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
