package expense

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

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
	r.Post("/", h.record)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type recordExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	var req recordExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.actions.RecordExpense(r.Context(), auth.FromRequest(r).TenantID, action.RecordExpenseParams{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})

	writeJSON(w, result)
}

type updateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.actions.UpdateExpense(r.Context(), auth.FromRequest(r).TenantID, chi.URLParam(r, "id"), action.UpdateExpenseParams{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})

	writeJSON(w, result)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	result := h.actions.DeleteExpense(r.Context(), auth.FromRequest(r).TenantID, chi.URLParam(r, "id"))

	writeJSON(w, result)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
