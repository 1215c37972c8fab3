package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

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
	r.Get("/", h.get)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	result := h.actions.Dashboard(r.Context(), auth.FromRequest(r).TenantID)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
