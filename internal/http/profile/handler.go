package profile

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/kharcha-app/kharcha/internal/action"
	"github.com/kharcha-app/kharcha/internal/http/auth"
)

const maxNoteLength = 500

type Handler struct {
	actions *action.Facade
}

func NewHandler(actions *action.Facade) *Handler {
	return &Handler{actions: actions}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/note", h.updateNote)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromRequest(r)

	result := h.actions.Profile(r.Context(), identity.TenantID, identity.Email, identity.Name)

	writeJSON(w, result)
}

type updateNoteRequest struct {
	Note string `json:"note"`
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if utf8.RuneCountInString(req.Note) > maxNoteLength {
		http.Error(w, "note must be 500 characters or fewer", http.StatusBadRequest)
		return
	}

	identity := auth.FromRequest(r)

	result := h.actions.UpdateNote(r.Context(), identity.TenantID, req.Note, identity.Email, identity.Name)

	writeJSON(w, result)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
