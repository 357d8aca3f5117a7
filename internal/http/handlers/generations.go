package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"bursana/internal/domain"
)

type generationListResponse struct {
	Generations []domain.Generation `json:"generations"`
}

// GenerationsList returns the user's gallery, newest first.
func (a *App) GenerationsList(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		a.error(w, http.StatusBadRequest, "validation", "userId is required")
		return
	}

	items, err := a.Generations.ListByUser(r.Context(), userID)
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to list generations")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load generations")
		return
	}
	if items == nil {
		items = []domain.Generation{}
	}
	a.json(w, http.StatusOK, generationListResponse{Generations: items})
}

// GenerationsDelete removes one gallery entry. Ownership is enforced in the
// repository so a user can only delete their own rows.
func (a *App) GenerationsDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if id == "" || userID == "" {
		a.error(w, http.StatusBadRequest, "validation", "id and userId are required")
		return
	}

	if err := a.Generations.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "generation not found")
			return
		}
		a.Logger.Error().Err(err).Str("user_id", userID).Str("generation_id", id).Msg("failed to delete generation")
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete generation")
		return
	}
	a.json(w, http.StatusOK, map[string]bool{"success": true})
}
