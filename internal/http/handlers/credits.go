package handlers

import (
	"errors"
	"net/http"
	"strings"

	"bursana/internal/credits"
	"bursana/internal/domain"
)

type creditsResponse struct {
	Credits int `json:"credits"`
}

// Credits returns the reconciled balance for the dashboard. New or zeroed
// accounts see the free allowance immediately, before any generation runs.
func (a *App) Credits(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		a.error(w, http.StatusBadRequest, "validation", "userId is required")
		return
	}

	profile, err := a.Profiles.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "profile not found")
			return
		}
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("profile lookup failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}

	rec := credits.Reconcile(profile.Credits)
	if rec.ShouldPersist {
		if err := a.Profiles.SetCredits(r.Context(), profile.ID, rec.PersistValue); err != nil {
			a.Logger.Warn().Err(err).Str("user_id", profile.ID).Msg("credit bootstrap write failed")
		}
	}

	a.json(w, http.StatusOK, creditsResponse{Credits: rec.Effective})
}
