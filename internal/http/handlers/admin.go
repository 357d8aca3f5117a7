package handlers

import (
	"net/http"
	"strings"
)

// AdminStats returns platform-wide counters. Access is gated by the
// configured admin email allowlist rather than a role column.
func (a *App) AdminStats(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		a.error(w, http.StatusBadRequest, "validation", "email is required")
		return
	}
	if !a.isAdmin(email) {
		a.error(w, http.StatusForbidden, "forbidden", "not an admin account")
		return
	}

	stats, err := a.Stats.AdminStats(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to load admin stats")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}
	a.json(w, http.StatusOK, stats)
}
