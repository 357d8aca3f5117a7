package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"bursana/internal/domain"
	"bursana/internal/infra"
	"bursana/internal/providers/gateway"
	"bursana/internal/storage"
)

// ImageGenerator is the slice of the gateway client the handlers need.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req gateway.GenerateRequest) (string, error)
}

type App struct {
	Config      *infra.Config
	Logger      infra.Logger
	Profiles    domain.ProfileRepository
	Generations domain.GenerationRepository
	Stats       domain.StatsRepository
	Gateway     ImageGenerator
	Store       *storage.FileStore

	adminEmails map[string]struct{}
}

func NewApp(cfg *infra.Config, logger infra.Logger, profiles domain.ProfileRepository, generations domain.GenerationRepository, stats domain.StatsRepository, gw ImageGenerator, store *storage.FileStore) *App {
	admins := make(map[string]struct{}, len(cfg.AdminEmails))
	for _, email := range cfg.AdminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			admins[email] = struct{}{}
		}
	}
	return &App{
		Config:      cfg,
		Logger:      logger,
		Profiles:    profiles,
		Generations: generations,
		Stats:       stats,
		Gateway:     gw,
		Store:       store,
		adminEmails: admins,
	}
}

func (a *App) isAdmin(email string) bool {
	_, ok := a.adminEmails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

type apiError struct {
	Error     string `json:"error"`
	ErrorType string `json:"errorType,omitempty"`
	Source    string `json:"source,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errType, message string) {
	a.json(w, code, apiError{Error: message, ErrorType: errType})
}

// providerError carries a source marker so clients can tell workspace
// credit exhaustion apart from upstream provider billing and rate limits.
func (a *App) providerError(w http.ResponseWriter, code int, errType, message string) {
	a.json(w, code, apiError{Error: message, ErrorType: errType, Source: "provider"})
}
