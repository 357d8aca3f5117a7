package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"bursana/internal/credits"
	"bursana/internal/domain"
	"bursana/internal/middleware"
	"bursana/internal/promptgen"
	"bursana/internal/providers/gateway"
)

type generateRequest struct {
	UserID   string              `json:"userId"`
	ImageURL string              `json:"originalImageUrl"`
	Filters  domain.FilterRecord `json:"filters"`
}

type generateResponse struct {
	Success           bool               `json:"success"`
	GeneratedImageURL string             `json:"generatedImageUrl"`
	Generation        *domain.Generation `json:"generation,omitempty"`
	RemainingCredits  int                `json:"remainingCredits"`
}

// Generate runs the full pipeline for one showcase image: validate, load the
// profile, reconcile credits, build the prompt, call the model, persist the
// record, then debit. Persistence and debit failures after a successful model
// call are logged but never turned into user-facing errors; the user already
// paid the latency for the image.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	rid := middleware.RequestIDFromContext(r.Context())
	log := a.Logger.With().Str("request_id", rid).Logger()

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "validation", "invalid payload")
		return
	}
	req.UserID = strings.TrimSpace(req.UserID)
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	req.Filters.ProductType = strings.TrimSpace(req.Filters.ProductType)
	if req.UserID == "" || req.ImageURL == "" || req.Filters.ProductType == "" {
		a.error(w, http.StatusBadRequest, "validation", "userId, originalImageUrl and filters.productType are required")
		return
	}

	profile, err := a.Profiles.GetByID(r.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "profile not found")
			return
		}
		log.Error().Err(err).Msg("profile lookup failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}

	rec := credits.Reconcile(profile.Credits)
	if rec.ShouldPersist {
		if err := a.Profiles.SetCredits(r.Context(), profile.ID, rec.PersistValue); err != nil {
			// The write is best-effort; the user keeps the bootstrapped
			// balance for this request either way.
			log.Warn().Err(err).Str("user_id", profile.ID).Msg("credit bootstrap write failed")
		}
	}
	if rec.Effective <= 0 {
		a.error(w, http.StatusPaymentRequired, "insufficient_credits", "no credits remaining")
		return
	}

	prompt := promptgen.BuildPrompt(req.Filters)

	ctx, cancel := context.WithTimeout(r.Context(), a.Config.GenerateTimeout)
	defer cancel()
	generatedURL, err := a.Gateway.GenerateImage(ctx, gateway.GenerateRequest{
		Prompt:   prompt,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrRateLimited):
			a.providerError(w, http.StatusTooManyRequests, "rate_limit", "the image service is receiving too many requests, try again shortly")
		case errors.Is(err, gateway.ErrPaymentRequired):
			a.providerError(w, http.StatusPaymentRequired, "payment_required", "the image service account is out of credits")
		default:
			log.Error().Err(err).Str("user_id", profile.ID).Msg("generation failed")
			a.error(w, http.StatusInternalServerError, "generation_failed", "image generation failed")
		}
		return
	}

	gen := &domain.Generation{
		ID:                uuid.NewString(),
		UserID:            profile.ID,
		OriginalImageURL:  req.ImageURL,
		GeneratedImageURL: generatedURL,
		ModelType:         req.Filters.ModelType,
		BackgroundType:    req.Filters.Background,
		LightingStyle:     req.Filters.Lighting,
		CameraAngle:       req.Filters.Angle,
		Mood:              req.Filters.Mood,
		Status:            domain.GenerationCompleted,
		CreatedAt:         time.Now().UTC(),
	}
	if err := a.Generations.Create(r.Context(), gen); err != nil {
		log.Error().Err(err).Str("user_id", profile.ID).Msg("failed to persist generation record")
		gen = nil
	}

	remaining, err := a.Profiles.DebitCredit(r.Context(), profile.ID)
	if err != nil {
		// The guarded update can race with a concurrent spend or fail like
		// any other write. Report the locally computed balance and move on.
		log.Warn().Err(err).Str("user_id", profile.ID).Msg("credit debit failed")
		remaining = credits.Debit(rec.Effective)
	}

	a.json(w, http.StatusOK, generateResponse{
		Success:           true,
		GeneratedImageURL: generatedURL,
		Generation:        gen,
		RemainingCredits:  remaining,
	})
}
