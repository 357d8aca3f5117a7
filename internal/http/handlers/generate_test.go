package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bursana/internal/domain"
	"bursana/internal/providers/gateway"
)

func intPtr(v int) *int { return &v }

func doGenerate(t *testing.T, app *App, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/generate", strings.NewReader(body))
	rr := httptest.NewRecorder()
	app.Generate(rr, req)
	return rr
}

const validGenerateBody = `{
	"userId": "user-1",
	"originalImageUrl": "https://cdn.example.com/in.png",
	"filters": {"productType": "handbag", "background": "beach"}
}`

func TestGenerate_Success(t *testing.T) {
	profiles := &fakeProfiles{
		profile: &domain.Profile{ID: "user-1", Credits: intPtr(3)},
		debited: 2,
	}
	generations := &fakeGenerations{}
	gw := &fakeGateway{url: "https://cdn.example.com/out.png"}
	app := newTestApp(profiles, generations, nil, gw)

	rr := doGenerate(t, app, validGenerateBody)
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, want 200 (body %s)", rr.Code, rr.Body.String())
	}

	var resp generateResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success=true")
	}
	if resp.GeneratedImageURL != "https://cdn.example.com/out.png" {
		t.Fatalf("unexpected generated url: %s", resp.GeneratedImageURL)
	}
	if resp.RemainingCredits != 2 {
		t.Fatalf("remainingCredits = %d, want 2", resp.RemainingCredits)
	}
	if resp.Generation == nil || resp.Generation.UserID != "user-1" {
		t.Fatalf("expected generation record for user-1, got %+v", resp.Generation)
	}
	if resp.Generation.Status != domain.GenerationCompleted {
		t.Fatalf("generation status = %s, want completed", resp.Generation.Status)
	}

	if len(generations.created) != 1 {
		t.Fatalf("expected 1 persisted generation, got %d", len(generations.created))
	}
	if gw.lastImage != "https://cdn.example.com/in.png" {
		t.Fatalf("gateway received image %q", gw.lastImage)
	}
	if !strings.Contains(gw.lastPrompt, "handbag") {
		t.Fatalf("prompt does not mention the product: %q", gw.lastPrompt)
	}
	if len(profiles.setCalls) != 0 {
		t.Fatalf("positive balance must not trigger a bootstrap write, got %v", profiles.setCalls)
	}
}

func TestGenerate_BootstrapsEmptyBalance(t *testing.T) {
	profiles := &fakeProfiles{
		profile: &domain.Profile{ID: "user-1", Credits: nil},
		debited: 4,
	}
	app := newTestApp(profiles, nil, nil, nil)

	rr := doGenerate(t, app, validGenerateBody)
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, want 200 (body %s)", rr.Code, rr.Body.String())
	}
	if len(profiles.setCalls) != 1 || profiles.setCalls[0] != 5 {
		t.Fatalf("expected one bootstrap write of 5 credits, got %v", profiles.setCalls)
	}
}

func TestGenerate_BootstrapWriteFailureDoesNotBlock(t *testing.T) {
	profiles := &fakeProfiles{
		profile:  &domain.Profile{ID: "user-1", Credits: intPtr(0)},
		setErr:   errors.New("db down"),
		debitErr: errors.New("db down"),
	}
	app := newTestApp(profiles, nil, nil, nil)

	rr := doGenerate(t, app, validGenerateBody)
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, want 200 (body %s)", rr.Code, rr.Body.String())
	}
	var resp generateResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// Debit also failed, so the fallback consumes one of the five
	// bootstrapped credits locally.
	if resp.RemainingCredits != 4 {
		t.Fatalf("remainingCredits = %d, want 4", resp.RemainingCredits)
	}
}

func TestGenerate_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{`},
		{name: "missing user", body: `{"originalImageUrl":"x","filters":{"productType":"saree"}}`},
		{name: "missing image", body: `{"userId":"u","filters":{"productType":"saree"}}`},
		{name: "missing product type", body: `{"userId":"u","originalImageUrl":"x","filters":{}}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			profiles := &fakeProfiles{profile: &domain.Profile{ID: "u", Credits: intPtr(3)}}
			generations := &fakeGenerations{}
			app := newTestApp(profiles, generations, nil, nil)
			rr := doGenerate(t, app, tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("unexpected status: got %d, want 400", rr.Code)
			}
			var resp apiError
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.ErrorType != "validation" {
				t.Fatalf("errorType = %q, want validation", resp.ErrorType)
			}
			if len(generations.created) != 0 {
				t.Fatal("rejected requests must not persist generations")
			}
			if profiles.debitCalls != 0 || len(profiles.setCalls) != 0 {
				t.Fatalf("rejected requests must not mutate credits: debits=%d writes=%v", profiles.debitCalls, profiles.setCalls)
			}
		})
	}
}

func TestGenerate_ProfileNotFound(t *testing.T) {
	app := newTestApp(&fakeProfiles{}, nil, nil, nil)
	rr := doGenerate(t, app, validGenerateBody)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got %d, want 404", rr.Code)
	}
}

func TestGenerate_ProviderOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		gwErr      error
		wantCode   int
		wantType   string
		wantSource string
	}{
		{
			name:       "rate limited",
			gwErr:      gateway.ErrRateLimited,
			wantCode:   http.StatusTooManyRequests,
			wantType:   "rate_limit",
			wantSource: "provider",
		},
		{
			name:       "provider out of credits",
			gwErr:      gateway.ErrPaymentRequired,
			wantCode:   http.StatusPaymentRequired,
			wantType:   "payment_required",
			wantSource: "provider",
		},
		{
			name:     "empty image",
			gwErr:    gateway.ErrEmptyImage,
			wantCode: http.StatusInternalServerError,
			wantType: "generation_failed",
		},
		{
			name:     "generic failure",
			gwErr:    errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantType: "generation_failed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			profiles := &fakeProfiles{profile: &domain.Profile{ID: "user-1", Credits: intPtr(3)}}
			generations := &fakeGenerations{}
			app := newTestApp(profiles, generations, nil, &fakeGateway{err: tc.gwErr})

			rr := doGenerate(t, app, validGenerateBody)
			if rr.Code != tc.wantCode {
				t.Fatalf("unexpected status: got %d, want %d", rr.Code, tc.wantCode)
			}
			var resp apiError
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.ErrorType != tc.wantType {
				t.Fatalf("errorType = %q, want %q", resp.ErrorType, tc.wantType)
			}
			if resp.Source != tc.wantSource {
				t.Fatalf("source = %q, want %q", resp.Source, tc.wantSource)
			}
			if len(generations.created) != 0 {
				t.Fatal("failed generations must not be persisted")
			}
			if profiles.debitCalls != 0 {
				t.Fatalf("failed generations must not debit credits, got %d debit calls", profiles.debitCalls)
			}
			if len(profiles.setCalls) != 0 {
				t.Fatalf("failed generations must not touch the stored balance, got writes %v", profiles.setCalls)
			}
		})
	}
}

func TestGenerate_PersistFailureStillSucceeds(t *testing.T) {
	profiles := &fakeProfiles{
		profile: &domain.Profile{ID: "user-1", Credits: intPtr(2)},
		debited: 1,
	}
	generations := &fakeGenerations{createErr: errors.New("insert failed")}
	app := newTestApp(profiles, generations, nil, nil)

	rr := doGenerate(t, app, validGenerateBody)
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, want 200 (body %s)", rr.Code, rr.Body.String())
	}
	var resp generateResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Generation != nil {
		t.Fatal("expected generation to be omitted when the insert fails")
	}
	if resp.GeneratedImageURL == "" {
		t.Fatal("expected generated image url despite insert failure")
	}
}

func TestGenerate_DebitRaceFallsBackToLocalBalance(t *testing.T) {
	profiles := &fakeProfiles{
		profile:  &domain.Profile{ID: "user-1", Credits: intPtr(1)},
		debitErr: domain.ErrInsufficientCredits,
	}
	app := newTestApp(profiles, nil, nil, nil)

	rr := doGenerate(t, app, validGenerateBody)
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, want 200 (body %s)", rr.Code, rr.Body.String())
	}
	var resp generateResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RemainingCredits != 0 {
		t.Fatalf("remainingCredits = %d, want 0", resp.RemainingCredits)
	}
}
