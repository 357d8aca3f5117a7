package handlers

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"bursana/internal/domain"
	"bursana/internal/infra"
	"bursana/internal/providers/gateway"
)

type fakeProfiles struct {
	profile  *domain.Profile
	getErr   error
	setCalls   []int
	setErr     error
	debited    int
	debitCalls int
	debitErr   error
}

func (f *fakeProfiles) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.profile == nil || f.profile.ID != id {
		return nil, domain.ErrNotFound
	}
	return f.profile, nil
}

func (f *fakeProfiles) SetCredits(_ context.Context, _ string, credits int) error {
	f.setCalls = append(f.setCalls, credits)
	return f.setErr
}

func (f *fakeProfiles) DebitCredit(_ context.Context, _ string) (int, error) {
	f.debitCalls++
	if f.debitErr != nil {
		return 0, f.debitErr
	}
	return f.debited, nil
}

type fakeGenerations struct {
	created   []*domain.Generation
	createErr error
	items     []domain.Generation
	listErr   error
	deleteErr error
	deleted   []string
}

func (f *fakeGenerations) Create(_ context.Context, g *domain.Generation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, g)
	return nil
}

func (f *fakeGenerations) ListByUser(_ context.Context, _ string) ([]domain.Generation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeGenerations) Delete(_ context.Context, id, _ string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeStats struct {
	stats *domain.AdminStats
	err   error
}

func (f *fakeStats) AdminStats(context.Context) (*domain.AdminStats, error) {
	return f.stats, f.err
}

type fakeGateway struct {
	lastPrompt string
	lastImage  string
	url        string
	err        error
}

func (f *fakeGateway) GenerateImage(_ context.Context, req gateway.GenerateRequest) (string, error) {
	f.lastPrompt = req.Prompt
	f.lastImage = req.ImageURL
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func newTestApp(profiles *fakeProfiles, generations *fakeGenerations, stats *fakeStats, gw *fakeGateway) *App {
	cfg := &infra.Config{
		GenerateTimeout: time.Second,
		AdminEmails:     []string{"admin@example.com"},
	}
	if profiles == nil {
		profiles = &fakeProfiles{}
	}
	if generations == nil {
		generations = &fakeGenerations{}
	}
	if stats == nil {
		stats = &fakeStats{}
	}
	if gw == nil {
		gw = &fakeGateway{url: "https://cdn.example.com/out.png"}
	}
	return NewApp(cfg, zerolog.Nop(), profiles, generations, stats, gw, nil)
}
