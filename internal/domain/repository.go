package domain

import "context"

// ProfileRepository defines access methods for user profiles and their
// credit balances.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*Profile, error)
	// SetCredits overwrites the stored balance, used by the reconciler's
	// bootstrap write. It must be safe to call for a row that concurrently
	// changed; last write wins.
	SetCredits(ctx context.Context, id string, credits int) error
	// DebitCredit atomically decrements the balance by one, guarded so the
	// stored value never goes negative. Returns the post-debit balance, or
	// ErrInsufficientCredits when the stored balance was already zero.
	DebitCredit(ctx context.Context, id string) (int, error)
}

// GenerationRepository persists finished generation records.
type GenerationRepository interface {
	Create(ctx context.Context, g *Generation) error
	ListByUser(ctx context.Context, userID string) ([]Generation, error)
	Delete(ctx context.Context, id, userID string) error
}

// StatsRepository aggregates counters for the admin dashboard.
type StatsRepository interface {
	AdminStats(ctx context.Context) (*AdminStats, error)
}
