package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bursana/internal/domain"
)

// ProfileRepositoryPG implements domain.ProfileRepository backed by PostgreSQL.
type ProfileRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepositoryPG.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepositoryPG {
	return &ProfileRepositoryPG{pool: pool}
}

// GetByID fetches a profile by user ID.
func (r *ProfileRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, email, credits, created_at, updated_at
FROM profiles
WHERE id = $1
`, id)

	var p domain.Profile
	if err := row.Scan(&p.ID, &p.Email, &p.Credits, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// SetCredits overwrites the stored balance. Used by the reconciler's
// bootstrap write; callers treat failures as non-fatal.
func (r *ProfileRepositoryPG) SetCredits(ctx context.Context, id string, credits int) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE profiles
SET credits = $2, updated_at = NOW()
WHERE id = $1
`, id, credits)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DebitCredit decrements the balance by one in a single guarded statement so
// concurrent requests cannot drive the stored value negative.
func (r *ProfileRepositoryPG) DebitCredit(ctx context.Context, id string) (int, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE profiles
SET credits = credits - 1, updated_at = NOW()
WHERE id = $1 AND credits > 0
RETURNING credits
`, id)

	var remaining int
	if err := row.Scan(&remaining); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInsufficientCredits
		}
		return 0, err
	}
	return remaining, nil
}

var _ domain.ProfileRepository = (*ProfileRepositoryPG)(nil)
