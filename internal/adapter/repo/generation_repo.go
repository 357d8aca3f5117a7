package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bursana/internal/domain"
)

// GenerationRepositoryPG implements domain.GenerationRepository backed by PostgreSQL.
type GenerationRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewGenerationRepository creates a new GenerationRepositoryPG.
func NewGenerationRepository(pool *pgxpool.Pool) *GenerationRepositoryPG {
	return &GenerationRepositoryPG{pool: pool}
}

// Create inserts one generation record.
func (r *GenerationRepositoryPG) Create(ctx context.Context, g *domain.Generation) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO generations (
  id, user_id, original_image_url, generated_image_url,
  model_type, background_type, lighting_style, camera_angle, mood,
  status, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`,
		g.ID,
		g.UserID,
		g.OriginalImageURL,
		g.GeneratedImageURL,
		g.ModelType,
		g.BackgroundType,
		g.LightingStyle,
		g.CameraAngle,
		g.Mood,
		string(g.Status),
		g.CreatedAt,
	)
	return err
}

// ListByUser returns the user's generations, newest first.
func (r *GenerationRepositoryPG) ListByUser(ctx context.Context, userID string) ([]domain.Generation, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, original_image_url, generated_image_url,
       model_type, background_type, lighting_style, camera_angle, mood,
       status, created_at
FROM generations
WHERE user_id = $1
ORDER BY created_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Generation
	for rows.Next() {
		var g domain.Generation
		var status string
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.OriginalImageURL, &g.GeneratedImageURL,
			&g.ModelType, &g.BackgroundType, &g.LightingStyle, &g.CameraAngle, &g.Mood,
			&status, &g.CreatedAt,
		); err != nil {
			return nil, err
		}
		g.Status = domain.GenerationStatus(status)
		items = append(items, g)
	}
	return items, rows.Err()
}

// Delete removes one generation owned by the given user.
func (r *GenerationRepositoryPG) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM generations
WHERE id = $1 AND user_id = $2
`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ domain.GenerationRepository = (*GenerationRepositoryPG)(nil)

// StatsRepositoryPG aggregates admin counters.
type StatsRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepositoryPG.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepositoryPG {
	return &StatsRepositoryPG{pool: pool}
}

// AdminStats returns platform-wide totals for the admin dashboard.
func (r *StatsRepositoryPG) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	row := r.pool.QueryRow(ctx, `
SELECT
  (SELECT COUNT(*) FROM profiles),
  (SELECT COUNT(*) FROM generations),
  (SELECT COALESCE(SUM(credits), 0) FROM profiles)
`)

	var s domain.AdminStats
	if err := row.Scan(&s.TotalUsers, &s.TotalGenerations, &s.CreditsOutstanding); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

var _ domain.StatsRepository = (*StatsRepositoryPG)(nil)
