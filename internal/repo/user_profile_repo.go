package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BobbyWang0120/glint-next/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserProfileRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewUserProfileRepo(pool *pgxpool.Pool, timeout time.Duration) *UserProfileRepo {
	return &UserProfileRepo{pool: pool, timeout: timeout}
}

func (r *UserProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, phone, bio, avatar_url, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`, userID)

	var p models.UserProfile
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Phone,
		&p.Bio,
		&p.AvatarURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	return &p, nil
}

// Upsert creates or updates the row keyed by user_id in one statement.
// Nil fields leave existing column values untouched on update and store
// as NULL on first create.
func (r *UserProfileRepo) Upsert(ctx context.Context, p *models.UserProfile) (*models.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO user_profiles (user_id, name, phone, bio, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			name       = COALESCE(EXCLUDED.name, user_profiles.name),
			phone      = COALESCE(EXCLUDED.phone, user_profiles.phone),
			bio        = COALESCE(EXCLUDED.bio, user_profiles.bio),
			avatar_url = COALESCE(EXCLUDED.avatar_url, user_profiles.avatar_url),
			updated_at = NOW()
		RETURNING id, user_id, name, phone, bio, avatar_url, created_at, updated_at
	`, p.UserID, p.Name, p.Phone, p.Bio, p.AvatarURL)

	var out models.UserProfile
	if err := row.Scan(
		&out.ID,
		&out.UserID,
		&out.Name,
		&out.Phone,
		&out.Bio,
		&out.AvatarURL,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("upsert user profile: %w", err)
	}
	return &out, nil
}
