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

type SeekerProfileRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewSeekerProfileRepo(pool *pgxpool.Pool, timeout time.Duration) *SeekerProfileRepo {
	return &SeekerProfileRepo{pool: pool, timeout: timeout}
}

const seekerProfileColumns = `id, user_id, first_name, last_name, phone, location, title,
	years_experience, skills, bio, job_types, industries, salary, created_at, updated_at`

func (r *SeekerProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.SeekerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT `+seekerProfileColumns+`
		FROM seeker_profiles
		WHERE user_id = $1
	`, userID)

	profile, err := scanSeekerProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get seeker profile: %w", err)
	}
	return profile, nil
}

// Upsert is a single-statement create-or-update keyed by user_id. Fields
// sent as nil keep their previous values on update.
func (r *SeekerProfileRepo) Upsert(ctx context.Context, p *models.SeekerProfile) (*models.SeekerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO seeker_profiles (
			user_id, first_name, last_name, phone, location, title,
			years_experience, skills, bio, job_types, industries, salary
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (user_id) DO UPDATE SET
			first_name       = COALESCE(EXCLUDED.first_name, seeker_profiles.first_name),
			last_name        = COALESCE(EXCLUDED.last_name, seeker_profiles.last_name),
			phone            = COALESCE(EXCLUDED.phone, seeker_profiles.phone),
			location         = COALESCE(EXCLUDED.location, seeker_profiles.location),
			title            = COALESCE(EXCLUDED.title, seeker_profiles.title),
			years_experience = COALESCE(EXCLUDED.years_experience, seeker_profiles.years_experience),
			skills           = COALESCE(EXCLUDED.skills, seeker_profiles.skills),
			bio              = COALESCE(EXCLUDED.bio, seeker_profiles.bio),
			job_types        = COALESCE(EXCLUDED.job_types, seeker_profiles.job_types),
			industries       = COALESCE(EXCLUDED.industries, seeker_profiles.industries),
			salary           = COALESCE(EXCLUDED.salary, seeker_profiles.salary),
			updated_at       = NOW()
		RETURNING `+seekerProfileColumns+`
	`,
		p.UserID,
		p.FirstName,
		p.LastName,
		p.Phone,
		p.Location,
		p.Title,
		p.YearsExperience,
		p.Skills,
		p.Bio,
		p.JobTypes,
		p.Industries,
		p.Salary,
	)

	profile, err := scanSeekerProfile(row)
	if err != nil {
		return nil, fmt.Errorf("upsert seeker profile: %w", err)
	}
	return profile, nil
}

func scanSeekerProfile(row pgx.Row) (*models.SeekerProfile, error) {
	var p models.SeekerProfile
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.FirstName,
		&p.LastName,
		&p.Phone,
		&p.Location,
		&p.Title,
		&p.YearsExperience,
		&p.Skills,
		&p.Bio,
		&p.JobTypes,
		&p.Industries,
		&p.Salary,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
