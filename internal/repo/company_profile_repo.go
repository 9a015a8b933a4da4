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

type CompanyProfileRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewCompanyProfileRepo(pool *pgxpool.Pool, timeout time.Duration) *CompanyProfileRepo {
	return &CompanyProfileRepo{pool: pool, timeout: timeout}
}

const companyProfileColumns = `id, user_id, name, website, industry, size, founded, phone,
	email, location, address, description, mission, culture, benefits,
	linkedin, twitter, license_number, created_at, updated_at`

func (r *CompanyProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.CompanyProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT `+companyProfileColumns+`
		FROM company_profiles
		WHERE user_id = $1
	`, userID)

	profile, err := scanCompanyProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get company profile: %w", err)
	}
	return profile, nil
}

func (r *CompanyProfileRepo) Upsert(ctx context.Context, p *models.CompanyProfile) (*models.CompanyProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO company_profiles (
			user_id, name, website, industry, size, founded, phone, email,
			location, address, description, mission, culture, benefits,
			linkedin, twitter, license_number
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		ON CONFLICT (user_id) DO UPDATE SET
			name           = COALESCE(EXCLUDED.name, company_profiles.name),
			website        = COALESCE(EXCLUDED.website, company_profiles.website),
			industry       = COALESCE(EXCLUDED.industry, company_profiles.industry),
			size           = COALESCE(EXCLUDED.size, company_profiles.size),
			founded        = COALESCE(EXCLUDED.founded, company_profiles.founded),
			phone          = COALESCE(EXCLUDED.phone, company_profiles.phone),
			email          = COALESCE(EXCLUDED.email, company_profiles.email),
			location       = COALESCE(EXCLUDED.location, company_profiles.location),
			address        = COALESCE(EXCLUDED.address, company_profiles.address),
			description    = COALESCE(EXCLUDED.description, company_profiles.description),
			mission        = COALESCE(EXCLUDED.mission, company_profiles.mission),
			culture        = COALESCE(EXCLUDED.culture, company_profiles.culture),
			benefits       = COALESCE(EXCLUDED.benefits, company_profiles.benefits),
			linkedin       = COALESCE(EXCLUDED.linkedin, company_profiles.linkedin),
			twitter        = COALESCE(EXCLUDED.twitter, company_profiles.twitter),
			license_number = COALESCE(EXCLUDED.license_number, company_profiles.license_number),
			updated_at     = NOW()
		RETURNING `+companyProfileColumns+`
	`,
		p.UserID,
		p.Name,
		p.Website,
		p.Industry,
		p.Size,
		p.Founded,
		p.Phone,
		p.Email,
		p.Location,
		p.Address,
		p.Description,
		p.Mission,
		p.Culture,
		p.Benefits,
		p.LinkedIn,
		p.Twitter,
		p.LicenseNumber,
	)

	profile, err := scanCompanyProfile(row)
	if err != nil {
		return nil, fmt.Errorf("upsert company profile: %w", err)
	}
	return profile, nil
}

func scanCompanyProfile(row pgx.Row) (*models.CompanyProfile, error) {
	var p models.CompanyProfile
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Website,
		&p.Industry,
		&p.Size,
		&p.Founded,
		&p.Phone,
		&p.Email,
		&p.Location,
		&p.Address,
		&p.Description,
		&p.Mission,
		&p.Culture,
		&p.Benefits,
		&p.LinkedIn,
		&p.Twitter,
		&p.LicenseNumber,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
