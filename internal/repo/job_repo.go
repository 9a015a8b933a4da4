package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BobbyWang0120/glint-next/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type JobRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

type JobFilters struct {
	Search   string
	Location string
	Type     string
	Page     int
	PerPage  int
}

func NewJobRepo(pool *pgxpool.Pool, timeout time.Duration) *JobRepo {
	return &JobRepo{pool: pool, timeout: timeout}
}

func (r *JobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT id, title, company, location, salary, description, tags, types,
			posted_at, created_at, updated_at
		FROM jobs
		WHERE id = $1
	`, id)

	var job models.Job
	if err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.Salary,
		&job.Description,
		&job.Tags,
		&job.Types,
		&job.PostedAt,
		&job.CreatedAt,
		&job.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &job, nil
}

func (r *JobRepo) List(ctx context.Context, filters JobFilters) ([]models.Job, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	whereSQL, args := buildJobFilters(filters)

	var total int64
	countQuery := "SELECT COUNT(*) FROM jobs" + whereSQL
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	perPage := filters.PerPage
	if perPage <= 0 {
		perPage = 10
	}
	offset := (page - 1) * perPage

	query := `
		SELECT id, title, company, location, salary, description, tags, types,
			posted_at, created_at, updated_at
		FROM jobs` + whereSQL + fmt.Sprintf(`
		ORDER BY posted_at DESC
		LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, perPage, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var job models.Job
		if err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Company,
			&job.Location,
			&job.Salary,
			&job.Description,
			&job.Tags,
			&job.Types,
			&job.PostedAt,
			&job.CreatedAt,
			&job.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate jobs: %w", err)
	}

	return jobs, total, nil
}

func buildJobFilters(filters JobFilters) (string, []any) {
	var clauses []string
	var args []any

	if search := strings.TrimSpace(filters.Search); search != "" {
		args = append(args, "%"+search+"%")
		idx := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(title ILIKE $%d OR company ILIKE $%d OR description ILIKE $%d)", idx, idx, idx))
	}
	if location := strings.TrimSpace(filters.Location); location != "" {
		args = append(args, "%"+location+"%")
		clauses = append(clauses, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if jobType := strings.TrimSpace(filters.Type); jobType != "" {
		args = append(args, jobType)
		clauses = append(clauses, fmt.Sprintf("$%d = ANY(types)", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
