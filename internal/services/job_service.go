package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/BobbyWang0120/glint-next/internal/models"
	"github.com/BobbyWang0120/glint-next/internal/repo"
	"github.com/BobbyWang0120/glint-next/internal/utils"
)

type JobStore interface {
	List(ctx context.Context, filters repo.JobFilters) ([]models.Job, int64, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
}

type JobService struct {
	jobs JobStore
}

func NewJobService(jobs JobStore) *JobService {
	return &JobService{jobs: jobs}
}

func (s *JobService) List(ctx context.Context, filters repo.JobFilters) ([]models.Job, int64, error) {
	return s.jobs.List(ctx, filters)
}

func (s *JobService) GetByID(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "job not found", nil)
		}
		return nil, err
	}
	return job, nil
}
