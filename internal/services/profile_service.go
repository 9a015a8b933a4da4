package services

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/BobbyWang0120/glint-next/internal/models"
	"github.com/BobbyWang0120/glint-next/internal/repo"
	"github.com/BobbyWang0120/glint-next/internal/storage"
	"github.com/BobbyWang0120/glint-next/internal/utils"
)

type UserProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error)
	Upsert(ctx context.Context, p *models.UserProfile) (*models.UserProfile, error)
}

type SeekerProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (*models.SeekerProfile, error)
	Upsert(ctx context.Context, p *models.SeekerProfile) (*models.SeekerProfile, error)
}

type CompanyProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (*models.CompanyProfile, error)
	Upsert(ctx context.Context, p *models.CompanyProfile) (*models.CompanyProfile, error)
}

type ProfileService struct {
	basic     UserProfileStore
	seekers   SeekerProfileStore
	companies CompanyProfileStore
	avatars   storage.AvatarStorage
}

// AvatarUpload carries the bytes of an uploaded profile image.
type AvatarUpload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

func NewProfileService(basic UserProfileStore, seekers SeekerProfileStore, companies CompanyProfileStore, avatars storage.AvatarStorage) *ProfileService {
	return &ProfileService{basic: basic, seekers: seekers, companies: companies, avatars: avatars}
}

// GetBasic returns the caller's basic profile, or nil if none exists yet.
func (s *ProfileService) GetBasic(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := s.basic.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

// UpdateBasic uploads the avatar (when one was sent) and upserts the basic
// profile row for the caller.
func (s *ProfileService) UpdateBasic(ctx context.Context, profile *models.UserProfile, avatar *AvatarUpload) (*models.UserProfile, error) {
	if avatar != nil {
		if s.avatars == nil {
			return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "avatar storage is not configured", nil)
		}
		url, err := s.avatars.Upload(ctx, avatar.Reader, avatar.Size, avatar.ContentType)
		if err != nil {
			return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "failed to upload image", nil)
		}
		profile.AvatarURL = &url
	}

	return s.basic.Upsert(ctx, profile)
}

func (s *ProfileService) GetSeeker(ctx context.Context, userID string) (*models.SeekerProfile, error) {
	profile, err := s.seekers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) UpsertSeeker(ctx context.Context, p *models.SeekerProfile) (*models.SeekerProfile, error) {
	return s.seekers.Upsert(ctx, p)
}

func (s *ProfileService) GetCompany(ctx context.Context, userID string) (*models.CompanyProfile, error) {
	profile, err := s.companies.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) UpsertCompany(ctx context.Context, p *models.CompanyProfile) (*models.CompanyProfile, error) {
	return s.companies.Upsert(ctx, p)
}
