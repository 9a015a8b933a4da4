package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/BobbyWang0120/glint-next/internal/models"
	"github.com/BobbyWang0120/glint-next/internal/repo"
	"github.com/BobbyWang0120/glint-next/internal/utils"
	"github.com/stretchr/testify/require"
)

// fakeSeekerStore mirrors the ON CONFLICT ... COALESCE upsert: nil fields
// keep the stored value, non-nil fields overwrite.
type fakeSeekerStore struct {
	rows map[string]*models.SeekerProfile
}

func newFakeSeekerStore() *fakeSeekerStore {
	return &fakeSeekerStore{rows: map[string]*models.SeekerProfile{}}
}

func (f *fakeSeekerStore) GetByUserID(ctx context.Context, userID string) (*models.SeekerProfile, error) {
	row, ok := f.rows[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	copied := *row
	return &copied, nil
}

func (f *fakeSeekerStore) Upsert(ctx context.Context, p *models.SeekerProfile) (*models.SeekerProfile, error) {
	existing, ok := f.rows[p.UserID]
	if !ok {
		copied := *p
		copied.ID = "seeker-" + p.UserID
		f.rows[p.UserID] = &copied
		out := copied
		return &out, nil
	}

	merge := func(next, prior *string) *string {
		if next != nil {
			return next
		}
		return prior
	}
	mergeInt := func(next, prior *int) *int {
		if next != nil {
			return next
		}
		return prior
	}

	existing.FirstName = merge(p.FirstName, existing.FirstName)
	existing.LastName = merge(p.LastName, existing.LastName)
	existing.Phone = merge(p.Phone, existing.Phone)
	existing.Location = merge(p.Location, existing.Location)
	existing.Title = merge(p.Title, existing.Title)
	existing.YearsExperience = mergeInt(p.YearsExperience, existing.YearsExperience)
	existing.Skills = merge(p.Skills, existing.Skills)
	existing.Bio = merge(p.Bio, existing.Bio)
	existing.JobTypes = merge(p.JobTypes, existing.JobTypes)
	existing.Industries = merge(p.Industries, existing.Industries)
	existing.Salary = mergeInt(p.Salary, existing.Salary)

	out := *existing
	return &out, nil
}

type fakeUserProfileStore struct {
	rows map[string]*models.UserProfile
}

func newFakeUserProfileStore() *fakeUserProfileStore {
	return &fakeUserProfileStore{rows: map[string]*models.UserProfile{}}
}

func (f *fakeUserProfileStore) GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	row, ok := f.rows[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	copied := *row
	return &copied, nil
}

func (f *fakeUserProfileStore) Upsert(ctx context.Context, p *models.UserProfile) (*models.UserProfile, error) {
	existing, ok := f.rows[p.UserID]
	if !ok {
		copied := *p
		copied.ID = "profile-" + p.UserID
		f.rows[p.UserID] = &copied
		out := copied
		return &out, nil
	}

	if p.Name != nil {
		existing.Name = p.Name
	}
	if p.Phone != nil {
		existing.Phone = p.Phone
	}
	if p.Bio != nil {
		existing.Bio = p.Bio
	}
	if p.AvatarURL != nil {
		existing.AvatarURL = p.AvatarURL
	}

	out := *existing
	return &out, nil
}

type fakeCompanyStore struct {
	rows map[string]*models.CompanyProfile
}

func newFakeCompanyStore() *fakeCompanyStore {
	return &fakeCompanyStore{rows: map[string]*models.CompanyProfile{}}
}

func (f *fakeCompanyStore) GetByUserID(ctx context.Context, userID string) (*models.CompanyProfile, error) {
	row, ok := f.rows[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	copied := *row
	return &copied, nil
}

func (f *fakeCompanyStore) Upsert(ctx context.Context, p *models.CompanyProfile) (*models.CompanyProfile, error) {
	existing, ok := f.rows[p.UserID]
	if !ok {
		copied := *p
		copied.ID = "company-" + p.UserID
		f.rows[p.UserID] = &copied
		out := copied
		return &out, nil
	}

	if p.Name != nil {
		existing.Name = p.Name
	}
	if p.Founded != nil {
		existing.Founded = p.Founded
	}
	if p.Description != nil {
		existing.Description = p.Description
	}

	out := *existing
	return &out, nil
}

type fakeAvatarStorage struct {
	uploads int
	err     error
}

func (f *fakeAvatarStorage) EnsureBucket(ctx context.Context) error { return nil }

func (f *fakeAvatarStorage) Upload(ctx context.Context, r io.Reader, size int64, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads++
	return "https://cdn.example.com/avatars/abc", nil
}

func strPtr(s string) *string { return &s }

func newProfileService(avatars *fakeAvatarStorage) *ProfileService {
	if avatars == nil {
		// Literal nil, not a typed-nil interface, so the service sees
		// storage as unconfigured.
		return NewProfileService(newFakeUserProfileStore(), newFakeSeekerStore(), newFakeCompanyStore(), nil)
	}
	return NewProfileService(newFakeUserProfileStore(), newFakeSeekerStore(), newFakeCompanyStore(), avatars)
}

func TestSeekerUpsertMergesFields(t *testing.T) {
	t.Parallel()

	svc := newProfileService(nil)
	ctx := context.Background()

	first, err := svc.UpsertSeeker(ctx, &models.SeekerProfile{
		UserID:    "u1",
		FirstName: strPtr("Jo"),
	})
	require.NoError(t, err)
	require.NotNil(t, first.FirstName)
	require.Equal(t, "Jo", *first.FirstName)
	require.Nil(t, first.LastName)

	second, err := svc.UpsertSeeker(ctx, &models.SeekerProfile{
		UserID:   "u1",
		LastName: strPtr("Doe"),
	})
	require.NoError(t, err)
	require.NotNil(t, second.FirstName)
	require.Equal(t, "Jo", *second.FirstName)
	require.NotNil(t, second.LastName)
	require.Equal(t, "Doe", *second.LastName)
}

func TestSeekerUpsertOverwritesProvidedFields(t *testing.T) {
	t.Parallel()

	svc := newProfileService(nil)
	ctx := context.Background()

	years := 3
	_, err := svc.UpsertSeeker(ctx, &models.SeekerProfile{
		UserID:          "u1",
		Title:           strPtr("Engineer"),
		YearsExperience: &years,
	})
	require.NoError(t, err)

	newYears := 5
	updated, err := svc.UpsertSeeker(ctx, &models.SeekerProfile{
		UserID:          "u1",
		YearsExperience: &newYears,
	})
	require.NoError(t, err)
	require.Equal(t, 5, *updated.YearsExperience)
	require.Equal(t, "Engineer", *updated.Title)
}

func TestGetSeekerAbsentReturnsNil(t *testing.T) {
	t.Parallel()

	svc := newProfileService(nil)

	profile, err := svc.GetSeeker(context.Background(), "nobody")
	require.NoError(t, err)
	require.Nil(t, profile)
}

func TestUpdateBasicWithAvatar(t *testing.T) {
	t.Parallel()

	avatars := &fakeAvatarStorage{}
	svc := newProfileService(avatars)

	profile, err := svc.UpdateBasic(context.Background(), &models.UserProfile{
		UserID: "u1",
		Name:   strPtr("Jo"),
	}, &AvatarUpload{
		Reader:      strings.NewReader("image-bytes"),
		Size:        11,
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)
	require.Equal(t, 1, avatars.uploads)
	require.NotNil(t, profile.AvatarURL)
	require.Equal(t, "https://cdn.example.com/avatars/abc", *profile.AvatarURL)
}

func TestUpdateBasicAvatarKeptWhenNotResent(t *testing.T) {
	t.Parallel()

	avatars := &fakeAvatarStorage{}
	svc := newProfileService(avatars)
	ctx := context.Background()

	_, err := svc.UpdateBasic(ctx, &models.UserProfile{UserID: "u1"}, &AvatarUpload{
		Reader:      strings.NewReader("image-bytes"),
		Size:        11,
		ContentType: "image/png",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateBasic(ctx, &models.UserProfile{
		UserID: "u1",
		Bio:    strPtr("hello"),
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.AvatarURL)
	require.Equal(t, "hello", *updated.Bio)
}

func TestUpdateBasicAvatarWithoutStorage(t *testing.T) {
	t.Parallel()

	svc := newProfileService(nil)

	_, err := svc.UpdateBasic(context.Background(), &models.UserProfile{UserID: "u1"}, &AvatarUpload{
		Reader:      strings.NewReader("image-bytes"),
		Size:        11,
		ContentType: "image/jpeg",
	})
	require.Error(t, err)

	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	require.Equal(t, http.StatusInternalServerError, appErr.Status)
}

func TestUpdateBasicAvatarUploadFailure(t *testing.T) {
	t.Parallel()

	avatars := &fakeAvatarStorage{err: errors.New("connection refused")}
	svc := newProfileService(avatars)

	_, err := svc.UpdateBasic(context.Background(), &models.UserProfile{UserID: "u1"}, &AvatarUpload{
		Reader:      strings.NewReader("image-bytes"),
		Size:        11,
		ContentType: "image/jpeg",
	})
	require.Error(t, err)

	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	require.Equal(t, http.StatusInternalServerError, appErr.Status)
	// The upstream failure text stays server-side.
	require.NotContains(t, appErr.Message, "connection refused")
}

func TestCompanyUpsertMergesFields(t *testing.T) {
	t.Parallel()

	svc := newProfileService(nil)
	ctx := context.Background()

	founded := 2015
	_, err := svc.UpsertCompany(ctx, &models.CompanyProfile{
		UserID:  "u1",
		Name:    strPtr("Acme"),
		Founded: &founded,
	})
	require.NoError(t, err)

	updated, err := svc.UpsertCompany(ctx, &models.CompanyProfile{
		UserID:      "u1",
		Description: strPtr("We make things"),
	})
	require.NoError(t, err)
	require.Equal(t, "Acme", *updated.Name)
	require.Equal(t, 2015, *updated.Founded)
	require.Equal(t, "We make things", *updated.Description)
}
