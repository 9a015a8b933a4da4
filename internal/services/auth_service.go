package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/BobbyWang0120/glint-next/internal/config"
	"github.com/BobbyWang0120/glint-next/internal/models"
	"github.com/BobbyWang0120/glint-next/internal/repo"
	"github.com/BobbyWang0120/glint-next/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(ctx context.Context, email, role, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type AuthService struct {
	users UserStore
	cfg   *config.Config
}

type TokenResponse struct {
	AccessToken string     `json:"token"`
	TokenType   string     `json:"token_type"`
	ExpiresIn   int64      `json:"expires_in"`
	User        PublicUser `json:"user"`
}

type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Login and registration deliberately share one credential failure message
// so responses never reveal whether an email is registered.
const invalidCredentialsMsg = "invalid email or password"

func NewAuthService(users UserStore, cfg *config.Config) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

func (s *AuthService) Register(ctx context.Context, email, password, role string) (*models.User, error) {
	email = NormalizeEmail(email)

	if !emailPattern.MatchString(email) {
		return nil, utils.NewAppError(http.StatusBadRequest, "VALIDATION_ERROR", "invalid email format", nil)
	}
	if len(password) < s.cfg.PasswordMinLen {
		return nil, utils.NewAppError(http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("password must be at least %d characters", s.cfg.PasswordMinLen), nil)
	}
	if !models.ValidRole(role) {
		return nil, utils.NewAppError(http.StatusBadRequest, "VALIDATION_ERROR", "invalid user type", nil)
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not check existing users", nil)
	}
	if exists {
		return nil, conflictError()
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not secure password", nil)
	}

	user, err := s.users.Create(ctx, email, role, string(passwordHash))
	if err != nil {
		// The pre-check and insert are not atomic; the unique constraint
		// catches the losing side of a concurrent registration.
		if errors.Is(err, repo.ErrEmailTaken) {
			return nil, conflictError()
		}
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not create user", nil)
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	email = NormalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, unauthorizedError()
		}
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not look up user", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, unauthorizedError()
	}

	token, expiresIn, err := s.generateToken(user)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not generate token", nil)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User:        PublicUser{ID: user.ID, Email: user.Email, Role: user.Role},
	}, nil
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "user not found", nil)
		}
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not look up user", nil)
	}
	return user, nil
}

func (s *AuthService) generateToken(user *models.User) (string, int64, error) {
	issuedAt := time.Now()
	expiresAt := issuedAt.Add(s.cfg.JWTExpiry)
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", 0, err
	}

	return signed, int64(s.cfg.JWTExpiry.Seconds()), nil
}

// NormalizeEmail lowercases and trims an address so lookups and the unique
// constraint see one canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func conflictError() *utils.AppError {
	return utils.NewAppError(http.StatusBadRequest, "CONFLICT", "this email is already registered", nil)
}

func unauthorizedError() *utils.AppError {
	return utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", invalidCredentialsMsg, nil)
}
