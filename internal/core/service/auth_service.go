package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogcraft/blog-platform/internal/core/domain"
	"github.com/blogcraft/blog-platform/internal/core/ports"
)

// AuthService implements registration, login, logout and API token issuance.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register creates an account and immediately starts a session for it, so
// the caller is logged in as soon as signup succeeds. The very first account
// in the store is promoted to administrator.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	// The first account ever created is the administrator. A Count failure
	// must abort the registration: guessing "reader" here could demote the
	// only account that will ever be offered the admin role.
	n, err := s.users.Count(ctx)
	if err != nil {
		return nil, "", err
	}
	role := domain.RoleReader
	if n == 0 {
		role = domain.RoleAdmin
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Start(ctx, created.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, token, nil
}

// Login verifies credentials and starts a session. Unknown email and wrong
// password are reported with the same error so the response does not leak
// which of the two happened.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Start(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}

// Logout ends the session behind token. A replayed token no longer resolves.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.End(ctx, token)
}

// UserFromSession resolves the identity behind a session token. Tokens that
// resolve to a vanished account are treated as anonymous, not as errors.
func (s *AuthService) UserFromSession(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAnonymous
		}
		return nil, err
	}
	return user, nil
}

// UserByID loads an account by id.
func (s *AuthService) UserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// IssueAPIToken exchanges credentials for a signed HS256 bearer token
// carrying the account's id, email and role.
func (s *AuthService) IssueAPIToken(ctx context.Context, email, password string) (string, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
