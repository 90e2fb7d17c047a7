package ports

import (
	"context"

	"github.com/blogcraft/blog-platform/internal/core/domain"
)

// AuthService implements registration, login, logout and session-backed
// identity resolution.
type AuthService interface {
	// Register creates an account and immediately starts a session for it.
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	// Login verifies credentials and starts a session. Unknown email and
	// wrong password fail identically with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// Logout ends the session behind token.
	Logout(ctx context.Context, token string) error
	// UserFromSession resolves the identity behind a session token, or
	// domain.ErrAnonymous when there is none.
	UserFromSession(ctx context.Context, token string) (*domain.User, error)
	// UserByID loads an account by id.
	UserByID(ctx context.Context, id string) (*domain.User, error)
	// IssueAPIToken exchanges credentials for a signed bearer token for the
	// JSON API.
	IssueAPIToken(ctx context.Context, email, password string) (string, error)
}
