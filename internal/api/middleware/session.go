package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/blogcraft/blog-platform/internal/core/domain"
)

// userContextKey is where the resolved identity lives in the echo context.
const userContextKey = "user"

// IdentityResolver turns a session token into a user identity.
type IdentityResolver interface {
	UserFromSession(ctx context.Context, token string) (*domain.User, error)
}

// SessionIdentity resolves the session cookie into an identity and stores it
// in the request context. It never rejects: a missing or dead session simply
// leaves the request anonymous, and each route's gate decides what that means.
func SessionIdentity(resolver IdentityResolver, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err == nil && cookie.Value != "" {
				if user, err := resolver.UserFromSession(c.Request().Context(), cookie.Value); err == nil {
					c.Set(userContextKey, user)
				}
			}
			return next(c)
		}
	}
}

// CurrentUser returns the resolved identity, or nil for anonymous requests.
func CurrentUser(c echo.Context) *domain.User {
	u, _ := c.Get(userContextKey).(*domain.User)
	return u
}

// SetCurrentUser injects an identity directly. Intended for tests.
func SetCurrentUser(c echo.Context, u *domain.User) {
	c.Set(userContextKey, u)
}
