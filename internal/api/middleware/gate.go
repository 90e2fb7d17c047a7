package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/blogcraft/blog-platform/internal/core/domain"
)

// RequireAuthenticated admits any resolved identity and rejects anonymous
// requests with domain.ErrForbidden before the handler body runs.
func RequireAuthenticated() echo.MiddlewareFunc {
	return require(func(u *domain.User) bool { return u != nil })
}

// RequireAdmin admits only administrators.
func RequireAdmin() echo.MiddlewareFunc {
	return require(func(u *domain.User) bool { return u.IsAdmin() })
}

func require(pred func(*domain.User) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !pred(CurrentUser(c)) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
