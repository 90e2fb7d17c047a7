package ports

import (
	"context"

	"github.com/blogcraft/blog-platform/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Create relies on the
// store's unique index on email to decide duplicate races: callers never
// probe-then-insert.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
