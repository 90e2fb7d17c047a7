package ports

import (
	"context"

	"github.com/blogcraft/blog-platform/internal/core/domain"
)

// PostRepository defines persistence for posts. Title uniqueness is enforced
// by the store's unique index; Create and Update surface a collision as
// domain.ErrDuplicateTitle.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
}
