package ports

import (
	"context"

	"github.com/blogcraft/blog-platform/internal/core/domain"
)

// CommentRepository defines persistence for comments. There is no update or
// single delete: comments are immutable and only removed in bulk when their
// parent post goes away.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	DeleteByPost(ctx context.Context, postID string) error
}
