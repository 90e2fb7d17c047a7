package ports

import (
	"context"

	"github.com/blogcraft/blog-platform/internal/core/domain"
)

// PostInput carries the editable fields of a post. All fields are required.
type PostInput struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
}

// PostService implements the post lifecycle. Authorization is enforced
// before these methods run; the service itself only validates content.
type PostService interface {
	Create(ctx context.Context, in PostInput, author *domain.User) (*domain.Post, error)
	// Edit replaces the editable fields of an existing post. The author and
	// creation date of the post are preserved.
	Edit(ctx context.Context, id string, in PostInput) (*domain.Post, error)
	// Delete removes a post and all of its comments.
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
}

// CommentService implements the comment lifecycle: append and list only.
type CommentService interface {
	Add(ctx context.Context, postID string, author *domain.User, body string) (*domain.Comment, error)
	ListForPost(ctx context.Context, postID string) ([]*domain.Comment, error)
}
