package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogcraft/blog-platform/internal/core/domain"
	"github.com/blogcraft/blog-platform/internal/core/ports"
)

// CommentService implements the comment lifecycle. Comments can only be
// appended and listed; there is no edit or delete operation.
type CommentService struct {
	comments  ports.CommentRepository
	posts     ports.PostRepository
	normalize domain.Normalizer
	logger    zerolog.Logger
}

// NewCommentService wires a CommentService. When normalize is nil, comment
// bodies get the paragraph strip followed by whitespace collapsing.
func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, normalize domain.Normalizer, logger zerolog.Logger) *CommentService {
	if normalize == nil {
		normalize = domain.Chain(domain.StripParagraphTags, domain.CollapseWhitespace)
	}
	return &CommentService{comments: comments, posts: posts, normalize: normalize, logger: logger}
}

func (s *CommentService) Add(ctx context.Context, postID string, author *domain.User, body string) (*domain.Comment, error) {
	if author == nil {
		return nil, domain.ErrForbidden
	}

	body = s.normalize(body)
	if body == "" {
		return nil, domain.ErrValidation
	}

	// The parent post must exist before anything is written.
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:     postID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Body:       body,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	// The post can be deleted between the existence check and the insert.
	// Re-check after writing; if it is gone, sweep the stragglers so the
	// comment does not outlive its post.
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		_ = s.comments.DeleteByPost(ctx, postID)
		return nil, err
	}

	s.logger.Info().Str("post_id", postID).Str("author_id", author.ID).Msg("comment added")
	return created, nil
}

func (s *CommentService) ListForPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}
