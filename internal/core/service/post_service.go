package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogcraft/blog-platform/internal/core/domain"
	"github.com/blogcraft/blog-platform/internal/core/ports"
)

// PostService implements the post lifecycle: create, edit, delete, read.
type PostService struct {
	posts     ports.PostRepository
	comments  ports.CommentRepository
	normalize domain.Normalizer
	logger    zerolog.Logger
}

// NewPostService wires a PostService. When normalize is nil the literal
// paragraph-wrapper strip is used, matching what the rich-text editor emits.
func NewPostService(posts ports.PostRepository, comments ports.CommentRepository, normalize domain.Normalizer, logger zerolog.Logger) *PostService {
	if normalize == nil {
		normalize = domain.StripParagraphTags
	}
	return &PostService{posts: posts, comments: comments, normalize: normalize, logger: logger}
}

func (s *PostService) Create(ctx context.Context, in ports.PostInput, author *domain.User) (*domain.Post, error) {
	if author == nil {
		return nil, domain.ErrForbidden
	}
	if in.Title == "" || in.Subtitle == "" || in.Body == "" || in.ImgURL == "" {
		return nil, domain.ErrValidation
	}

	post := &domain.Post{
		Title:      in.Title,
		Subtitle:   in.Subtitle,
		Body:       s.normalize(in.Body),
		ImgURL:     in.ImgURL,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Date:       time.Now().UTC(),
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("author_id", author.ID).Msg("post created")
	return created, nil
}

// Edit replaces the editable fields of an existing post. The original author
// and creation date are preserved; editing does not re-attribute the post.
func (s *PostService) Edit(ctx context.Context, id string, in ports.PostInput) (*domain.Post, error) {
	if in.Title == "" || in.Subtitle == "" || in.Body == "" || in.ImgURL == "" {
		return nil, domain.ErrValidation
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Subtitle = in.Subtitle
	post.Body = s.normalize(in.Body)
	post.ImgURL = in.ImgURL

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", post.ID).Msg("post edited")
	return post, nil
}

// Delete removes a post and cascades to its comments, so no comment is ever
// left referencing a post that no longer exists. Comments go first: if the
// cascade fails midway the post is still there and the thread stays intact,
// whereas the other order would strand comments under a vanished post.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if _, err := s.posts.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.comments.DeleteByPost(ctx, id); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", id).Msg("post deleted")
	return nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.List(ctx)
}
