package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogcraft/blog-platform/internal/api/metrics"
	"github.com/blogcraft/blog-platform/internal/api/middleware"
	"github.com/blogcraft/blog-platform/internal/core/domain"
	"github.com/blogcraft/blog-platform/internal/core/ports"
)

// CommentHandler serves the comment form posted under each article. The
// route is gated on an authenticated session before this handler runs.
type CommentHandler struct {
	comments ports.CommentService
	posts    ports.PostService
}

func NewCommentHandler(comments ports.CommentService, posts ports.PostService) *CommentHandler {
	return &CommentHandler{comments: comments, posts: posts}
}

type commentForm struct {
	Body string `form:"body" validate:"required"`
}

// Create appends a comment to the post and returns to its page.
func (h *CommentHandler) Create(c echo.Context) error {
	postID := c.Param("id")

	var form commentForm
	if err := c.Bind(&form); err != nil {
		return h.rerender(c, postID, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return h.rerender(c, postID, err.Error())
	}

	_, err := h.comments.Add(c.Request().Context(), postID, middleware.CurrentUser(c), form.Body)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return h.rerender(c, postID, "A comment cannot be empty.")
		}
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.Redirect(http.StatusSeeOther, "/"+postID)
}

// rerender shows the post page again with the form error inline.
func (h *CommentHandler) rerender(c echo.Context, postID, errMsg string) error {
	post, err := h.posts.Get(c.Request().Context(), postID)
	if err != nil {
		return err
	}
	comments, err := h.comments.ListForPost(c.Request().Context(), postID)
	if err != nil {
		return err
	}
	return c.Render(http.StatusBadRequest, "post", map[string]any{
		"Title":    post.Title,
		"User":     middleware.CurrentUser(c),
		"Post":     post,
		"Comments": comments,
		"Error":    errMsg,
		"CSRF":     csrfToken(c),
	})
}
