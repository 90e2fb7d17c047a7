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

// PostHandler serves the post pages: index, detail, and the admin-only
// create/edit/delete surfaces. Authorization is applied at the router; by
// the time these handlers run, the gate has already admitted the caller.
type PostHandler struct {
	posts    ports.PostService
	comments ports.CommentService
}

func NewPostHandler(posts ports.PostService, comments ports.CommentService) *PostHandler {
	return &PostHandler{posts: posts, comments: comments}
}

type postForm struct {
	Title    string `form:"title" validate:"required"`
	Subtitle string `form:"subtitle" validate:"required"`
	ImgURL   string `form:"img_url" validate:"required,url"`
	Body     string `form:"body" validate:"required"`
}

// Index lists all posts.
func (h *PostHandler) Index(c echo.Context) error {
	posts, err := h.posts.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "index", map[string]any{
		"User":  middleware.CurrentUser(c),
		"Posts": posts,
	})
}

// Show renders a single post with its comments. Reading never mutates.
func (h *PostHandler) Show(c echo.Context) error {
	post, err := h.posts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	comments, err := h.comments.ListForPost(c.Request().Context(), post.ID)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "post", h.postData(c, post, comments, ""))
}

// NewForm renders the empty post editor.
func (h *PostHandler) NewForm(c echo.Context) error {
	return c.Render(http.StatusOK, "make-post", h.editorData(c, postForm{}, "/new-post", false, ""))
}

// Create stores a new post authored by the current administrator.
func (h *PostHandler) Create(c echo.Context) error {
	var form postForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "make-post", h.editorData(c, form, "/new-post", false, "invalid form submission"))
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "make-post", h.editorData(c, form, "/new-post", false, err.Error()))
	}

	post, err := h.posts.Create(c.Request().Context(), h.input(form), middleware.CurrentUser(c))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateTitle) {
			return c.Render(http.StatusConflict, "make-post", h.editorData(c, form, "/new-post", false, "A post with that title already exists."))
		}
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.Redirect(http.StatusSeeOther, "/"+post.ID)
}

// EditForm renders the editor pre-filled with the post's current fields.
func (h *PostHandler) EditForm(c echo.Context) error {
	post, err := h.posts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	form := postForm{Title: post.Title, Subtitle: post.Subtitle, ImgURL: post.ImgURL, Body: post.Body}
	return c.Render(http.StatusOK, "make-post", h.editorData(c, form, "/edit-post/"+post.ID, true, ""))
}

// Edit updates a post's editable fields. The author and creation date stay
// with the original post.
func (h *PostHandler) Edit(c echo.Context) error {
	id := c.Param("id")
	action := "/edit-post/" + id

	var form postForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "make-post", h.editorData(c, form, action, true, "invalid form submission"))
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "make-post", h.editorData(c, form, action, true, err.Error()))
	}

	post, err := h.posts.Edit(c.Request().Context(), id, h.input(form))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateTitle) {
			return c.Render(http.StatusConflict, "make-post", h.editorData(c, form, action, true, "A post with that title already exists."))
		}
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/"+post.ID)
}

// Delete removes a post and its comments.
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.posts.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.PostsDeletedTotal.Inc()
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *PostHandler) input(form postForm) ports.PostInput {
	return ports.PostInput{Title: form.Title, Subtitle: form.Subtitle, Body: form.Body, ImgURL: form.ImgURL}
}

func (h *PostHandler) editorData(c echo.Context, form postForm, action string, isEdit bool, errMsg string) map[string]any {
	return map[string]any{
		"Title":  "Post Editor",
		"User":   middleware.CurrentUser(c),
		"Form":   form,
		"Action": action,
		"IsEdit": isEdit,
		"Error":  errMsg,
		"CSRF":   csrfToken(c),
	}
}

func (h *PostHandler) postData(c echo.Context, post *domain.Post, comments []*domain.Comment, errMsg string) map[string]any {
	return map[string]any{
		"Title":    post.Title,
		"User":     middleware.CurrentUser(c),
		"Post":     post,
		"Comments": comments,
		"Error":    errMsg,
		"CSRF":     csrfToken(c),
	}
}
