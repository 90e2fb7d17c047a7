package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogcraft/blog-platform/internal/api/metrics"
	"github.com/blogcraft/blog-platform/internal/core/domain"
	"github.com/blogcraft/blog-platform/internal/core/ports"
)

// APIHandler exposes the JSON surface mirroring the HTML blog: token
// issuance plus post reads, and post creation for administrators.
type APIHandler struct {
	auth     ports.AuthService
	posts    ports.PostService
	comments ports.CommentService
}

func NewAPIHandler(auth ports.AuthService, posts ports.PostService, comments ports.CommentService) *APIHandler {
	return &APIHandler{auth: auth, posts: posts, comments: comments}
}

type tokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type createPostRequest struct {
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle" validate:"required"`
	Body     string `json:"body" validate:"required"`
	ImgURL   string `json:"img_url" validate:"required,url"`
}

type postDetailResponse struct {
	Post     *domain.Post      `json:"post"`
	Comments []*domain.Comment `json:"comments"`
}

// Token exchanges credentials for a bearer token.
//
// @Summary      Issue an API token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /token [post]
func (h *APIHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.auth.IssueAPIToken(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// ListPosts returns all posts.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  domain.Post
// @Router       /posts [get]
func (h *APIHandler) ListPosts(c echo.Context) error {
	posts, err := h.posts.List(c.Request().Context())
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPost returns one post with its comments.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postDetailResponse
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *APIHandler) GetPost(c echo.Context) error {
	post, err := h.posts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	comments, err := h.comments.ListForPost(c.Request().Context(), post.ID)
	if err != nil {
		return err
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}
	return c.JSON(http.StatusOK, postDetailResponse{Post: post, Comments: comments})
}

// CreatePost stores a new post on behalf of the bearer-authenticated
// administrator identified by the token's subject claim.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post fields"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Security     BearerAuth
// @Router       /posts [post]
func (h *APIHandler) CreatePost(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	author, err := h.bearerUser(c)
	if err != nil {
		return err
	}

	in := ports.PostInput{Title: req.Title, Subtitle: req.Subtitle, Body: req.Body, ImgURL: req.ImgURL}
	post, err := h.posts.Create(c.Request().Context(), in, author)
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, post)
}

// bearerUser rebuilds the author identity from the claims the Bearer
// middleware injected. The role gate has already run; a missing subject
// means the token is structurally valid but unusable.
func (h *APIHandler) bearerUser(c echo.Context) (*domain.User, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
	}
	user, err := h.auth.UserByID(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	return user, nil
}
