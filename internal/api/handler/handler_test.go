package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/blogcraft/blog-platform/internal/core/domain"
	"github.com/blogcraft/blog-platform/internal/core/ports"
)

// newTestEcho builds an echo instance with the real renderer and validator,
// so tests exercise the same template and binding paths production does.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("building renderer: %v", err)
	}
	e.Renderer = r
	e.Validator = NewValidator()
	return e
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

type stubAuthService struct {
	registered *domain.User
	err        error
	sessions   map[string]*domain.User
	users      map[string]*domain.User
	ended      []string
	apiToken   string
	seq        int
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{
		sessions: make(map[string]*domain.User),
		users:    make(map[string]*domain.User),
	}
}

func (s *stubAuthService) Register(_ context.Context, name, email, _ string) (*domain.User, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	s.seq++
	u := &domain.User{ID: fmt.Sprintf("user-%d", s.seq), Name: name, Email: email, Role: domain.RoleReader}
	token := fmt.Sprintf("token-%d", s.seq)
	s.registered = u
	s.sessions[token] = u
	s.users[u.ID] = u
	return u, token, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (*domain.User, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	s.seq++
	u := &domain.User{ID: fmt.Sprintf("user-%d", s.seq), Email: email, Role: domain.RoleReader}
	token := fmt.Sprintf("token-%d", s.seq)
	s.sessions[token] = u
	return u, token, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	delete(s.sessions, token)
	s.ended = append(s.ended, token)
	return nil
}

func (s *stubAuthService) UserFromSession(_ context.Context, token string) (*domain.User, error) {
	if u, ok := s.sessions[token]; ok {
		return u, nil
	}
	return nil, domain.ErrAnonymous
}

func (s *stubAuthService) UserByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubAuthService) IssueAPIToken(_ context.Context, _, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.apiToken, nil
}

type stubPostService struct {
	posts  map[string]*domain.Post
	err    error
	writes int
	seq    int
}

func newStubPostService(posts ...*domain.Post) *stubPostService {
	s := &stubPostService{posts: make(map[string]*domain.Post)}
	for _, p := range posts {
		s.posts[p.ID] = p
	}
	return s
}

func (s *stubPostService) Create(_ context.Context, in ports.PostInput, author *domain.User) (*domain.Post, error) {
	s.writes++
	if s.err != nil {
		return nil, s.err
	}
	s.seq++
	p := &domain.Post{
		ID:       fmt.Sprintf("post-%d", s.seq),
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Body:     in.Body,
		ImgURL:   in.ImgURL,
	}
	if author != nil {
		p.AuthorID = author.ID
		p.AuthorName = author.Name
	}
	s.posts[p.ID] = p
	return p, nil
}

func (s *stubPostService) Edit(_ context.Context, id string, in ports.PostInput) (*domain.Post, error) {
	s.writes++
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	p.Title, p.Subtitle, p.Body, p.ImgURL = in.Title, in.Subtitle, in.Body, in.ImgURL
	return p, nil
}

func (s *stubPostService) Delete(_ context.Context, id string) error {
	s.writes++
	if s.err != nil {
		return s.err
	}
	if _, ok := s.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *stubPostService) Get(_ context.Context, id string) (*domain.Post, error) {
	if p, ok := s.posts[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPostNotFound
}

func (s *stubPostService) List(_ context.Context) ([]*domain.Post, error) {
	var out []*domain.Post
	for _, p := range s.posts {
		out = append(out, p)
	}
	return out, nil
}

type stubCommentService struct {
	comments map[string][]*domain.Comment
	err      error
	writes   int
}

func newStubCommentService() *stubCommentService {
	return &stubCommentService{comments: make(map[string][]*domain.Comment)}
}

func (s *stubCommentService) Add(_ context.Context, postID string, author *domain.User, body string) (*domain.Comment, error) {
	s.writes++
	if s.err != nil {
		return nil, s.err
	}
	c := &domain.Comment{PostID: postID, Body: body}
	if author != nil {
		c.AuthorID = author.ID
		c.AuthorName = author.Name
	}
	s.comments[postID] = append(s.comments[postID], c)
	return c, nil
}

func (s *stubCommentService) ListForPost(_ context.Context, postID string) ([]*domain.Comment, error) {
	return s.comments[postID], nil
}

func samplePost() *domain.Post {
	return &domain.Post{
		ID:         "post-1",
		Title:      "Hello",
		Subtitle:   "A greeting",
		Body:       "Welcome to the blog.",
		ImgURL:     "https://example.com/hello.jpg",
		AuthorID:   "user-1",
		AuthorName: "alice",
	}
}
