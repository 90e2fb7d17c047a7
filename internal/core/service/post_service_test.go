package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogcraft/blog-platform/internal/core/domain"
	"github.com/blogcraft/blog-platform/internal/core/ports"
)

type stubPostRepo struct {
	posts map[string]*domain.Post
	seq   int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func clonePost(p *domain.Post) *domain.Post {
	clone := *p
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	for _, existing := range r.posts {
		if existing.Title == post.Title {
			return nil, domain.ErrDuplicateTitle
		}
	}
	r.seq++
	created := clonePost(post)
	created.ID = fmt.Sprintf("post-%d", r.seq)
	r.posts[created.ID] = clonePost(created)
	return created, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	if p, ok := r.posts[id]; ok {
		return clonePost(p), nil
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.Post, error) {
	var out []*domain.Post
	for _, p := range r.posts {
		out = append(out, clonePost(p))
	}
	return out, nil
}

func (r *stubPostRepo) Update(_ context.Context, post *domain.Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return domain.ErrPostNotFound
	}
	for id, existing := range r.posts {
		if id != post.ID && existing.Title == post.Title {
			return domain.ErrDuplicateTitle
		}
	}
	r.posts[post.ID] = clonePost(post)
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

type stubCommentRepo struct {
	comments  []*domain.Comment
	deleteErr error
	seq       int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{}
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	r.seq++
	created := *comment
	created.ID = fmt.Sprintf("comment-%d", r.seq)
	r.comments = append(r.comments, &created)
	return &created, nil
}

func (r *stubCommentRepo) ListByPost(_ context.Context, postID string) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) DeleteByPost(_ context.Context, postID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	var kept []*domain.Comment
	for _, c := range r.comments {
		if c.PostID != postID {
			kept = append(kept, c)
		}
	}
	r.comments = kept
	return nil
}

var admin = &domain.User{ID: "user-1", Name: "alice", Email: "alice@example.com", Role: domain.RoleAdmin}

func validInput() ports.PostInput {
	return ports.PostInput{
		Title:    "Hello",
		Subtitle: "A greeting",
		Body:     "<p>Welcome to the blog.</p>",
		ImgURL:   "https://example.com/hello.jpg",
	}
}

func TestPostService_Create_StripsParagraphTags(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, newStubCommentRepo(), nil, zerolog.Nop())

	post, err := svc.Create(context.Background(), validInput(), admin)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.Body != "Welcome to the blog." {
		t.Fatalf("body = %q, want paragraph tags stripped", post.Body)
	}
	if post.AuthorID != admin.ID || post.AuthorName != admin.Name {
		t.Fatalf("author not recorded: %+v", post)
	}
	if post.Date.IsZero() {
		t.Fatalf("creation date not set")
	}
}

func TestPostService_Create_RoundTrip(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, newStubCommentRepo(), nil, zerolog.Nop())

	in := validInput()
	created, err := svc.Create(context.Background(), in, admin)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != in.Title || got.Subtitle != in.Subtitle || got.ImgURL != in.ImgURL {
		t.Fatalf("stored fields differ from input: %+v", got)
	}
	if got.Body != domain.StripParagraphTags(in.Body) {
		t.Fatalf("stored body = %q, want sanitized input", got.Body)
	}
}

func TestPostService_Create_Validation(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, newStubCommentRepo(), nil, zerolog.Nop())

	in := validInput()
	in.Subtitle = ""
	if _, err := svc.Create(context.Background(), in, admin); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(repo.posts) != 0 {
		t.Fatalf("store changed by failed create")
	}
}

func TestPostService_Create_NoAuthor(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), newStubCommentRepo(), nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), validInput(), nil); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPostService_Create_DuplicateTitle(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, newStubCommentRepo(), nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), validInput(), admin); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), validInput(), admin); err != domain.ErrDuplicateTitle {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}

	matching := 0
	for _, p := range repo.posts {
		if p.Title == "Hello" {
			matching++
		}
	}
	if matching != 1 {
		t.Fatalf("store holds %d posts titled Hello, want exactly 1", matching)
	}
}

func TestPostService_Edit_PreservesAuthorAndDate(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, newStubCommentRepo(), nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), validInput(), admin)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	originalDate := created.Date

	time.Sleep(time.Millisecond)
	updated, err := svc.Edit(context.Background(), created.ID, ports.PostInput{
		Title:    "Hello, revised",
		Subtitle: "Still a greeting",
		Body:     "<p>Edited body.</p>",
		ImgURL:   "https://example.com/revised.jpg",
	})
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	if updated.AuthorID != admin.ID || updated.AuthorName != admin.Name {
		t.Fatalf("edit re-attributed the post: %+v", updated)
	}
	if !updated.Date.Equal(originalDate) {
		t.Fatalf("edit moved the creation date: %v -> %v", originalDate, updated.Date)
	}
	if updated.Body != "Edited body." {
		t.Fatalf("edited body = %q, want paragraph tags stripped", updated.Body)
	}
}

func TestPostService_Edit_NotFound(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), newStubCommentRepo(), nil, zerolog.Nop())

	if _, err := svc.Edit(context.Background(), "missing", validInput()); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_Edit_Validation(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, newStubCommentRepo(), nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), validInput(), admin)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	in := validInput()
	in.Title = ""
	if _, err := svc.Edit(context.Background(), created.ID, in); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if got, _ := svc.Get(context.Background(), created.ID); got.Title != "Hello" {
		t.Fatalf("failed edit changed stored post: %+v", got)
	}
}

func TestPostService_Delete_CascadesComments(t *testing.T) {
	posts := newStubPostRepo()
	comments := newStubCommentRepo()
	svc := NewPostService(posts, comments, nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), validInput(), admin)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	other := validInput()
	other.Title = "Second"
	kept, err := svc.Create(context.Background(), other, admin)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	comments.Create(context.Background(), &domain.Comment{PostID: created.ID, Body: "doomed"})
	comments.Create(context.Background(), &domain.Comment{PostID: kept.ID, Body: "survivor"})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := svc.Get(context.Background(), created.ID); err != domain.ErrPostNotFound {
		t.Fatalf("post still readable after delete: %v", err)
	}
	orphans, _ := comments.ListByPost(context.Background(), created.ID)
	if len(orphans) != 0 {
		t.Fatalf("delete left %d orphaned comments", len(orphans))
	}
	remaining, _ := comments.ListByPost(context.Background(), kept.ID)
	if len(remaining) != 1 {
		t.Fatalf("delete removed another post's comments")
	}
}

func TestPostService_Delete_CascadeFailureKeepsPost(t *testing.T) {
	posts := newStubPostRepo()
	comments := newStubCommentRepo()
	svc := NewPostService(posts, comments, nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), validInput(), admin)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	comments.Create(context.Background(), &domain.Comment{PostID: created.ID, Body: "still attached"})

	comments.deleteErr = errors.New("comment store unavailable")
	if err := svc.Delete(context.Background(), created.ID); err == nil {
		t.Fatalf("delete reported success despite the failed cascade")
	}

	// The post must survive a failed cascade: deleting it first would leave
	// its comments referencing nothing.
	if _, err := svc.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("post gone after failed cascade: %v", err)
	}
	attached, _ := comments.ListByPost(context.Background(), created.ID)
	if len(attached) != 1 || attached[0].PostID != created.ID {
		t.Fatalf("comments detached from a post that still exists: %+v", attached)
	}
}

func TestPostService_Delete_NotFound(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), newStubCommentRepo(), nil, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
