package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/models"
)

var postColumns = []string{
	"post_id", "username", "profile_name", "profile_pic_real", "comment", "date", "created_at",
}

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	repo := &postRepository{
		db:     db,
		logger: logger.Nop(),
	}
	return repo, mock
}

func TestCreatePost_Success(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()
	post := models.Post{
		Username:       "alice",
		ProfileName:    "Alice",
		ProfilePicReal: "img/profile/alice.png",
		Comment:        "hello world",
		Date:           "2024-03-01",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows(postColumns).
		AddRow(1, post.Username, post.ProfileName, post.ProfilePicReal, post.Comment, post.Date, now)

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs(post.Username, post.ProfileName, post.ProfilePicReal, post.Comment, post.Date).
		WillReturnRows(rows)

	created, err := repo.CreatePost(ctx, post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.PostID != 1 {
		t.Errorf("expected PostID=1, got %d", created.PostID)
	}
	if created.Comment != post.Comment {
		t.Errorf("expected comment %q, got %q", post.Comment, created.Comment)
	}
}

func TestCreatePost_DBError(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO posts").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreatePost(ctx, models.Post{Username: "alice"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestListPosts_All(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(postColumns).
		AddRow(3, "bob", "Bob", "img/profile/bob.png", "third", "2024-03-01", now).
		AddRow(2, "alice", "Alice", "img/profile/alice.png", "second", "2024-02-01", now).
		AddRow(1, "alice", "Alice", "img/profile/alice.png", "first", "2024-01-01", now)

	mock.ExpectQuery("SELECT (.+) FROM posts ORDER BY date DESC LIMIT 20").
		WillReturnRows(rows)

	posts, err := repo.ListPosts(ctx, models.PostFilter{Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	if posts[0].Date != "2024-03-01" {
		t.Errorf("expected newest post first, got %s", posts[0].Date)
	}
}

func TestListPosts_FilteredByUsername(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(postColumns).
		AddRow(2, "alice", "Alice", "img/profile/alice.png", "second", "2024-02-01", now)

	mock.ExpectQuery("SELECT (.+) FROM posts WHERE username = (.+) ORDER BY date DESC LIMIT 20").
		WithArgs("alice").
		WillReturnRows(rows)

	posts, err := repo.ListPosts(ctx, models.PostFilter{Username: "alice", Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].Username != "alice" {
		t.Errorf("expected alice's post, got %s", posts[0].Username)
	}
}

func TestListPosts_Empty(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM posts").
		WillReturnRows(sqlmock.NewRows(postColumns))

	posts, err := repo.ListPosts(ctx, models.PostFilter{Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected no posts, got %d", len(posts))
	}
}

func TestListPosts_QueryError(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM posts").
		WillReturnError(errors.New("db network error"))

	_, err := repo.ListPosts(ctx, models.PostFilter{Limit: 20})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
