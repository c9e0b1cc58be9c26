package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/models"
)

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &postRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreatePost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	post := models.Post{
		ID:       "0190a1b2-0000-7000-8000-000000000001",
		Title:    "interesting read",
		URL:      "https://example.com/article",
		UserID:   1,
		PostedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO posts").
		WithArgs(post.ID, post.Title, post.URL, post.UserID, post.PostedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	got, err := repo.CreatePost(context.Background(), post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != post.ID {
		t.Errorf("expected post to be echoed back, got ID=%q", got.ID)
	}
}

func TestCreatePost_DuplicateURLAllowed(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	first := models.Post{ID: "id-1", Title: "t", URL: "https://example.com", UserID: 1, PostedAt: time.Now()}
	second := models.Post{ID: "id-2", Title: "t", URL: "https://example.com", UserID: 2, PostedAt: time.Now()}

	mock.ExpectExec("INSERT INTO posts").
		WithArgs(first.ID, first.Title, first.URL, first.UserID, first.PostedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO posts").
		WithArgs(second.ID, second.Title, second.URL, second.UserID, second.PostedAt).
		WillReturnResult(sqlmock.NewResult(2, 1))

	if _, err := repo.CreatePost(context.Background(), first); err != nil {
		t.Fatalf("unexpected error on first insert: %v", err)
	}
	if _, err := repo.CreatePost(context.Background(), second); err != nil {
		t.Fatalf("unexpected error on second insert with same URL: %v", err)
	}
}

func TestListPosts_NewestFirst(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	newer := time.Now()
	older := newer.Add(-time.Hour)

	rows := sqlmock.NewRows([]string{"id", "title", "url", "user_id", "posted_at"}).
		AddRow("id-2", "second", "https://example.com/2", int64(2), newer).
		AddRow("id-1", "first", "https://example.com/1", int64(1), older)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, url, user_id, posted_at FROM posts ORDER BY posted_at DESC")).
		WillReturnRows(rows)

	posts, err := repo.ListPosts(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != "id-2" {
		t.Errorf("expected newest post first, got %q", posts[0].ID)
	}
}

func TestListPosts_Empty(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "url", "user_id", "posted_at"})

	mock.ExpectQuery("SELECT id, title, url, user_id, posted_at FROM posts").
		WillReturnRows(rows)

	posts, err := repo.ListPosts(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posts == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(posts) != 0 {
		t.Errorf("expected no posts, got %d", len(posts))
	}
}

func TestGetPost_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "url", "user_id", "posted_at"})

	mock.ExpectQuery("SELECT id, title, url, user_id, posted_at FROM posts WHERE").
		WithArgs("missing").
		WillReturnRows(rows)

	_, err := repo.GetPost(context.Background(), "missing")
	if !errors.Is(err, ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got: %v", err)
	}
}

func TestDeletePost_Idempotent(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM posts").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeletePost(context.Background(), "missing"); err != nil {
		t.Fatalf("expected deleting an absent post to succeed, got: %v", err)
	}
}

func TestPostExists(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
	}{
		{"post present", true},
		{"post absent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestPostRepo(t)
			defer db.Close()

			rows := sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists)

			mock.ExpectQuery("SELECT EXISTS").
				WithArgs("post-1").
				WillReturnRows(rows)

			got, err := repo.PostExists(context.Background(), "post-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.exists {
				t.Errorf("expected exists=%v, got %v", tt.exists, got)
			}
		})
	}
}
