package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/linkboard/internal/config"
	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/models"
)

// newSQLiteDB opens a throwaway on-disk SQLite database with the full schema
// applied, so constraint failures come from the real driver.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "linkboard.db")
	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: dsn}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate sqlite database: %v", err)
	}

	return db
}

func TestCreateUser_SQLiteDuplicateLogin(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewUserRepository(db, logger.Nop())

	user := models.User{Login: "alice", PasswordHash: "hash", Name: "Alice"}

	if _, err := repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("unexpected error on first insert: %v", err)
	}

	_, err := repo.CreateUser(context.Background(), user)
	if !errors.Is(err, ErrLoginAlreadyExists) {
		t.Errorf("expected ErrLoginAlreadyExists, got: %v", err)
	}
}

func TestCreateLike_SQLiteDuplicate(t *testing.T) {
	db := newSQLiteDB(t)
	users := NewUserRepository(db, logger.Nop())
	posts := NewPostRepository(db, logger.Nop())
	likes := NewLikeRepository(db, logger.Nop())

	ctx := context.Background()

	user, err := users.CreateUser(ctx, models.User{Login: "bob", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("unexpected error creating user: %v", err)
	}

	post := models.Post{
		ID:       "post-1",
		Title:    "title",
		URL:      "https://example.com",
		UserID:   user.UserID,
		PostedAt: time.Now(),
	}
	if _, err := posts.CreatePost(ctx, post); err != nil {
		t.Fatalf("unexpected error creating post: %v", err)
	}

	like := models.Like{PostID: post.ID, UserID: user.UserID, LikedAt: time.Now()}
	if err := likes.CreateLike(ctx, like); err != nil {
		t.Fatalf("unexpected error on first like: %v", err)
	}

	// inserting past the fast-path existence check hits the unique index
	err = likes.CreateLike(ctx, like)
	if !errors.Is(err, ErrDuplicateLike) {
		t.Errorf("expected ErrDuplicateLike, got: %v", err)
	}
}
