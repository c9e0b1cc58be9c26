package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/models"
)

// postRepository is the SQL-backed implementation of [PostRepository].
// It manages the "posts" table. Posts are immutable after creation: the only
// mutations are insert and delete, matching the post lifecycle.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost persists a new post record. The caller is responsible for
// assigning the ID and the PostedAt timestamp; the repository writes the row
// verbatim and echoes the model back on success.
//
// Duplicate URLs are intentionally allowed: every call inserts a new row.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	err := r.db.retryable(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, createPost, post.ID, post.Title, post.URL, post.UserID, post.PostedAt)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

// ListPosts returns every stored post, newest first.
//
// The userID of the caller is accepted to keep the contract open for
// per-user scoping; the current storage semantics return all posts
// regardless of identity.
func (r *postRepository) ListPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error building query")
		return nil, fmt.Errorf("error building SQL query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.URL, &post.UserID, &post.PostedAt); err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: scanning error")
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return posts, nil
}

// GetPost retrieves a single post by ID.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrPostNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *postRepository) GetPost(ctx context.Context, postID string) (models.Post, error) {
	log := logger.FromContext(ctx)

	var post models.Post
	row := r.db.QueryRowContext(ctx, getPost, postID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error: row is nil")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&post.ID, &post.Title, &post.URL, &post.UserID, &post.PostedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error: scanning error")
		return models.Post{}, err
	}

	return post, nil
}

// DeletePost removes a post row unconditionally. Deleting a post that does
// not exist is not an error: the end state is the same.
//
// Likes and comments referencing the post are removed by the ON DELETE
// CASCADE constraints declared in the schema.
func (r *postRepository) DeletePost(ctx context.Context, postID string) error {
	log := logger.FromContext(ctx)

	err := r.db.retryable(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, deletePost, postID)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error deleting post")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// PostExists reports whether a post with the given ID is present.
// It is the existence check run before like and comment mutations.
func (r *postRepository) PostExists(ctx context.Context, postID string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, postExists, postID)

	if err := row.Scan(&exists); err != nil {
		log.Err(err).Str("func", "*postRepository.PostExists").Msg("error: scanning error")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return exists, nil
}
