package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/models"
)

// likeRepository is the SQL-backed implementation of [LikeRepository].
// It manages the "likes" table, keyed by the (post_id, user_id) pair.
//
// The table carries a unique index over the pair. The service layer performs
// a fast-path existence check before inserting, but that check-then-insert
// sequence is not atomic: under concurrent writers the index is what actually
// enforces the one-like-per-user-per-post invariant.
type likeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLikeRepository constructs a [LikeRepository] backed by the provided
// database connection and logger.
func NewLikeRepository(db *DB, logger *logger.Logger) LikeRepository {
	logger.Debug().Msg("creating like repository")
	return &likeRepository{
		db:     db,
		logger: logger,
	}
}

// CreateLike inserts a like row for the (post_id, user_id) pair.
//
// Error handling:
//   - unique-constraint violation on either backend → [ErrDuplicateLike].
//     This is the concurrent path: both requests passed the existence check,
//     one insert lost.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *likeRepository) CreateLike(ctx context.Context, like models.Like) error {
	log := logger.FromContext(ctx)

	err := r.db.retryable(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, createLike, like.PostID, like.UserID, like.LikedAt)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*likeRepository.CreateLike").Msg("error inserting like")

		if isUniqueViolation(err) {
			return ErrDuplicateLike
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteLike removes the like row for the (post_id, user_id) pair.
// The delete is idempotent: removing an absent like is not an error.
func (r *likeRepository) DeleteLike(ctx context.Context, postID string, userID int64) error {
	log := logger.FromContext(ctx)

	err := r.db.retryable(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, deleteLike, postID, userID)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*likeRepository.DeleteLike").Msg("error deleting like")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// CountLikes returns the total number of likes for the given post.
// A post with no likes (or no post at all) counts as zero.
func (r *likeRepository) CountLikes(ctx context.Context, postID string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountLikesQuery(postID)
	if err != nil {
		log.Err(err).Str("func", "*likeRepository.CountLikes").Msg("error building query")
		return 0, fmt.Errorf("error building SQL query: %w", err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*likeRepository.CountLikes").Msg("error: scanning error")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}

// LikeExists reports whether the (post_id, user_id) pair already has a like.
// It is the fast-path duplicate check; the unique index remains the backstop.
func (r *likeRepository) LikeExists(ctx context.Context, postID string, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, likeExists, postID, userID).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*likeRepository.LikeExists").Msg("error: scanning error")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return exists, nil
}
