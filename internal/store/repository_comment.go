package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/models"
)

// commentRepository is the SQL-backed implementation of [CommentRepository].
// It manages the "comments" table, scoped by post.
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment persists a new comment row. The caller assigns the ID and
// the CommentedAt timestamp; the stored model is echoed back on success.
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	err := r.db.retryable(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, createComment, comment.ID, comment.PostID, comment.UserID, comment.Body, comment.CommentedAt)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error inserting comment")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return comment, nil
}

// DeleteComment removes one comment row by ID within the given post.
//
// Error handling:
//   - no row affected → [ErrCommentNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *commentRepository) DeleteComment(ctx context.Context, postID string, commentID string) error {
	log := logger.FromContext(ctx)

	var result sql.Result
	err := r.db.retryable(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, deleteComment, postID, commentID)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("error deleting comment")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCommentNotFound
	}

	return nil
}

// ListComments returns all comments for the given post, oldest first.
func (r *commentRepository) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCommentsQuery(postID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error building query")
		return nil, fmt.Errorf("error building SQL query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.Body, &comment.CommentedAt); err != nil {
			log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error: scanning error")
			return nil, err
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return comments, nil
}

// CountComments returns the total number of comments for the given post.
func (r *commentRepository) CountComments(ctx context.Context, postID string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountCommentsQuery(postID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CountComments").Msg("error building query")
		return 0, fmt.Errorf("error building SQL query: %w", err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*commentRepository.CountComments").Msg("error: scanning error")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}
