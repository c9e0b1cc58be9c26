package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/internal/store"
	"github.com/MKhiriev/linkboard/internal/utils"
	"github.com/MKhiriev/linkboard/models"
)

// commentService is the concrete implementation of CommentService.
// Like likeService, mutations check post existence first; reads do not.
type commentService struct {
	commentRepository store.CommentRepository
	postRepository    store.PostRepository
	idGenerator       *utils.UUIDGenerator
	logger            *logger.Logger

	now func() time.Time
}

// NewCommentService constructs a CommentService over the comment and post
// repositories.
func NewCommentService(commentRepository store.CommentRepository, postRepository store.PostRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		postRepository:    postRepository,
		idGenerator:       utils.NewUUIDGenerator(),
		logger:            logger,
		now:               time.Now,
	}
}

// CreateComment validates and persists a comment on a post.
//
// Returns the persisted comment or:
//   - ErrMissingCommentBody if Body is empty.
//   - store.ErrPostNotFound if the referenced post does not exist.
//   - A wrapped storage error if the insert fails.
func (c *commentService) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if comment.Body == "" {
		log.Error().Str("post_id", comment.PostID).Msg("missing comment body")
		return models.Comment{}, ErrMissingCommentBody
	}

	exists, err := c.postRepository.PostExists(ctx, comment.PostID)
	if err != nil {
		log.Err(err).Str("post_id", comment.PostID).Msg("post existence check failed")
		return models.Comment{}, fmt.Errorf("post existence check failed: %w", err)
	}
	if !exists {
		return models.Comment{}, store.ErrPostNotFound
	}

	comment.ID = c.idGenerator.Generate()
	comment.CommentedAt = c.now().UTC()

	createdComment, err := c.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		log.Err(err).Str("comment_id", comment.ID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return createdComment, nil
}

// DeleteComment removes one comment from a post.
//
// Returns:
//   - store.ErrPostNotFound if the post does not exist.
//   - store.ErrCommentNotFound if the comment does not exist under that post.
func (c *commentService) DeleteComment(ctx context.Context, postID string, commentID string) error {
	log := logger.FromContext(ctx)

	exists, err := c.postRepository.PostExists(ctx, postID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("post existence check failed")
		return fmt.Errorf("post existence check failed: %w", err)
	}
	if !exists {
		return store.ErrPostNotFound
	}

	if err := c.commentRepository.DeleteComment(ctx, postID, commentID); err != nil {
		log.Err(err).Str("post_id", postID).Str("comment_id", commentID).Msg("comment deletion ended with error")
		return fmt.Errorf("comment deletion ended with error: %w", err)
	}

	return nil
}

// ListComments returns all comments on postID, oldest first. A missing post
// yields an empty list, not an error: existence checks guard mutations only.
func (c *commentService) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	comments, err := c.commentRepository.ListComments(ctx, postID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("comment listing failed")
		return nil, fmt.Errorf("comment listing failed: %w", err)
	}

	return comments, nil
}

// CountComments returns the number of comments on postID. A missing post
// counts zero.
func (c *commentService) CountComments(ctx context.Context, postID string) (int64, error) {
	log := logger.FromContext(ctx)

	count, err := c.commentRepository.CountComments(ctx, postID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("comment counting failed")
		return 0, fmt.Errorf("comment counting failed: %w", err)
	}

	return count, nil
}
