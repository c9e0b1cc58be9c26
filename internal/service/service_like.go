package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/internal/store"
	"github.com/MKhiriev/linkboard/models"
)

// likeService is the concrete implementation of LikeService.
//
// Every mutation starts with a post existence check. The check and the
// mutation are separate statements, so under a concurrent post deletion the
// FOREIGN KEY on likes.post_id is what actually holds; the check turns the
// common case into a clean not-found error instead of a driver error.
// Reads run without the check.
type likeService struct {
	likeRepository store.LikeRepository
	postRepository store.PostRepository
	logger         *logger.Logger

	now func() time.Time
}

// NewLikeService constructs a LikeService over the like and post repositories.
func NewLikeService(likeRepository store.LikeRepository, postRepository store.PostRepository, logger *logger.Logger) LikeService {
	return &likeService{
		likeRepository: likeRepository,
		postRepository: postRepository,
		logger:         logger,
		now:            time.Now,
	}
}

// LikePost records that userID likes postID.
//
// Returns:
//   - store.ErrPostNotFound if the post does not exist.
//   - store.ErrDuplicateLike if the user already liked the post. The
//     fast-path existence check catches the common case; the unique index on
//     (post_id, user_id) catches concurrent double-likes at insert time.
func (l *likeService) LikePost(ctx context.Context, postID string, userID int64) error {
	log := logger.FromContext(ctx)

	exists, err := l.postRepository.PostExists(ctx, postID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("post existence check failed")
		return fmt.Errorf("post existence check failed: %w", err)
	}
	if !exists {
		return store.ErrPostNotFound
	}

	liked, err := l.likeRepository.LikeExists(ctx, postID, userID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Int64("user_id", userID).Msg("like existence check failed")
		return fmt.Errorf("like existence check failed: %w", err)
	}
	if liked {
		return store.ErrDuplicateLike
	}

	like := models.Like{PostID: postID, UserID: userID, LikedAt: l.now().UTC()}
	if err := l.likeRepository.CreateLike(ctx, like); err != nil {
		log.Err(err).Str("post_id", postID).Int64("user_id", userID).Msg("like creation ended with error")
		return fmt.Errorf("like creation ended with error: %w", err)
	}

	return nil
}

// UnlikePost removes userID's like from postID.
//
// Returns store.ErrPostNotFound if the post does not exist. Removing a like
// that was never recorded is not an error: the end state is the same.
func (l *likeService) UnlikePost(ctx context.Context, postID string, userID int64) error {
	log := logger.FromContext(ctx)

	exists, err := l.postRepository.PostExists(ctx, postID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("post existence check failed")
		return fmt.Errorf("post existence check failed: %w", err)
	}
	if !exists {
		return store.ErrPostNotFound
	}

	if err := l.likeRepository.DeleteLike(ctx, postID, userID); err != nil {
		log.Err(err).Str("post_id", postID).Int64("user_id", userID).Msg("like deletion ended with error")
		return fmt.Errorf("like deletion ended with error: %w", err)
	}

	return nil
}

// CountLikes returns the number of likes recorded for postID.
//
// Reads skip the post existence check: a missing post simply counts zero.
func (l *likeService) CountLikes(ctx context.Context, postID string) (int64, error) {
	log := logger.FromContext(ctx)

	count, err := l.likeRepository.CountLikes(ctx, postID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("like counting failed")
		return 0, fmt.Errorf("like counting failed: %w", err)
	}

	return count, nil
}
