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

// postService is the concrete implementation of PostService.
type postService struct {
	postRepository store.PostRepository
	idGenerator    *utils.UUIDGenerator
	logger         *logger.Logger

	// now is the timestamp source, replaceable in tests.
	now func() time.Time
}

// NewPostService constructs a PostService wired to the given PostRepository.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		idGenerator:    utils.NewUUIDGenerator(),
		logger:         logger,
		now:            time.Now,
	}
}

// ListPosts returns every stored post, newest first. All identified users see
// the same feed.
func (p *postService) ListPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	posts, err := p.postRepository.ListPosts(ctx, userID)
	if err != nil {
		log.Err(err).Msg("post listing failed")
		return nil, fmt.Errorf("post listing failed: %w", err)
	}

	return posts, nil
}

// CreatePost validates and persists a new post.
//
// Title and URL must both be non-empty; the service assigns the ID and the
// creation timestamp. The URL is not checked for uniqueness: sharing the same
// link twice produces two independent posts.
//
// Returns the persisted post or:
//   - ErrMissingTitleOrURL if Title or URL is empty.
//   - A wrapped storage error if the insert fails.
func (p *postService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if post.Title == "" || post.URL == "" {
		log.Error().Str("title", post.Title).Str("url", post.URL).Msg("missing title or url")
		return models.Post{}, ErrMissingTitleOrURL
	}

	post.ID = p.idGenerator.Generate()
	post.PostedAt = p.now().UTC()

	createdPost, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Str("post_id", post.ID).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return createdPost, nil
}

// GetPost retrieves a single post by ID.
//
// Returns a wrapped storage error if the lookup fails (e.g. no such post —
// see store.ErrPostNotFound).
func (p *postService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := p.postRepository.GetPost(ctx, postID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("post lookup failed")
		return models.Post{}, fmt.Errorf("post lookup failed: %w", err)
	}

	return post, nil
}

// DeletePost removes a post by ID. Any identified user may delete any post;
// no ownership check is performed. Deleting an absent post succeeds.
func (p *postService) DeletePost(ctx context.Context, postID string) error {
	log := logger.FromContext(ctx)

	if err := p.postRepository.DeletePost(ctx, postID); err != nil {
		log.Err(err).Str("post_id", postID).Msg("post deletion ended with error")
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	return nil
}
