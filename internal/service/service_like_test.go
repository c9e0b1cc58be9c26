package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/internal/mock"
	"github.com/MKhiriev/linkboard/internal/store"
	"github.com/MKhiriev/linkboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLikeSvc(t *testing.T, ctrl *gomock.Controller) (*likeService, *mock.MockLikeRepository, *mock.MockPostRepository) {
	t.Helper()
	mockLikes := mock.NewMockLikeRepository(ctrl)
	mockPosts := mock.NewMockPostRepository(ctrl)
	svc := NewLikeService(mockLikes, mockPosts, logger.Nop()).(*likeService)
	return svc, mockLikes, mockPosts
}

func TestLikeService_LikePost_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLikes, mockPosts := newTestLikeSvc(t, ctrl)
	ctx := context.Background()

	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	mockPosts.EXPECT().PostExists(ctx, "post-1").Return(true, nil)
	mockLikes.EXPECT().LikeExists(ctx, "post-1", int64(42)).Return(false, nil)
	mockLikes.EXPECT().
		CreateLike(ctx, models.Like{PostID: "post-1", UserID: 42, LikedAt: fixed}).
		Return(nil)

	require.NoError(t, svc.LikePost(ctx, "post-1", 42))
}

func TestLikeService_LikePost_PostNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockPosts := newTestLikeSvc(t, ctrl)
	ctx := context.Background()

	mockPosts.EXPECT().PostExists(ctx, "missing").Return(false, nil)

	err := svc.LikePost(ctx, "missing", 42)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestLikeService_LikePost_AlreadyLiked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLikes, mockPosts := newTestLikeSvc(t, ctrl)
	ctx := context.Background()

	mockPosts.EXPECT().PostExists(ctx, "post-1").Return(true, nil)
	mockLikes.EXPECT().LikeExists(ctx, "post-1", int64(42)).Return(true, nil)

	err := svc.LikePost(ctx, "post-1", 42)
	assert.ErrorIs(t, err, store.ErrDuplicateLike)
}

func TestLikeService_LikePost_ConcurrentDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLikes, mockPosts := newTestLikeSvc(t, ctrl)
	ctx := context.Background()

	// existence check passes, but another writer got there first:
	// the unique index rejects the insert
	mockPosts.EXPECT().PostExists(ctx, "post-1").Return(true, nil)
	mockLikes.EXPECT().LikeExists(ctx, "post-1", int64(42)).Return(false, nil)
	mockLikes.EXPECT().CreateLike(ctx, gomock.Any()).Return(store.ErrDuplicateLike)

	err := svc.LikePost(ctx, "post-1", 42)
	assert.ErrorIs(t, err, store.ErrDuplicateLike)
}

func TestLikeService_UnlikePost_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLikes, mockPosts := newTestLikeSvc(t, ctrl)
	ctx := context.Background()

	mockPosts.EXPECT().PostExists(ctx, "post-1").Return(true, nil).Times(2)
	mockLikes.EXPECT().DeleteLike(ctx, "post-1", int64(42)).Return(nil).Times(2)

	require.NoError(t, svc.UnlikePost(ctx, "post-1", 42))
	require.NoError(t, svc.UnlikePost(ctx, "post-1", 42))
}

func TestLikeService_UnlikePost_PostNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockPosts := newTestLikeSvc(t, ctrl)
	ctx := context.Background()

	mockPosts.EXPECT().PostExists(ctx, "missing").Return(false, nil)

	err := svc.UnlikePost(ctx, "missing", 42)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestLikeService_CountLikes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLikes, _ := newTestLikeSvc(t, ctrl)
	ctx := context.Background()

	mockLikes.EXPECT().CountLikes(ctx, "post-1").Return(int64(3), nil)

	count, err := svc.CountLikes(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestLikeService_CountLikes_MissingPostCountsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLikes, _ := newTestLikeSvc(t, ctrl)
	ctx := context.Background()

	// reads skip the existence check entirely
	mockLikes.EXPECT().CountLikes(ctx, "missing").Return(int64(0), nil)

	count, err := svc.CountLikes(ctx, "missing")
	require.NoError(t, err)
	assert.Zero(t, count)
}
