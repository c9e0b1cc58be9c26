package store

import (
	"context"

	"github.com/MKhiriev/linkboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	ListPosts(ctx context.Context, userID int64) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error
	PostExists(ctx context.Context, postID string) (bool, error)
}

type LikeRepository interface {
	CreateLike(ctx context.Context, like models.Like) error
	DeleteLike(ctx context.Context, postID string, userID int64) error
	CountLikes(ctx context.Context, postID string) (int64, error)
	LikeExists(ctx context.Context, postID string, userID int64) (bool, error)
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, postID string, commentID string) error
	ListComments(ctx context.Context, postID string) ([]models.Comment, error)
	CountComments(ctx context.Context, postID string) (int64, error)
}
