package service

import (
	"context"

	"github.com/MKhiriev/linkboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type PostService interface {
	ListPosts(ctx context.Context, userID int64) ([]models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error
}

type LikeService interface {
	LikePost(ctx context.Context, postID string, userID int64) error
	UnlikePost(ctx context.Context, postID string, userID int64) error
	CountLikes(ctx context.Context, postID string) (int64, error)
}

type CommentService interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, postID string, commentID string) error
	ListComments(ctx context.Context, postID string) ([]models.Comment, error)
	CountComments(ctx context.Context, postID string) (int64, error)
}
