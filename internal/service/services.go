package service

import (
	"github.com/MKhiriev/linkboard/internal/config"
	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/internal/store"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	LikeService    LikeService
	CommentService CommentService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, logger),
		PostService:    NewPostService(storages.PostRepository, logger),
		LikeService:    NewLikeService(storages.LikeRepository, storages.PostRepository, logger),
		CommentService: NewCommentService(storages.CommentRepository, storages.PostRepository, logger),
	}
}
