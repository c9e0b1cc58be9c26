package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/linkboard/internal/config"
	"github.com/MKhiriev/linkboard/internal/logger"
)

// Storages bundles every repository the service layer depends on.
// All repositories share one underlying database connection.
type Storages struct {
	UserRepository    UserRepository
	PostRepository    PostRepository
	LikeRepository    LikeRepository
	CommentRepository CommentRepository
}

// NewStorages opens the database connection described by cfg, runs pending
// migrations, and wires every repository on top of it.
//
// A DSN starting with "postgres://" or "postgresql://" selects the pgx
// driver; any other value is treated as a SQLite file path. This mirrors how
// the binary is deployed: Postgres in production, a local file in
// development.
//
// Any failure here is a startup error and should abort the process.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		PostRepository:    NewPostRepository(db, log),
		LikeRepository:    NewLikeRepository(db, log),
		CommentRepository: NewCommentRepository(db, log),
	}, nil
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}
