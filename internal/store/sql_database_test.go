// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/models"
	"github.com/jackc/pgerrcode"
)

func newClassifyingLikeRepo(t *testing.T) (*likeRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &likeRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestRetryable_TransientErrorRetried(t *testing.T) {
	repo, mock, db := newClassifyingLikeRepo(t)
	defer db.Close()

	like := models.Like{PostID: "post-1", UserID: 42, LikedAt: time.Now()}

	// deadlock rollback on the first attempt, success on the second
	mock.ExpectExec("INSERT INTO likes").
		WithArgs(like.PostID, like.UserID, like.LikedAt).
		WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectExec("INSERT INTO likes").
		WithArgs(like.PostID, like.UserID, like.LikedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.CreateLike(context.Background(), like); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRetryable_TransientErrorGivesUpAfterOneRetry(t *testing.T) {
	repo, mock, db := newClassifyingLikeRepo(t)
	defer db.Close()

	like := models.Like{PostID: "post-1", UserID: 42, LikedAt: time.Now()}

	for i := 0; i < 2; i++ {
		mock.ExpectExec("INSERT INTO likes").
			WithArgs(like.PostID, like.UserID, like.LikedAt).
			WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	err := repo.CreateLike(context.Background(), like)
	if err == nil {
		t.Fatal("expected error after exhausted retries, got nil")
	}
	if errors.Is(err, ErrDuplicateLike) {
		t.Errorf("connection failure must not map to ErrDuplicateLike, got: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRetryable_UniqueViolationNotRetried(t *testing.T) {
	repo, mock, db := newClassifyingLikeRepo(t)
	defer db.Close()

	like := models.Like{PostID: "post-1", UserID: 42, LikedAt: time.Now()}

	// a single expectation: a retry here would surface as an unexpected call
	mock.ExpectExec("INSERT INTO likes").
		WithArgs(like.PostID, like.UserID, like.LikedAt).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.CreateLike(context.Background(), like)
	if !errors.Is(err, ErrDuplicateLike) {
		t.Errorf("expected ErrDuplicateLike, got: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRetryable_NoClassifierRunsOnce(t *testing.T) {
	repo, mock, db := newTestLikeRepo(t)
	defer db.Close()

	like := models.Like{PostID: "post-1", UserID: 42, LikedAt: time.Now()}

	mock.ExpectExec("INSERT INTO likes").
		WithArgs(like.PostID, like.UserID, like.LikedAt).
		WillReturnError(pgError(pgerrcode.DeadlockDetected))

	err := repo.CreateLike(context.Background(), like)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
