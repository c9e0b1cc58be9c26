package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a user lookup by login or ID matches
	// no existing record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPostNotFound is returned when a post lookup by ID matches no
	// existing record.
	ErrPostNotFound = errors.New("post not found")

	// ErrDuplicateLike is returned when inserting a like violates the
	// uniqueness of the (post_id, user_id) pair. The unique index in storage
	// is the authoritative guard: even if two concurrent requests pass the
	// handler-level existence check, only one insert succeeds.
	ErrDuplicateLike = errors.New("duplicate like")

	// ErrCommentNotFound is returned when a comment lookup or delete by ID
	// matches no existing record for the given post.
	ErrCommentNotFound = errors.New("comment not found")
)
