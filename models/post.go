package models

import "time"

// Post is a shared link. A post is owned by the user who created it and is
// immutable once created, except through an explicit delete.
type Post struct {
	// ID is the unique post identifier, generated server-side at creation.
	ID string `json:"id"`

	// Title is the user-supplied headline of the link. Required.
	Title string `json:"title"`

	// URL is the shared link itself. Required. Duplicate URLs are allowed:
	// every create inserts a new record.
	URL string `json:"url"`

	// UserID is the identifier of the post's owner.
	UserID int64 `json:"user_id"`

	// PostedAt is the creation timestamp assigned by the server.
	PostedAt time.Time `json:"posted_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
