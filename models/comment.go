package models

import "time"

// Comment is a user remark attached to a post. A comment may only be created
// against an existing post; the existence check happens before insertion.
type Comment struct {
	// ID is the unique comment identifier, generated server-side at creation.
	ID string `json:"id"`

	// PostID is the identifier of the post the comment belongs to.
	PostID string `json:"post_id"`

	// UserID is the identifier of the comment's author.
	UserID int64 `json:"user_id"`

	// Body is the comment text. Required.
	Body string `json:"body"`

	// CommentedAt is the creation timestamp assigned by the server.
	CommentedAt time.Time `json:"commented_at"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
