package models

import "time"

// Like marks that a user liked a post. The (PostID, UserID) pair is the
// composite key: at most one like may exist per pair. The pair is also
// covered by a unique index in storage, which is the authoritative guarantee
// under concurrent writers.
type Like struct {
	// PostID is the identifier of the liked post.
	PostID string `json:"post_id"`

	// UserID is the identifier of the user who placed the like.
	UserID int64 `json:"user_id"`

	// LikedAt is the timestamp the like was placed.
	LikedAt time.Time `json:"liked_at"`
}

// TableName returns the name of the database table
// associated with the Like model.
func (l Like) TableName() string {
	return "likes"
}
