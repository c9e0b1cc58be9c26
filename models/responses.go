package models

// PostsResponse is the body of a successful post listing.
type PostsResponse struct {
	// Posts is the list of posts visible to the caller.
	Posts []Post `json:"posts"`
}

// PostResponse is the body of a successful single-post fetch.
type PostResponse struct {
	// Post is the requested post.
	Post Post `json:"post"`
}

// LikesResponse is the body of a like count request.
type LikesResponse struct {
	// Likes is the total number of likes for the post.
	Likes int64 `json:"likes"`
}

// CommentsResponse is the body of a comment listing.
type CommentsResponse struct {
	// Comments is the list of comments for the post, oldest first.
	Comments []Comment `json:"comments"`
}

// CommentCountResponse is the body of a comment count request.
type CommentCountResponse struct {
	// Comments is the total number of comments for the post.
	Comments int64 `json:"comments"`
}

// ErrorResponse is the error body used by like and comment endpoints.
// Post endpoints deliberately respond with bare status codes instead;
// existing clients depend on that asymmetry.
type ErrorResponse struct {
	// Error is a short human-readable description of the failure.
	Error string `json:"error"`
}

// HealthResponse is the body of the health check endpoint.
type HealthResponse struct {
	// Status is "ok!" when the service is up.
	Status string `json:"status"`
}
