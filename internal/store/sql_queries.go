package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, name, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, password_hash, name, created_at
    FROM users
    WHERE user_id = $1;`

	createPost = `INSERT INTO posts (id, title, url, user_id, posted_at)
    VALUES ($1, $2, $3, $4, $5);`

	getPost = `SELECT id, title, url, user_id, posted_at
    FROM posts
    WHERE id = $1;`

	deletePost = `DELETE FROM posts WHERE id = $1;`

	postExists = `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1);`

	createLike = `INSERT INTO likes (post_id, user_id, liked_at)
    VALUES ($1, $2, $3);`

	deleteLike = `DELETE FROM likes WHERE post_id = $1 AND user_id = $2;`

	likeExists = `SELECT EXISTS(SELECT 1 FROM likes WHERE post_id = $1 AND user_id = $2);`

	createComment = `INSERT INTO comments (id, post_id, user_id, body, commented_at)
    VALUES ($1, $2, $3, $4, $5);`

	deleteComment = `DELETE FROM comments WHERE post_id = $1 AND id = $2;`
)

// queryBuilder is the shared squirrel statement builder with PostgreSQL-style
// positional placeholders. SQLite accepts the same $N markers, so a single
// builder serves both backends.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListPostsQuery builds the post listing query. All posts are returned
// regardless of the caller's identity; newest first.
func buildListPostsQuery() (string, []any, error) {
	return queryBuilder.
		Select("id", "title", "url", "user_id", "posted_at").
		From("posts").
		OrderBy("posted_at DESC").
		ToSql()
}

// buildCountLikesQuery builds the like totals query for one post.
func buildCountLikesQuery(postID string) (string, []any, error) {
	return queryBuilder.
		Select("COUNT(*)").
		From("likes").
		Where(sq.Eq{"post_id": postID}).
		ToSql()
}

// buildListCommentsQuery builds the comment listing query for one post,
// oldest first so that threads read top to bottom.
func buildListCommentsQuery(postID string) (string, []any, error) {
	return queryBuilder.
		Select("id", "post_id", "user_id", "body", "commented_at").
		From("comments").
		Where(sq.Eq{"post_id": postID}).
		OrderBy("commented_at ASC").
		ToSql()
}

// buildCountCommentsQuery builds the comment totals query for one post.
func buildCountCommentsQuery(postID string) (string, []any, error) {
	return queryBuilder.
		Select("COUNT(*)").
		From("comments").
		Where(sq.Eq{"post_id": postID}).
		ToSql()
}
