// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// linkboard server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgMissingTitleOrURL is returned when a post create request omits the
	// title or the url field, or supplies them empty.
	MsgMissingTitleOrURL = "title and url are required"

	// MsgMissingPostID is returned when an operation that is scoped to a
	// post arrives without a post identifier.
	MsgMissingPostID = "post id is required"

	// MsgMissingCommentBody is returned when a comment create request omits
	// the body field or supplies it empty.
	MsgMissingCommentBody = "comment body is required"

	// MsgPostNotFound is returned when a read or mutation targets a post
	// that does not exist.
	MsgPostNotFound = "post not found"

	// MsgCommentNotFound is returned when a delete targets a comment that
	// does not exist for the given post.
	MsgCommentNotFound = "comment not found"

	// MsgDuplicateLike is returned when a user attempts to like a post they
	// have already liked.
	MsgDuplicateLike = "duplicate like"

	// MsgNoUserIDProvided is returned when a handler requires a user ID (e.g.
	// extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgUserNotFound is returned when a user lookup targets an account
	// that does not exist.
	MsgUserNotFound = "user not found"
)
