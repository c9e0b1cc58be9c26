// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// endpointName identifies one logical API operation. The set of names is
// closed: routing is driven entirely by the endpoints table below, and
// resolveHandler must know every name listed there.
type endpointName string

const (
	epListPosts  endpointName = "listPosts"
	epCreatePost endpointName = "createPost"
	epDeletePost endpointName = "deletePost"
	epGetPost    endpointName = "getPost"

	epCreateLike endpointName = "createLike"
	epDeleteLike endpointName = "deleteLike"
	epListLikes  endpointName = "listLikes"

	epCreateComment endpointName = "createComment"
	epDeleteComment endpointName = "deleteComment"
	epListComments  endpointName = "listComments"
	epCountComments endpointName = "countComments"

	epSignUp         endpointName = "signUp"
	epSignIn         endpointName = "signIn"
	epGetUser        endpointName = "getUser"
	epGetCurrentUser endpointName = "getCurrentUser"

	epHealthz endpointName = "healthz"
)

// endpoint is one entry of the routing table: the HTTP method and URL
// template an operation is served under, and whether a resolved user
// identity is mandatory. Entries are static process-wide state, never
// mutated after route registration.
type endpoint struct {
	method       string
	path         string
	authRequired bool
}

// endpoints maps every operation to its route. Identity is always parsed
// from the Authorization header when present; authRequired additionally
// rejects requests that arrive without one.
var endpoints = map[endpointName]endpoint{
	epListPosts:  {method: http.MethodGet, path: "/api/posts", authRequired: true},
	epCreatePost: {method: http.MethodPost, path: "/api/posts", authRequired: true},
	epDeletePost: {method: http.MethodDelete, path: "/api/posts", authRequired: true},
	epGetPost:    {method: http.MethodGet, path: "/api/posts/{id}", authRequired: false},

	epCreateLike: {method: http.MethodPost, path: "/api/posts/{postId}/likes", authRequired: true},
	epDeleteLike: {method: http.MethodDelete, path: "/api/posts/{postId}/likes", authRequired: true},
	epListLikes:  {method: http.MethodGet, path: "/api/posts/{postId}/likes", authRequired: false},

	epCreateComment: {method: http.MethodPost, path: "/api/posts/{postId}/comments", authRequired: true},
	epDeleteComment: {method: http.MethodDelete, path: "/api/posts/{postId}/comments/{id}", authRequired: true},
	epListComments:  {method: http.MethodGet, path: "/api/posts/{postId}/comments", authRequired: false},
	epCountComments: {method: http.MethodGet, path: "/api/posts/{postId}/comments/count", authRequired: false},

	epSignUp:         {method: http.MethodPost, path: "/api/user/register", authRequired: false},
	epSignIn:         {method: http.MethodPost, path: "/api/user/login", authRequired: false},
	epGetUser:        {method: http.MethodGet, path: "/api/user/{id}", authRequired: true},
	epGetCurrentUser: {method: http.MethodGet, path: "/api/user/me", authRequired: true},

	epHealthz: {method: http.MethodGet, path: "/healthz", authRequired: false},
}

// resolveHandler returns the handler func for a named operation, or nil when
// the name is unknown. Init treats nil as a programming error and panics at
// startup rather than serving a route with no behavior.
func (h *Handler) resolveHandler(name endpointName) http.HandlerFunc {
	switch name {
	case epListPosts:
		return h.listPosts
	case epCreatePost:
		return h.createPost
	case epDeletePost:
		return h.deletePost
	case epGetPost:
		return h.getPost
	case epCreateLike:
		return h.createLike
	case epDeleteLike:
		return h.deleteLike
	case epListLikes:
		return h.listLikes
	case epCreateComment:
		return h.createComment
	case epDeleteComment:
		return h.deleteComment
	case epListComments:
		return h.listComments
	case epCountComments:
		return h.countComments
	case epSignUp:
		return h.register
	case epSignIn:
		return h.login
	case epGetUser:
		return h.getUser
	case epGetCurrentUser:
		return h.getCurrentUser
	case epHealthz:
		return h.healthz
	default:
		return nil
	}
}
