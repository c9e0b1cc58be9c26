package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/internal/utils"
	"github.com/MKhiriev/linkboard/models"
	"github.com/go-chi/chi/v5"
)

// Post handlers respond to failures with bare status codes and no body.
// Like and comment handlers return `{"error": ...}` bodies instead; the
// asymmetry is part of the public contract and is kept as-is.

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// requireUser guarantees an identity is present
	userID, _ := utils.GetUserIDFromContext(ctx)

	posts, err := h.services.PostService.ListPosts(ctx, userID)
	if err != nil {
		log.Err(err).Msg("post listing failed")
		w.WriteHeader(statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.PostsResponse{Posts: posts}, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _ := utils.GetUserIDFromContext(ctx)

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	post.UserID = userID

	if _, err := h.services.PostService.CreatePost(ctx, post); err != nil {
		log.Err(err).Msg("post creation failed")
		w.WriteHeader(statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req struct {
		PostID string `json:"postId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.PostID == "" {
		log.Error().Msg("post id is missing in delete request")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// deletion is unconditional: any identified user may remove any post
	if err := h.services.PostService.DeletePost(ctx, req.PostID); err != nil {
		log.Err(err).Str("post_id", req.PostID).Msg("post deletion failed")
		w.WriteHeader(statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID := chi.URLParam(r, "id")
	if postID == "" {
		log.Error().Msg("post id is missing in path")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	post, err := h.services.PostService.GetPost(ctx, postID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("post lookup failed")
		w.WriteHeader(statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.PostResponse{Post: post}, http.StatusOK)
}
