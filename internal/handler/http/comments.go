package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/linkboard/internal/app"
	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/internal/utils"
	"github.com/MKhiriev/linkboard/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID := chi.URLParam(r, "postId")
	if postID == "" {
		log.Error().Msg("post id is missing in path")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgMissingPostID}, http.StatusBadRequest)
		return
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)

	comment := models.Comment{PostID: postID, UserID: userID, Body: req.Body}
	created, err := h.services.CommentService.CreateComment(ctx, comment)
	if err != nil {
		log.Err(err).Str("post_id", postID).Int64("user_id", userID).Msg("comment creation failed")
		writeErrorJSON(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID := chi.URLParam(r, "postId")
	commentID := chi.URLParam(r, "id")
	if postID == "" || commentID == "" {
		log.Error().Msg("post id or comment id is missing in path")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgMissingPostID}, http.StatusBadRequest)
		return
	}

	if err := h.services.CommentService.DeleteComment(ctx, postID, commentID); err != nil {
		log.Err(err).Str("post_id", postID).Str("comment_id", commentID).Msg("comment deletion failed")
		writeErrorJSON(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID := chi.URLParam(r, "postId")
	if postID == "" {
		log.Error().Msg("post id is missing in path")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgMissingPostID}, http.StatusBadRequest)
		return
	}

	comments, err := h.services.CommentService.ListComments(ctx, postID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("comment listing failed")
		writeErrorJSON(w, err)
		return
	}

	utils.WriteJSON(w, models.CommentsResponse{Comments: comments}, http.StatusOK)
}

func (h *Handler) countComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID := chi.URLParam(r, "postId")
	if postID == "" {
		log.Error().Msg("post id is missing in path")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgMissingPostID}, http.StatusBadRequest)
		return
	}

	count, err := h.services.CommentService.CountComments(ctx, postID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("comment counting failed")
		writeErrorJSON(w, err)
		return
	}

	utils.WriteJSON(w, models.CommentCountResponse{Comments: count}, http.StatusOK)
}
