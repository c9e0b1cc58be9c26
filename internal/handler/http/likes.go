package http

import (
	"net/http"

	"github.com/MKhiriev/linkboard/internal/app"
	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/internal/utils"
	"github.com/MKhiriev/linkboard/models"
	"github.com/go-chi/chi/v5"
)

// writeErrorJSON maps err to an HTTP status and writes the `{"error": ...}`
// body used by like and comment endpoints. Unexpected errors come out as a
// generic 500 without leaking internals.
func writeErrorJSON(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err)}, statusFromError(err))
}

func (h *Handler) createLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID := chi.URLParam(r, "postId")
	if postID == "" {
		log.Error().Msg("post id is missing in path")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgMissingPostID}, http.StatusBadRequest)
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)

	if err := h.services.LikeService.LikePost(ctx, postID, userID); err != nil {
		log.Err(err).Str("post_id", postID).Int64("user_id", userID).Msg("like creation failed")
		writeErrorJSON(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID := chi.URLParam(r, "postId")
	if postID == "" {
		log.Error().Msg("post id is missing in path")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgMissingPostID}, http.StatusBadRequest)
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)

	if err := h.services.LikeService.UnlikePost(ctx, postID, userID); err != nil {
		log.Err(err).Str("post_id", postID).Int64("user_id", userID).Msg("like deletion failed")
		writeErrorJSON(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listLikes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID := chi.URLParam(r, "postId")
	if postID == "" {
		log.Error().Msg("post id is missing in path")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgMissingPostID}, http.StatusBadRequest)
		return
	}

	count, err := h.services.LikeService.CountLikes(ctx, postID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("like counting failed")
		writeErrorJSON(w, err)
		return
	}

	utils.WriteJSON(w, models.LikesResponse{Likes: count}, http.StatusOK)
}
