package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/linkboard/internal/app"
	"github.com/MKhiriev/linkboard/internal/service"
	"github.com/MKhiriev/linkboard/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrMissingTitleOrURL:       http.StatusBadRequest,
	service.ErrMissingCommentBody:      http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrPostNotFound:       http.StatusNotFound,
	store.ErrCommentNotFound:    http.StatusNotFound,

	// duplicate like is 400, not 409: existing clients rely on it
	store.ErrDuplicateLike: http.StatusBadRequest,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	service.ErrWrongPassword:           app.MsgInvalidLoginPassword,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	service.ErrMissingTitleOrURL:       app.MsgMissingTitleOrURL,
	service.ErrMissingCommentBody:      app.MsgMissingCommentBody,

	store.ErrLoginAlreadyExists: app.MsgLoginAlreadyExists,
	store.ErrNoUserWasFound:     app.MsgUserNotFound,
	store.ErrPostNotFound:       app.MsgPostNotFound,
	store.ErrCommentNotFound:    app.MsgCommentNotFound,
	store.ErrDuplicateLike:      app.MsgDuplicateLike,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}
