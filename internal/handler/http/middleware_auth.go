package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/internal/utils"
)

// identify is the first stage of the authentication gate.
//
// It inspects the "Authorization" header, extracts the bearer token, validates
// it via [service.AuthService.ParseToken], and — on success — stores the
// resolved user ID in the request context under [utils.UserIDCtxKey] before
// delegating to the next handler.
//
// identify never rejects a request. A missing header, a malformed header, or
// an invalid token all result in the request proceeding without an identity;
// enforcement is the job of requireUser. This split lets optional-auth
// endpoints see the caller's identity when one is offered without demanding
// one.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("unparseable authorization header, proceeding anonymously")
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected, proceeding anonymously")
			next.ServeHTTP(w, r)
			return
		}

		// Store the resolved user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireUser is the second stage of the authentication gate. It rejects
// requests that reached it without a resolved identity with HTTP 401.
// It must be mounted after identify.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			log := logger.FromRequest(r)
			log.Err(ErrNoIdentity).Str("uri", r.RequestURI).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
