package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/utils"
	"github.com/MKhiriev/go-photo-gate/models"
)

// identify resolves the acting submitter and stores it in the request
// context under [utils.SubmitterCtxKey].
//
// Bearer authentication is optional: a request without an "Authorization"
// header continues as the anonymous submitter, and the pipeline decides what
// anonymous users may do. A header that is present but malformed, expired or
// signed with the wrong key is answered with 401 Unauthorized.
//
// The request logger is tagged with the submitter id.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		submitter := models.Anonymous()

		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			tokenString, err := getTokenFromAuthHeader(authHeader)
			if err != nil {
				log.Err(err).Str("func", "*Handler.identify").Msg("malformed authorization header")
				http.Error(w, err.Error(), statusFromError(err))
				return
			}

			token, err := h.services.AuthService.ParseToken(ctx, tokenString)
			if err != nil {
				log.Err(err).Str("func", "*Handler.identify").Msg("bearer token rejected")
				http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
				return
			}

			submitter = h.services.SubmitterService.ResolveSubmitter(ctx, token.UserID)
		}

		ctx = utils.WithSubmitter(ctx, submitter)
		ctx = log.WithSubmitter(submitter.ID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form "<scheme> <token>".
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
