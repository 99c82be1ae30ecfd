package http

import (
	"net/http"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/service"
	"github.com/MKhiriev/go-photo-gate/internal/utils"
)

// sessionCookieName is the cookie holding the signed session token.
const sessionCookieName = "photo_gate_session"

// withSession scopes rejection reasons to one browser session.
//
// The session id travels in a signed token stored in an HttpOnly cookie. A
// missing, expired or forged cookie is replaced with a fresh session. The
// reason key derived from the submitter and the session id is stored in the
// request context under [utils.SessionKeyCtxKey]. Must run after identify.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		var sessionID string
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			if token, err := h.services.AuthService.ParseSessionToken(ctx, cookie.Value); err == nil {
				sessionID = token.SessionID
			} else {
				log.Debug().Err(err).Msg("session cookie rejected, starting a new session")
			}
		}

		if sessionID == "" {
			token, err := h.services.AuthService.CreateSessionToken(ctx)
			if err != nil {
				log.Err(err).Str("func", "*Handler.withSession").Msg("error creating session token")
				http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
				return
			}

			sessionID = token.SessionID
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    token.SignedString,
				Path:     "/",
				HttpOnly: true,
				Secure:   r.TLS != nil,
				SameSite: http.SameSiteLaxMode,
			})
		}

		submitter, _ := utils.GetSubmitterFromContext(ctx)
		ctx = utils.WithSessionKey(ctx, service.ReasonSessionKey(submitter.ID, sessionID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
