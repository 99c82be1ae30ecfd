package http

import (
	"net/http"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/utils"
)

// notice returns the message for the page the submit redirect lands on.
// Reading it consumes the pending rejection reason of the session.
func (h *Handler) notice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionKey, _ := utils.GetSessionKeyFromContext(ctx)
	notice := h.services.NoticeService.Notice(ctx, sessionKey, r.URL.Query().Get(responseParam))

	if _, err := utils.WritePrivateJSON(w, notice); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.notice").Send()
	}
}
