package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-photo-gate/internal/utils"
)

// getServerVersion answers with the plain version string, or with the
// build details as JSON when the client accepts application/json.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		_, _ = utils.WriteJSON(w, h.services.AppInfoService.GetVersionInfo(ctx), http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(h.services.AppInfoService.GetAppVersion(ctx)))
}
