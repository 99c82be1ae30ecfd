package http

import (
	"net/http"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/utils"
)

func (h *Handler) eligibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	submitter, _ := utils.GetSubmitterFromContext(ctx)
	eligibility := h.services.EligibilityService.Eligibility(ctx, submitter)

	if _, err := utils.WritePrivateJSON(w, eligibility); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.eligibility").Send()
	}
}
