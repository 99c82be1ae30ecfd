package service

import (
	"context"

	"github.com/MKhiriev/go-photo-gate/internal/config"
	"github.com/MKhiriev/go-photo-gate/models"
)

type eligibilityService struct {
	gate    *EligibilityGate
	limiter *SubmissionLimiter

	maxDescriptionLength int
	minDimension         int
}

func NewEligibilityService(gate *EligibilityGate, limiter *SubmissionLimiter, cfg config.Uploads) EligibilityService {
	return &eligibilityService{
		gate:                 gate,
		limiter:              limiter,
		maxDescriptionLength: cfg.MaxDescriptionLength,
		minDimension:         cfg.MinPhotoDimension,
	}
}

// Eligibility reports what the upload form should show. Ineligible
// submitters get the "disabled" notice and no form; submitters at the
// pending limit get the "please wait" notice instead of the form fields.
// Anonymous submitters are asked to log in.
func (e *eligibilityService) Eligibility(ctx context.Context, submitter models.Submitter) models.Eligibility {
	if !e.gate.CanUpload(ctx, submitter) {
		return models.Eligibility{Message: MessageDisabled}
	}

	if !submitter.Authenticated {
		return models.Eligibility{LoginRequired: true, Message: MessageLoginRequired}
	}

	view := models.Eligibility{
		CanUpload:            true,
		MaxDescriptionLength: e.maxDescriptionLength,
		MinPhotoDimension:    e.minDimension,
		Guidelines:           Guidelines,
	}

	if e.limiter.HasReachedLimit(ctx, submitter) {
		view.LimitReached = true
		view.Message = MessageLimitReached
		view.Guidelines = nil
	}

	return view
}
