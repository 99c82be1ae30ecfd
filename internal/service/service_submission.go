// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/metrics"
	"github.com/MKhiriev/go-photo-gate/models"
)

// submissionService composes the pipeline stages for one posted form.
type submissionService struct {
	admission   *Admission
	intake      Intake
	validator   *PostStorageValidator
	compensator *Compensator
	registry    *HashRegistry
	reasons     *ReasonChannel
	publisher   *SuccessPublisher
	metrics     *metrics.Metrics

	logger *logger.Logger
}

func NewSubmissionService(admission *Admission, intake Intake, validator *PostStorageValidator, compensator *Compensator,
	registry *HashRegistry, reasons *ReasonChannel, publisher *SuccessPublisher, m *metrics.Metrics, logger *logger.Logger) SubmissionService {
	return &submissionService{
		admission:   admission,
		intake:      intake,
		validator:   validator,
		compensator: compensator,
		registry:    registry,
		reasons:     reasons,
		publisher:   publisher,
		metrics:     m,
		logger:      logger,
	}
}

// Submit admits, stores and validates one upload.
//
// A returned error means the upload failed for an infrastructure reason;
// provisional artifacts have been compensated and no specific reason is
// surfaced. A business rejection returns a nil error and an outcome whose
// reason (if any) has already been written to the reason channel.
func (s *submissionService) Submit(ctx context.Context, submitter models.Submitter, form models.SubmissionForm) (models.SubmissionOutcome, error) {
	log := logger.FromContext(ctx)
	req := NewUploadRequest(submitter, form)

	decision, err := s.admission.Admit(ctx, req)
	if err != nil {
		return models.SubmissionOutcome{}, err
	}
	if !decision.Allowed {
		log.Info().Int64("submitter_id", submitter.ID).Str("reason", decision.Reason.String()).Msg("submission denied")
		return models.SubmissionOutcome{Reason: decision.Reason}, nil
	}

	// Admission already fingerprinted the request; this reads the memoized value.
	if _, err = s.registry.Fingerprint(req); err != nil {
		return models.SubmissionOutcome{}, err
	}

	result := s.intake.Store(ctx, submitter, form, req.Provenance())
	if !result.Complete() {
		s.compensate(ctx, result)
		return models.SubmissionOutcome{}, fmt.Errorf("%w: %s", ErrIntakeFailed, strings.Join(result.Errors, "; "))
	}

	validation, err := s.validator.ValidateStored(ctx, result)
	s.metrics.ObserveValidation(validation)
	if err != nil {
		s.compensate(ctx, result)
		return models.SubmissionOutcome{}, err
	}

	if !validation.Valid {
		s.compensate(ctx, result)
		if err = s.reasons.SetReason(ctx, req.SessionKey(), validation.Reason); err != nil {
			log.Err(err).Str("func", "*submissionService.Submit").Msg("error writing rejection reason")
		}
		log.Info().Int64("post_id", result.PostID).Str("reason", validation.Reason.String()).Msg("stored upload rejected")
		return models.SubmissionOutcome{Reason: validation.Reason}, nil
	}

	success := models.UploadSuccess{
		PostID:     result.PostID,
		MediaIDs:   result.MediaIDs,
		Provenance: req.Provenance(),
	}
	if err = s.publisher.Publish(ctx, success); err != nil {
		log.Err(err).Str("func", "*submissionService.Submit").Int64("post_id", result.PostID).Msg("success subscribers reported errors")
	}

	return models.SubmissionOutcome{Accepted: true, Success: &success}, nil
}

func (s *submissionService) compensate(ctx context.Context, result models.IntakeResult) {
	if err := s.compensator.DeleteProvisional(ctx, result); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*submissionService.compensate").Msg("provisional upload left behind")
	}
}
