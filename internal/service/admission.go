// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/metrics"
	"github.com/MKhiriev/go-photo-gate/internal/validators"
	"github.com/MKhiriev/go-photo-gate/models"
)

// Admission decides whether an upload request may be stored.
//
// Checks run in a fixed order and stop at the first denial:
//  1. eligibility gate (denies without a reason)
//  2. pending submission limit
//  3. form validation
//  4. duplicate fingerprint
//
// Every denial that names a reason writes it to the reason channel.
type Admission struct {
	gate     *EligibilityGate
	limiter  *SubmissionLimiter
	form     *validators.SubmissionFormValidator
	registry *HashRegistry
	reasons  *ReasonChannel
	metrics  *metrics.Metrics
}

func NewAdmission(gate *EligibilityGate, limiter *SubmissionLimiter, form *validators.SubmissionFormValidator,
	registry *HashRegistry, reasons *ReasonChannel, m *metrics.Metrics) *Admission {
	return &Admission{
		gate:     gate,
		limiter:  limiter,
		form:     form,
		registry: registry,
		reasons:  reasons,
		metrics:  m,
	}
}

// Admit returns the admission decision for req. A non-nil error means an
// infrastructure failure; the decision is then a denial without a reason.
func (a *Admission) Admit(ctx context.Context, req *UploadRequest) (models.Decision, error) {
	decision, err := a.decide(ctx, req)
	a.metrics.ObserveAdmission(decision)
	if err != nil {
		return decision, err
	}

	if !decision.Allowed && decision.Reason.Valid() {
		if setErr := a.reasons.SetReason(ctx, req.SessionKey(), decision.Reason); setErr != nil {
			logger.FromContext(ctx).Err(setErr).
				Str("func", "*Admission.Admit").
				Str("reason", decision.Reason.String()).
				Msg("error writing rejection reason")
		}
	}

	return decision, nil
}

func (a *Admission) decide(ctx context.Context, req *UploadRequest) (models.Decision, error) {
	if !a.gate.CanUpload(ctx, req.Submitter) {
		return models.Deny(models.ReasonNone), nil
	}

	if a.limiter.HasReachedLimit(ctx, req.Submitter) {
		return models.Deny(models.ReasonConcurrentSubmissionLimit), nil
	}

	if reason := a.form.ValidateForm(ctx, req.Form); reason != models.ReasonNone {
		return models.Deny(reason), nil
	}

	hash, err := a.registry.Fingerprint(req)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Admission.decide").Msg("error fingerprinting upload")
		return models.Deny(models.ReasonNone), err
	}

	exists, err := a.registry.Exists(ctx, hash)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Admission.decide").Msg("error checking for duplicates")
		return models.Deny(models.ReasonNone), err
	}
	if exists {
		return models.Deny(models.ReasonDuplicateFile), nil
	}

	return models.Allow(), nil
}
