// Package service implements the photo upload admission and validation
// pipeline.
//
// A submission flows through [Admission] (eligibility gate, pending limiter,
// form validator, duplicate check), is stored by an [Intake], is checked by
// the [PostStorageValidator] and is either published to [UploadSubscriber]s
// or removed again by the [Compensator]. Specific rejection reasons travel
// to the next page load through the [ReasonChannel].
package service

import (
	"context"

	"github.com/MKhiriev/go-photo-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Intake stores admitted uploads provisionally.
type Intake interface {
	// Store never returns an error; failures are described by the result
	// together with the artifacts already committed. provenance is written
	// with the provisional row so duplicate detection sees it immediately.
	Store(ctx context.Context, submitter models.Submitter, form models.SubmissionForm, provenance models.Provenance) models.IntakeResult
	Available(ctx context.Context) bool
}

// UploadPolicy may veto uploads for a submitter that passed every built-in
// eligibility check.
type UploadPolicy interface {
	AllowsUpload(ctx context.Context, submitter models.Submitter) bool
}

// UploadSubscriber is notified once an upload is stored and valid.
type UploadSubscriber interface {
	OnUploadSuccess(ctx context.Context, success models.UploadSuccess) error
}

// SubmissionService runs the whole pipeline for one posted form.
type SubmissionService interface {
	Submit(ctx context.Context, submitter models.Submitter, form models.SubmissionForm) (models.SubmissionOutcome, error)
}

// NoticeService composes the message shown after the post-submission
// redirect. Reading a notice consumes the pending rejection reason.
type NoticeService interface {
	Notice(ctx context.Context, sessionKey, response string) models.Notice
}

// EligibilityService tells the form whether it may be shown.
type EligibilityService interface {
	Eligibility(ctx context.Context, submitter models.Submitter) models.Eligibility
}

// SubmitterService resolves identities into submitters.
type SubmitterService interface {
	ResolveSubmitter(ctx context.Context, userID int64) models.Submitter
}

type AuthService interface {
	// ParseToken validates a submitter bearer token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// CreateSessionToken issues a session cookie token with a fresh session id.
	CreateSessionToken(ctx context.Context) (models.Token, error)
	// ParseSessionToken validates a session cookie token.
	ParseSessionToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}
