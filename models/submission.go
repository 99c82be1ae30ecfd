// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SubmissionStatus is the lifecycle state of a photo submission.
type SubmissionStatus string

const (
	// StatusPending marks a submission waiting for moderation.
	// Every submission created by the intake starts in this state.
	StatusPending SubmissionStatus = "pending"

	// StatusAccepted marks a submission approved by moderators.
	StatusAccepted SubmissionStatus = "accepted"

	// StatusRejected marks a submission rejected by moderators.
	StatusRejected SubmissionStatus = "rejected"
)

// DedupStatuses lists the statuses whose fingerprints block a new upload
// with the same content.
var DedupStatuses = []SubmissionStatus{StatusPending, StatusAccepted}

// Submission is the provisional record created for one attempted upload.
//
// It is created by the intake once admission succeeds, renamed by the
// finalizer after the stored file validates, and hard-deleted when the
// stored file fails validation.
type Submission struct {
	// ID is the database identifier (the "post id" of the intake contract).
	ID int64 `json:"id"`

	// SubmitterID is the owner of the submission.
	SubmitterID int64 `json:"submitter_id"`

	// Status is the moderation lifecycle state.
	Status SubmissionStatus `json:"status"`

	// Name is the URL-safe display name assigned by the finalizer.
	Name string `json:"name"`

	// Title is the display title assigned by the finalizer.
	Title string `json:"title"`

	// Description is the optional user-provided description.
	Description string `json:"description"`

	// PrimaryMediaID is the media designated as the visual representation
	// of the submission. Nil until finalization.
	PrimaryMediaID *int64 `json:"primary_media_id,omitempty"`

	// Provenance is the write-once metadata about the original upload.
	Provenance Provenance `json:"provenance"`

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// Provenance holds immutable information about the originally uploaded file.
type Provenance struct {
	OriginalFilename string `json:"original_filename"`
	OriginalSize     int64  `json:"original_size"`
	FileHash         string `json:"file_hash"`
}

// TableName returns the name of the database table
// associated with the Submission model.
func (s Submission) TableName() string {
	return "submissions"
}

// Finalization is the set of changes applied to a submission once its
// stored file has been validated.
type Finalization struct {
	SubmissionID   int64
	PrimaryMediaID int64
	Name           string
	Title          string

	// Provenance is written only if the submission has none recorded yet.
	Provenance Provenance
}
