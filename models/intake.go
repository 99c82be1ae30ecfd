package models

// IntakeResult is what the intake reports after trying to store an admitted
// upload. On failure PostID and MediaIDs describe whatever provisional
// artifacts were already committed and must be compensated.
type IntakeResult struct {
	Success  bool     `json:"success"`
	PostID   int64    `json:"post_id,omitempty"`
	MediaIDs []int64  `json:"media_ids,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// HasPost reports whether a provisional submission was created.
func (r IntakeResult) HasPost() bool {
	return r.PostID != 0
}

// HasMedia reports whether at least one media row was created.
func (r IntakeResult) HasMedia() bool {
	return len(r.MediaIDs) > 0
}

// Complete reports whether the intake succeeded with both a post and media,
// which is the only shape the post-storage validator inspects.
func (r IntakeResult) Complete() bool {
	return r.Success && r.HasPost() && r.HasMedia()
}

// UploadSuccess is the signal published when an upload is stored and valid.
type UploadSuccess struct {
	PostID     int64      `json:"post_id"`
	MediaIDs   []int64    `json:"media_ids"`
	Provenance Provenance `json:"-"`
}

// SubmissionOutcome is the final result of the whole submission pipeline.
type SubmissionOutcome struct {
	// Accepted reports whether the submission is now pending moderation.
	Accepted bool

	// Reason is the rejection reason, if one was determined. It has already
	// been written to the reason channel.
	Reason RejectionReason

	// Success is set when Accepted is true.
	Success *UploadSuccess
}
