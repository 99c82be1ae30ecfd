package service

import (
	"context"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/store"
	"github.com/MKhiriev/go-photo-gate/models"
)

// SubmissionLimiter caps the number of pending submissions per submitter.
//
// The check is not atomic with submission creation: two concurrent
// requests may both pass it and leave the submitter one over the cap.
type SubmissionLimiter struct {
	submissions store.SubmissionRepository
	maxPending  int
}

func NewSubmissionLimiter(submissions store.SubmissionRepository, maxPending int) *SubmissionLimiter {
	return &SubmissionLimiter{submissions: submissions, maxPending: maxPending}
}

// HasReachedLimit is true for anonymous submitters, for submitters with at
// least maxPending pending submissions, and when the count cannot be read.
func (l *SubmissionLimiter) HasReachedLimit(ctx context.Context, submitter models.Submitter) bool {
	if !submitter.Authenticated {
		return true
	}

	ids, err := l.submissions.ListPendingIDs(ctx, submitter.ID, l.maxPending)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*SubmissionLimiter.HasReachedLimit").
			Int64("submitter_id", submitter.ID).
			Msg("error counting pending submissions, treating limit as reached")
		return true
	}

	return len(ids) >= l.maxPending
}
