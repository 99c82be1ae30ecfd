package service

import (
	"context"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/store"
	"github.com/MKhiriev/go-photo-gate/models"
)

type submitterService struct {
	submitters store.SubmitterRepository
}

func NewSubmitterService(submitters store.SubmitterRepository) SubmitterService {
	return &submitterService{submitters: submitters}
}

// ResolveSubmitter loads the submitter for an authenticated user id. When
// the record cannot be read the submitter is returned as blocked, so that
// an identity lookup failure never grants upload rights.
func (s *submitterService) ResolveSubmitter(ctx context.Context, userID int64) models.Submitter {
	if userID <= 0 {
		return models.Anonymous()
	}

	submitter, err := s.submitters.GetSubmitter(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*submitterService.ResolveSubmitter").
			Int64("submitter_id", userID).
			Msg("error resolving submitter, treating as blocked")
		return models.Submitter{ID: userID, Authenticated: true, Blocked: true}
	}

	return submitter
}
