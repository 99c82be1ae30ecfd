package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/metrics"
	"github.com/MKhiriev/go-photo-gate/internal/store"
	"github.com/MKhiriev/go-photo-gate/models"
)

// Compensator hard-deletes the provisional artifacts of a failed or invalid
// upload: the submission, its media rows and their files.
type Compensator struct {
	submissions store.SubmissionRepository
	files       store.PhotoFileStorage
	metrics     *metrics.Metrics
}

func NewCompensator(submissions store.SubmissionRepository, files store.PhotoFileStorage, m *metrics.Metrics) *Compensator {
	return &Compensator{submissions: submissions, files: files, metrics: m}
}

// DeleteProvisional removes whatever result reports as committed. Rows or
// files that are already gone are ignored.
func (c *Compensator) DeleteProvisional(ctx context.Context, result models.IntakeResult) error {
	if !result.HasPost() && !result.HasMedia() {
		return nil
	}

	log := logger.FromContext(ctx)
	c.metrics.ObserveCompensation(compensationShape(result))

	deleted, err := c.submissions.DeleteWithMedia(ctx, result.PostID, result.MediaIDs)
	if err != nil && !errors.Is(err, store.ErrSubmissionNotFound) && !errors.Is(err, store.ErrMediaNotFound) {
		log.Err(err).Str("func", "*Compensator.DeleteProvisional").Int64("post_id", result.PostID).Msg("error deleting provisional rows")
		return fmt.Errorf("%w: %w", ErrCompensating, err)
	}

	var errs []error
	for _, m := range deleted {
		if m.FilePath == "" {
			continue
		}
		if rmErr := c.files.Remove(ctx, m.FilePath); rmErr != nil && !errors.Is(rmErr, store.ErrFileNotFound) {
			log.Err(rmErr).Str("func", "*Compensator.DeleteProvisional").Str("path", m.FilePath).Msg("error removing stored file")
			errs = append(errs, rmErr)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrCompensating, errors.Join(errs...))
	}

	log.Info().Int64("post_id", result.PostID).Ints64("media_ids", result.MediaIDs).Msg("provisional upload deleted")
	return nil
}

func compensationShape(result models.IntakeResult) string {
	switch {
	case result.Success:
		return metrics.ShapeInvalidPost
	case result.HasPost():
		return metrics.ShapeFailedPost
	default:
		return metrics.ShapeBareAttachment
	}
}
