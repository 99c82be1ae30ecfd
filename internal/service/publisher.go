package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/models"
)

// SuccessPublisher fans the success signal out to its subscribers in
// registration order. A failing subscriber does not stop the others.
type SuccessPublisher struct {
	subscribers []UploadSubscriber
}

func NewSuccessPublisher(subscribers ...UploadSubscriber) *SuccessPublisher {
	return &SuccessPublisher{subscribers: subscribers}
}

func (p *SuccessPublisher) Publish(ctx context.Context, success models.UploadSuccess) error {
	var errs []error
	for _, s := range p.subscribers {
		if err := s.OnUploadSuccess(ctx, success); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*SuccessPublisher.Publish").Int64("post_id", success.PostID).Msg("upload subscriber failed")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
