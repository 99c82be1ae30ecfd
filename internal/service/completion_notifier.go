package service

import (
	"context"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/metrics"
	"github.com/MKhiriev/go-photo-gate/models"
)

// CompletionNotifier records every completed upload.
type CompletionNotifier struct {
	metrics *metrics.Metrics
}

func NewCompletionNotifier(m *metrics.Metrics) *CompletionNotifier {
	return &CompletionNotifier{metrics: m}
}

func (n *CompletionNotifier) OnUploadSuccess(ctx context.Context, success models.UploadSuccess) error {
	n.metrics.ObserveCompletedUpload()
	logger.FromContext(ctx).Info().
		Int64("post_id", success.PostID).
		Ints64("media_ids", success.MediaIDs).
		Msg("photo upload complete")
	return nil
}
