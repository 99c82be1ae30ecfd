package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-gate/internal/store"
	"github.com/MKhiriev/go-photo-gate/models"
)

// PostStorageValidator checks properties that can only be measured once the
// file is stored. Currently that is the pixel size of the first media.
type PostStorageValidator struct {
	media        store.MediaRepository
	minDimension int
}

func NewPostStorageValidator(media store.MediaRepository, minDimension int) *PostStorageValidator {
	return &PostStorageValidator{media: media, minDimension: minDimension}
}

// ValidateStored requires both width and height of the first media of result
// to be at least the minimum dimension. Only complete results are inspected;
// anything else is reported as an error.
func (v *PostStorageValidator) ValidateStored(ctx context.Context, result models.IntakeResult) (models.Validation, error) {
	if !result.Complete() {
		return models.Invalid(models.ReasonNone), ErrIntakeFailed
	}

	media, err := v.media.GetMedia(ctx, result.MediaIDs[0])
	if err != nil {
		return models.Invalid(models.ReasonNone), fmt.Errorf("%w: %w", ErrLoadingMedia, err)
	}

	if media.Width < v.minDimension || media.Height < v.minDimension {
		return models.Invalid(models.ReasonInsufficientDimension), nil
	}

	return models.Valid(), nil
}
