package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-photo-gate/internal/mock"
	"github.com/MKhiriev/go-photo-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestValidateStored_DimensionBoundaries(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          models.Validation
	}{
		{name: "exactly minimum", width: 2000, height: 2000, want: models.Valid()},
		{name: "large", width: 6000, height: 4000, want: models.Valid()},
		{name: "width one short", width: 1999, height: 3000, want: models.Invalid(models.ReasonInsufficientDimension)},
		{name: "height one short", width: 3000, height: 1999, want: models.Invalid(models.ReasonInsufficientDimension)},
		{name: "undecodable", width: 0, height: 0, want: models.Invalid(models.ReasonInsufficientDimension)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			media := mock.NewMockMediaRepository(ctrl)
			media.EXPECT().GetMedia(gomock.Any(), int64(3)).Return(models.Media{ID: 3, Width: tt.width, Height: tt.height}, nil)

			v := NewPostStorageValidator(media, 2000)
			got, err := v.ValidateStored(context.Background(), models.IntakeResult{Success: true, PostID: 1, MediaIDs: []int64{3, 4}})

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateStored_IncompleteResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := NewPostStorageValidator(mock.NewMockMediaRepository(ctrl), 2000)

	for _, result := range []models.IntakeResult{
		{},
		{Success: true, PostID: 1},
		{Success: true, MediaIDs: []int64{1}},
		{PostID: 1, MediaIDs: []int64{1}},
	} {
		got, err := v.ValidateStored(context.Background(), result)
		assert.ErrorIs(t, err, ErrIntakeFailed)
		assert.False(t, got.Valid)
	}
}

func TestValidateStored_MediaLookupFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	media := mock.NewMockMediaRepository(ctrl)
	media.EXPECT().GetMedia(gomock.Any(), int64(3)).Return(models.Media{}, errors.New("db down"))

	_, err := NewPostStorageValidator(media, 2000).ValidateStored(context.Background(), models.IntakeResult{Success: true, PostID: 1, MediaIDs: []int64{3}})

	assert.ErrorIs(t, err, ErrLoadingMedia)
}
