package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-photo-gate/internal/mock"
	"github.com/MKhiriev/go-photo-gate/internal/store"
	"github.com/MKhiriev/go-photo-gate/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestResolveSubmitter(t *testing.T) {
	ctrl := gomock.NewController(t)
	submitters := mock.NewMockSubmitterRepository(ctrl)
	svc := NewSubmitterService(submitters)

	assert.Equal(t, models.Anonymous(), svc.ResolveSubmitter(context.Background(), 0))

	found := models.Submitter{ID: 42, Login: "ana", Authenticated: true}
	submitters.EXPECT().GetSubmitter(gomock.Any(), int64(42)).Return(found, nil)
	assert.Equal(t, found, svc.ResolveSubmitter(context.Background(), 42))

	submitters.EXPECT().GetSubmitter(gomock.Any(), int64(43)).Return(models.Submitter{}, store.ErrSubmitterNotFound)
	got := svc.ResolveSubmitter(context.Background(), 43)
	assert.True(t, got.Authenticated)
	assert.True(t, got.Blocked)
	assert.Equal(t, int64(43), got.ID)
}
