package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-photo-gate/internal/mock"
	"github.com/MKhiriev/go-photo-gate/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSubmitterAllowlist_AllowsUpload(t *testing.T) {
	allowlist := NewSubmitterAllowlist([]int64{7, 42})

	tests := []struct {
		name string
		id   int64
		want bool
	}{
		{name: "listed", id: 7, want: true},
		{name: "also listed", id: 42, want: true},
		{name: "not listed", id: 8, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, allowlist.AllowsUpload(context.Background(), models.Submitter{ID: tt.id, Authenticated: true}))
		})
	}
}

func TestUploadPolicies(t *testing.T) {
	assert.Empty(t, uploadPolicies(nil))
	assert.Len(t, uploadPolicies([]int64{1}), 1)
}

func TestCanUpload_ConfiguredAllowlist(t *testing.T) {
	ctrl := gomock.NewController(t)
	intake := mock.NewMockIntake(ctrl)
	classifier := mock.NewMockClassifierAdapter(ctrl)
	intake.EXPECT().Available(gomock.Any()).Return(true).Times(2)
	classifier.EXPECT().Available(gomock.Any()).Return(true).Times(2)

	gate := NewEligibilityGate(false, intake, classifier, uploadPolicies([]int64{99})...)

	assert.False(t, gate.CanUpload(context.Background(), member()))
	assert.True(t, gate.CanUpload(context.Background(), models.Submitter{ID: 99, Authenticated: true}))
}
