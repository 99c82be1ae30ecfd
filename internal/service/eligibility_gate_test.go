package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-photo-gate/internal/mock"
	"github.com/MKhiriev/go-photo-gate/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCanUpload_Killswitch_ShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	intake := mock.NewMockIntake(ctrl)
	classifier := mock.NewMockClassifierAdapter(ctrl)

	gate := NewEligibilityGate(true, intake, classifier)

	assert.False(t, gate.CanUpload(context.Background(), member()))
}

func TestCanUpload_Blocked_ShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := NewEligibilityGate(false, mock.NewMockIntake(ctrl), mock.NewMockClassifierAdapter(ctrl))

	assert.False(t, gate.CanUpload(context.Background(), models.Submitter{ID: 1, Authenticated: true, Blocked: true}))
}

func TestCanUpload_IntakeUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	intake := mock.NewMockIntake(ctrl)
	intake.EXPECT().Available(gomock.Any()).Return(false)

	gate := NewEligibilityGate(false, intake, mock.NewMockClassifierAdapter(ctrl))

	assert.False(t, gate.CanUpload(context.Background(), member()))
}

func TestCanUpload_ClassifierUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	intake := mock.NewMockIntake(ctrl)
	classifier := mock.NewMockClassifierAdapter(ctrl)
	intake.EXPECT().Available(gomock.Any()).Return(true)
	classifier.EXPECT().Available(gomock.Any()).Return(false)

	gate := NewEligibilityGate(false, intake, classifier)

	assert.False(t, gate.CanUpload(context.Background(), member()))
}

func TestCanUpload_PolicyVeto(t *testing.T) {
	ctrl := gomock.NewController(t)
	intake := mock.NewMockIntake(ctrl)
	classifier := mock.NewMockClassifierAdapter(ctrl)
	allow := mock.NewMockUploadPolicy(ctrl)
	deny := mock.NewMockUploadPolicy(ctrl)
	never := mock.NewMockUploadPolicy(ctrl)

	intake.EXPECT().Available(gomock.Any()).Return(true)
	classifier.EXPECT().Available(gomock.Any()).Return(true)
	allow.EXPECT().AllowsUpload(gomock.Any(), member()).Return(true)
	deny.EXPECT().AllowsUpload(gomock.Any(), member()).Return(false)

	gate := NewEligibilityGate(false, intake, classifier, allow, deny, never)

	assert.False(t, gate.CanUpload(context.Background(), member()))
}

func TestCanUpload_AllChecksPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	intake := mock.NewMockIntake(ctrl)
	classifier := mock.NewMockClassifierAdapter(ctrl)
	intake.EXPECT().Available(gomock.Any()).Return(true)
	classifier.EXPECT().Available(gomock.Any()).Return(true)

	gate := NewEligibilityGate(false, intake, classifier)

	assert.True(t, gate.CanUpload(context.Background(), member()))
}

func TestAccepting(t *testing.T) {
	tests := []struct {
		name       string
		killswitch bool
		intake     bool
		classifier bool
		want       bool
	}{
		{name: "everything up", intake: true, classifier: true, want: true},
		{name: "killswitch", killswitch: true, intake: true, classifier: true},
		{name: "intake down", classifier: true},
		{name: "classifier down", intake: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			intake := mock.NewMockIntake(ctrl)
			classifier := mock.NewMockClassifierAdapter(ctrl)
			intake.EXPECT().Available(gomock.Any()).Return(tt.intake).AnyTimes()
			classifier.EXPECT().Available(gomock.Any()).Return(tt.classifier).AnyTimes()

			gate := NewEligibilityGate(tt.killswitch, intake, classifier)

			assert.Equal(t, tt.want, gate.Accepting(context.Background()))
		})
	}
}
