package service

import (
	"bytes"
	"context"
	"encoding/hex"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-gate/internal/metrics"
	"github.com/MKhiriev/go-photo-gate/internal/mock"
	"github.com/MKhiriev/go-photo-gate/internal/store"
	"github.com/MKhiriev/go-photo-gate/internal/validators"
	"github.com/MKhiriev/go-photo-gate/models"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/blake2b"
)

const (
	testSessionKey = "7:session-1"
	defaultTestTTL = 3 * time.Minute
)

// countingFile returns a file whose content is "content" and counts how
// often it is opened.
func countingFile(name, content string, opens *int32) models.UploadedFile {
	return models.NewUploadedFile(name, int64(len(content)), "image/jpeg", func() (io.ReadCloser, error) {
		if opens != nil {
			atomic.AddInt32(opens, 1)
		}
		return io.NopCloser(bytes.NewReader([]byte(content))), nil
	})
}

func validForm(content string) models.SubmissionForm {
	return models.SubmissionForm{
		Files:                 []models.UploadedFile{countingFile("IMG_0001.jpg", content, nil)},
		CopyrightAcknowledged: true,
		LicenseAccepted:       true,
		SessionKey:            testSessionKey,
	}
}

// fingerprintOf is the digest the hash registry computes for content.
func fingerprintOf(content string) string {
	sum := blake2b.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

func member() models.Submitter {
	return models.Submitter{ID: 7, Authenticated: true}
}

func pendingIDs(n int) []int64 {
	ids := make([]int64, n)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	return ids
}

type pipeline struct {
	ctrl        *gomock.Controller
	submissions *mock.MockSubmissionRepository
	media       *mock.MockMediaRepository
	files       *mock.MockPhotoFileStorage
	intake      *mock.MockIntake
	classifier  *mock.MockClassifierAdapter
	reasonStore store.ReasonStore
	metrics     *metrics.Metrics

	gate      *EligibilityGate
	limiter   *SubmissionLimiter
	registry  *HashRegistry
	reasons   *ReasonChannel
	admission *Admission
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()
	ctrl := gomock.NewController(t)

	p := &pipeline{
		ctrl:        ctrl,
		submissions: mock.NewMockSubmissionRepository(ctrl),
		media:       mock.NewMockMediaRepository(ctrl),
		files:       mock.NewMockPhotoFileStorage(ctrl),
		intake:      mock.NewMockIntake(ctrl),
		classifier:  mock.NewMockClassifierAdapter(ctrl),
		reasonStore: store.NewMemoryReasonStore(),
		metrics:     metrics.New(prometheus.NewRegistry()),
	}

	p.gate = NewEligibilityGate(false, p.intake, p.classifier)
	p.limiter = NewSubmissionLimiter(p.submissions, 5)
	p.registry = NewHashRegistry(p.submissions)
	p.reasons = NewReasonChannel(p.reasonStore, defaultTestTTL)
	p.admission = NewAdmission(p.gate, p.limiter, validators.NewSubmissionFormValidator(), p.registry, p.reasons, p.metrics)
	return p
}

func (p *pipeline) eligible() {
	p.intake.EXPECT().Available(gomock.Any()).Return(true).AnyTimes()
	p.classifier.EXPECT().Available(gomock.Any()).Return(true).AnyTimes()
}

func (p *pipeline) takeReason(t *testing.T) (models.RejectionReason, bool) {
	t.Helper()
	return p.reasons.TakeReason(context.Background(), testSessionKey)
}
