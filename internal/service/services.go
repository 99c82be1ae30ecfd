package service

import (
	"github.com/MKhiriev/go-photo-gate/internal/adapter"
	"github.com/MKhiriev/go-photo-gate/internal/config"
	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/metrics"
	"github.com/MKhiriev/go-photo-gate/internal/store"
	"github.com/MKhiriev/go-photo-gate/internal/validators"
	"github.com/MKhiriev/go-photo-gate/models"
)

type Services struct {
	AuthService        AuthService
	SubmitterService   SubmitterService
	SubmissionService  SubmissionService
	NoticeService      NoticeService
	EligibilityService EligibilityService
	AppInfoService     AppInfoService

	// Gate and Reasons are shared with the gRPC health server and the
	// cleanup worker.
	Gate    *EligibilityGate
	Reasons *ReasonChannel
}

func NewServices(storages *store.Storages, intake Intake, classifier adapter.ClassifierAdapter, cfg config.StructuredConfig,
	build models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	gate := NewEligibilityGate(cfg.Uploads.Killswitch, intake, classifier, uploadPolicies(cfg.Uploads.AllowedSubmitters)...)
	limiter := NewSubmissionLimiter(storages.SubmissionRepository, cfg.Uploads.MaxPendingSubmissions)
	registry := NewHashRegistry(storages.SubmissionRepository)
	reasons := NewReasonChannel(storages.ReasonStore, cfg.Uploads.ReasonTTL)

	admission := NewAdmission(gate, limiter, validators.NewSubmissionFormValidator(), registry, reasons, m)
	validator := NewPostStorageValidator(storages.MediaRepository, cfg.Uploads.MinPhotoDimension)
	compensator := NewCompensator(storages.SubmissionRepository, storages.PhotoFileStorage, m)
	publisher := NewSuccessPublisher(
		NewFinalizer(storages.SubmissionRepository, storages.MediaRepository),
		NewCompletionNotifier(m),
	)

	return &Services{
		AuthService:        NewAuthService(cfg.App, logger),
		SubmitterService:   NewSubmitterService(storages.SubmitterRepository),
		SubmissionService:  NewSubmissionService(admission, intake, validator, compensator, registry, reasons, publisher, m, logger),
		NoticeService:      NewNoticeService(reasons, cfg.Uploads.MinPhotoDimension),
		EligibilityService: NewEligibilityService(gate, limiter, cfg.Uploads),
		AppInfoService:     appInfo,
		Gate:               gate,
		Reasons:            reasons,
	}, nil
}
