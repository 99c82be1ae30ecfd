package http

import (
	"github.com/MKhiriev/go-photo-gate/internal/config"
	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/metrics"
	"github.com/MKhiriev/go-photo-gate/internal/service"
)

// Fallbacks for upload limits the config leaves unset.
const (
	defaultMaxMultipartMemory = 32 << 20
	defaultMaxUploadSize      = 64 << 20
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	redirectURL        string
	maxMultipartMemory int64
	maxUploadSize      int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.Uploads, logger *logger.Logger) *Handler {
	maxMemory := cfg.MaxMultipartMemory
	if maxMemory <= 0 {
		maxMemory = defaultMaxMultipartMemory
	}
	maxUpload := cfg.MaxUploadSize
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadSize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		metrics:            m,
		redirectURL:        cfg.RedirectURL,
		maxMultipartMemory: maxMemory,
		maxUploadSize:      maxUpload,
		logger:             logger,
	}
}
