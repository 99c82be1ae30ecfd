package handler

import (
	"github.com/MKhiriev/go-photo-gate/internal/config"
	"github.com/MKhiriev/go-photo-gate/internal/handler/grpc"
	"github.com/MKhiriev/go-photo-gate/internal/handler/http"
	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/metrics"
	"github.com/MKhiriev/go-photo-gate/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, m, cfg.Uploads, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoTransports
	}

	return handlers, nil
}
