// Package grpc exposes the upload availability of the service through the
// standard gRPC health checking protocol.
package grpc

import (
	"context"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// UploadsServiceName is the health service name that reflects whether
// uploads are accepted. The empty name mirrors it for plain probes.
const UploadsServiceName = "photogate.Uploads"

// Handler is the root gRPC transport handler.
//
// It owns a health server whose status follows the eligibility gate:
// NOT_SERVING while the killswitch is on or a dependency of the upload
// pipeline is unreachable, SERVING otherwise.
type Handler struct {
	gate   *service.EligibilityGate
	health *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		gate:   services.Gate,
		health: health.NewServer(),
		logger: logger,
	}
}

// Register attaches the health service to s and publishes the initial
// status.
func (h *Handler) Register(ctx context.Context, s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
	h.RefreshStatus(ctx)
}

// RefreshStatus re-evaluates the gate and updates both health entries.
func (h *Handler) RefreshStatus(ctx context.Context) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if h.gate != nil && h.gate.Accepting(ctx) {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus(UploadsServiceName, status)
	h.health.SetServingStatus("", status)
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health service shutting down")
	h.health.Shutdown()
}
