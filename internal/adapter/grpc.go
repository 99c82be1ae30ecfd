package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-gate/internal/config"
	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ClassifierServiceName is the service name checked in the classifier's
// grpc.health.v1 registry.
const ClassifierServiceName = "classifier"

type grpcClassifierAdapter struct {
	conn    *grpc.ClientConn
	health  healthpb.HealthClient
	cfg     config.Adapter
	logger  *logger.Logger
}

// NewGRPCClassifierAdapter dials cfg.GRPCAddress lazily; the connection is
// established on the first health check.
func NewGRPCClassifierAdapter(cfg config.Adapter, logger *logger.Logger) (ClassifierAdapter, error) {
	if cfg.GRPCAddress == "" {
		return nil, ErrNotConfigured
	}

	conn, err := grpc.NewClient(cfg.GRPCAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("error creating classifier grpc client: %w", err)
	}

	return &grpcClassifierAdapter{
		conn:    conn,
		health:  healthpb.NewHealthClient(conn),
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// Available implements [ClassifierAdapter] by calling Health.Check for
// [ClassifierServiceName].
func (g *grpcClassifierAdapter) Available(ctx context.Context) bool {
	if g.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.RequestTimeout)
		defer cancel()
	}

	resp, err := g.health.Check(ctx, &healthpb.HealthCheckRequest{Service: ClassifierServiceName})
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*grpcClassifierAdapter.Available").Msg("classifier health check failed")
		return false
	}

	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
}

func (g *grpcClassifierAdapter) Close() error {
	return g.conn.Close()
}
