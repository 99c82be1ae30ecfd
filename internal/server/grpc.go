package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-photo-gate/internal/config"
	myGRPC "github.com/MKhiriev/go-photo-gate/internal/handler/grpc"
	"github.com/MKhiriev/go-photo-gate/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener
	stopTimeout     time.Duration

	logger *logger.Logger
}

func newGRPCServer(ctx context.Context, handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	handler.Register(ctx, server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		stopTimeout:     cfg.RequestTimeout,
		logger:          logger,
	}, nil
}

// Addr is the address the server listens on.
func (g *grpcServer) Addr() net.Addr {
	return g.gRPCNetListener.Addr()
}

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.RunServer").Msg("gRPC server Serve")
	}
}

// Shutdown reports NOT_SERVING first so that balancers stop routing, then
// stops gracefully. Connections still open after stopTimeout are closed.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(g.stopTimeout):
		g.server.Stop()
	}
}
