package grpcserver

import (
	"fmt"
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name reported by the health service.
const ServiceName = "lolookup.Api"

// HealthServer exposes the gRPC health protocol for the HTTP api.
type HealthServer struct {
	grpcServer   *grpc.Server
	healthServer *health.Server
	listener     net.Listener
	logger       zerolog.Logger
}

// StartHealthServer listens on addr and serves the health service in the background.
func StartHealthServer(addr string, logger zerolog.Logger) (*HealthServer, error) {
	list, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("couldn't start the tcp listener: %w", err)
	}

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	s := &HealthServer{
		grpcServer:   grpcServer,
		healthServer: healthServer,
		listener:     list,
		logger:       logger.With().Str("component", "grpc_health").Logger(),
	}

	go func() {
		s.logger.Info().Str("addr", list.Addr().String()).Msg("Running gRPC health server")
		if err := grpcServer.Serve(list); err != nil {
			s.logger.Error().Err(err).Msg("gRPC health server stopped")
		}
	}()

	return s, nil
}

// Addr is the address the server listens on.
func (s *HealthServer) Addr() string {
	return s.listener.Addr().String()
}

// SetServing toggles the reported status.
func (s *HealthServer) SetServing(serving bool) {
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}
	s.healthServer.SetServingStatus(ServiceName, status)
}

// Stop marks the service as not serving and waits for the open calls.
func (s *HealthServer) Stop() {
	s.SetServing(false)
	s.grpcServer.GracefulStop()
}
