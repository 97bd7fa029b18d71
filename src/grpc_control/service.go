package grpc_control

import (
	"fmt"
	"net"

	"market-charts/src/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is reported alongside the overall ("") health status.
const ServiceName = "marketcharts.ChartAPI"

// ControlServer exposes the standard gRPC health service for orchestrators.
type ControlServer struct {
	Server *grpc.Server
	Health *health.Server
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewControlServer(log *logger.Logger) *ControlServer {
	s := &ControlServer{
		Server: grpc.NewServer(),
		Health: health.NewServer(),
		Logger: log,
	}
	healthpb.RegisterHealthServer(s.Server, s.Health)
	reflection.Register(s.Server)

	s.SetServing(false)
	return s
}

// -----------------------------------------------------------------------------

// SetServing flips both the overall and the named service status.
func (s *ControlServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.Health.SetServingStatus("", status)
	s.Health.SetServingStatus(ServiceName, status)
}

// -----------------------------------------------------------------------------

// Serve blocks until the listener fails or Stop is called.
func (s *ControlServer) Serve(lis net.Listener) error {
	s.SetServing(true)
	if s.Logger != nil {
		s.Logger.Info("Starting gRPC health server on %s", lis.Addr())
	}
	if err := s.Server.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (s *ControlServer) ListenAndServe(host string, port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return fmt.Errorf("failed to listen for gRPC: %w", err)
	}
	return s.Serve(lis)
}

// -----------------------------------------------------------------------------

// Stop reports NOT_SERVING to watchers, then drains in-flight calls.
func (s *ControlServer) Stop() {
	s.Health.Shutdown()
	s.Server.GracefulStop()
}
