package probe

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/sbilibin2017/gw-craft-gallery/internal/logger"
)

// ServiceName is the health service name reported for the gallery API.
// The empty name reports the overall server status.
const ServiceName = "gallery"

// CheckFunc reports whether a backend the gallery depends on is reachable.
type CheckFunc func(ctx context.Context) error

// Server serves the standard gRPC health protocol on a side port.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	checks map[string]CheckFunc
}

// New creates a health server. Both services start as NOT_SERVING until Watch runs a first round of checks.
func New(checks map[string]CheckFunc) *Server {
	s := &Server{
		grpc: grpc.NewServer(
			grpc.ChainUnaryInterceptor(
				recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(recoverPanic)),
				logging.UnaryServerInterceptor(interceptorLogger(), logging.WithLogOnEvents(logging.FinishCall)),
			),
			grpc.ChainStreamInterceptor(
				recovery.StreamServerInterceptor(recovery.WithRecoveryHandler(recoverPanic)),
			),
		),
		health: health.NewServer(),
		checks: checks,
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

func recoverPanic(p any) error {
	logger.Log.Errorw("panic in health probe", "panic", p)
	return status.Errorf(codes.Internal, "%v", p)
}

func interceptorLogger() logging.Logger {
	return logging.LoggerFunc(func(_ context.Context, lvl logging.Level, msg string, fields ...any) {
		switch lvl {
		case logging.LevelDebug, logging.LevelInfo:
			logger.Log.Debugw(msg, fields...)
		case logging.LevelWarn:
			logger.Log.Warnw(msg, fields...)
		default:
			logger.Log.Errorw(msg, fields...)
		}
	})
}

func (s *Server) setStatus(st healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)
}

// Check runs every check once and publishes the result. Any failing check marks the gallery NOT_SERVING.
func (s *Server) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	st := healthpb.HealthCheckResponse_SERVING
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			logger.Log.Warnw("health check failed", "check", name, "error", err)
			st = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	s.setStatus(st)
	return st
}

// Watch runs the checks every interval until ctx is done.
func (s *Server) Watch(ctx context.Context, interval time.Duration) {
	s.Check(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}

// Serve accepts connections on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	if err := s.grpc.Serve(lis); err != nil {
		return fmt.Errorf("health probe stopped: %w", err)
	}
	return nil
}

// Stop reports NOT_SERVING to watchers and stops the server.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
