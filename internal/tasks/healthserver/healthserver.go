// Package healthserver gRPC сервис проверки состояния (grpc.health.v1): SERVING, пока отвечает база данных.
package healthserver

import (
	"context"
	"net"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/ellavs/tg-finance-assistant/internal/logger"
)

// Ограничение времени одной проверки.
const pingTimeout = 3 * time.Second

// Pinger Проверка доступности зависимости (база данных).
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	health   *health.Server
	pinger   Pinger
	interval time.Duration
	service  string
}

// New Сервис проверки состояния для service (пустое имя - состояние сервера целиком).
func New(pinger Pinger, service string, interval time.Duration) *Server {
	return &Server{
		health:   health.NewServer(),
		pinger:   pinger,
		interval: interval,
		service:  service,
	}
}

// Check Однократная проверка с обновлением статуса.
func (s *Server) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.pinger.Ping(ctx); err != nil {
		logger.Warn("База данных недоступна", "err", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	if s.service != "" {
		s.health.SetServingStatus(s.service, status)
	}
	return status
}

// Run Периодическая проверка до отмены контекста.
func (s *Server) Run(ctx context.Context) {
	s.Check(ctx)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.health.Shutdown()
			return
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}

// Register Регистрация сервиса на gRPC сервере.
func (s *Server) Register(grpcServer *grpc.Server) {
	healthpb.RegisterHealthServer(grpcServer, s.health)
}

// StartHealthServer Запуск gRPC сервера проверки состояния на addr.
// Сервер останавливается при отмене контекста.
func StartHealthServer(ctx context.Context, addr string, s *Server) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(err, "failed to listen")
	}
	grpcServer := grpc.NewServer()
	s.Register(grpcServer)
	logger.Info("health server listening", "addr", lis.Addr().String())

	go s.Run(ctx)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("failed to serve", "err", err)
		}
	}()
	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()
	return nil
}
