package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// CreationService имя сервиса в gRPC health, отражающее возможность
// создавать новые коды
const CreationService = "shortlink.Creation"

const healthPollInterval = time.Second

// readiness сообщает, может ли экземпляр выдавать новые коды
type readiness interface {
	Ready() bool
}

// serve запускает HTTP и, если настроен, gRPC health сервер и блокируется
// до отмены ctx или ошибки одного из серверов
func (a *App) serve(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() {
		a.logger.Info("Starting server", zap.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	if a.config.GRPCAddress != "" {
		lis, err := net.Listen("tcp", a.config.GRPCAddress)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", a.config.GRPCAddress, err)
		}

		a.grpcServer = grpc.NewServer()
		healthpb.RegisterHealthServer(a.grpcServer, a.health)

		go a.watchReadiness(ctx, a.deps.allocator)
		go func() {
			a.logger.Info("Starting gRPC health server", zap.String("address", a.config.GRPCAddress))
			if err := a.grpcServer.Serve(lis); err != nil {
				errCh <- fmt.Errorf("grpc server failed: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		a.logger.Info("Shutdown signal received")
		return nil
	case err := <-errCh:
		return err
	}
}

// watchReadiness переводит CreationService в NOT_SERVING, пока аллокатор
// не может выдать значение
func (a *App) watchReadiness(ctx context.Context, r readiness) {
	ticker := time.NewTicker(healthPollInterval)
	defer ticker.Stop()

	for {
		a.updateHealth(r)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (a *App) updateHealth(r readiness) {
	status := healthpb.HealthCheckResponse_SERVING
	if !r.Ready() {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	a.health.SetServingStatus(CreationService, status)
}

// shutdown останавливает серверы, дожидаясь активных запросов
func (a *App) shutdown(ctx context.Context) error {
	a.health.Shutdown()

	if a.grpcServer != nil {
		stopped := make(chan struct{})
		go func() {
			a.grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-ctx.Done():
			a.grpcServer.Stop()
		}
	}

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}

	return nil
}

func newHealthServer() *health.Server {
	s := health.NewServer()
	s.SetServingStatus(CreationService, healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}
