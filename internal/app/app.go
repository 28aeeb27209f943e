package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"

	"github.com/avc-dev/shortlink/internal/config"
)

// App представляет приложение URL shortener
type App struct {
	config     *config.Config
	logger     *zap.Logger
	deps       *dependencies
	server     *http.Server
	grpcServer *grpc.Server
	health     *health.Server
}

// New создает новый экземпляр приложения
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	deps, err := initDependencies(ctx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return &App{
		config: cfg,
		logger: logger,
		deps:   deps,
		server: &http.Server{
			Addr:              cfg.ServerAddress.String(),
			Handler:           newRouter(deps.handler, deps.auth, logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
		health: newHealthServer(),
	}, nil
}

// Run запускает приложение и останавливает его по SIGINT или SIGTERM
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = app.logger.Sync() }()

	serveErr := app.serve(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	if err := app.shutdown(shutdownCtx); err != nil {
		app.logger.Error("Graceful shutdown failed", zap.Error(err))
	}
	app.Close(shutdownCtx)

	return serveErr
}

// Close освобождает ресурсы приложения
func (a *App) Close(ctx context.Context) {
	if a.deps != nil {
		a.deps.close(ctx, a.logger)
	}
	a.logger.Info("Application stopped")
}

// NewLogger создает zap логгер. Уровень debug включает конфигурацию
// для разработки.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	return zapCfg.Build()
}
