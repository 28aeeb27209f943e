package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/analytics"
	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/repository"
)

// ErrNATSNotConfigured потребителю переходов нужен NATS_URL
var ErrNATSNotConfigured = errors.New("NATS_URL is required for click consumer")

// RunClickConsumer читает события переходов из NATS и агрегирует их в реестр
// до SIGINT или SIGTERM
func RunClickConsumer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.NATS.URL == "" {
		return ErrNATSNotConfigured
	}

	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := &dependencies{}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		deps.close(closeCtx, logger)
	}()

	registry, _, err := deps.initRegistry(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	deps.recorder = analytics.NewRecorder(repository.New(registry, model.RealClock{}), analytics.RecorderConfig{
		QueueSize:     cfg.Clicks.QueueSize,
		FlushInterval: cfg.Clicks.FlushInterval,
		Workers:       cfg.Clicks.Workers,
	}, logger)

	deps.nats, err = nats.Connect(cfg.NATS.URL, nats.Name("shortlink-clickconsumer"))
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}

	consumer := analytics.NewNATSConsumer(deps.recorder, logger)
	if err := consumer.Subscribe(deps.nats, cfg.NATS.Subject, cfg.NATS.Queue); err != nil {
		return err
	}

	<-ctx.Done()

	// Сначала дочитываем подписку, затем recorder сбрасывает накопленное
	if err := consumer.Drain(); err != nil {
		logger.Warn("Failed to drain subscription", zap.Error(err))
	}

	return nil
}
