package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/allocator"
	"github.com/avc-dev/shortlink/internal/analytics"
	"github.com/avc-dev/shortlink/internal/cache"
	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/migrations"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/repository"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/store"
	"github.com/avc-dev/shortlink/internal/usecase"
)

// dependencies собранный граф компонентов и всё, что нужно закрыть при остановке
type dependencies struct {
	handler   *handler.Handler
	auth      *service.AuthService
	allocator *allocator.Allocator
	// recorder nil, если переходы публикуются в NATS
	recorder *analytics.Recorder
	db       db.Database
	pg       *pgxpool.Pool
	sqlite   *store.SQLiteStore
	redis    *redis.Client
	nats     *nats.Conn
}

// initDependencies инициализирует все зависимости приложения. При ошибке
// уже открытые соединения закрываются.
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (_ *dependencies, err error) {
	deps := &dependencies{}
	defer func() {
		if err != nil {
			deps.close(context.Background(), logger)
		}
	}()

	registry, health, err := deps.initRegistry(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	counter, ledger, err := deps.initCounter(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize counter: %w", err)
	}

	repo := repository.New(registry, model.RealClock{})

	instanceID := cfg.Range.InstanceID
	if instanceID == "" {
		instanceID = defaultInstanceID()
	}

	deps.allocator, err = allocator.New(counter, ledger, allocator.Config{
		InstanceID:  instanceID,
		RangeSize:   cfg.Range.Size,
		Threshold:   cfg.Range.Threshold,
		AsyncRefill: cfg.Range.AsyncRefill,
		Timeout:     cfg.Range.Timeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create allocator: %w", err)
	}
	if err := deps.allocator.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to reserve initial range: %w", err)
	}

	clicks, err := deps.initClicks(cfg, repo, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize click recorder: %w", err)
	}

	urlService := service.NewURLService(repo, deps.allocator, deps.initCache(cfg, logger), clicks, cfg, logger)
	urlUsecase := usecase.NewURLUsecase(urlService, deps.allocator, cfg, logger)
	deps.auth = service.NewAuthService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	deps.handler = handler.New(urlUsecase, logger, health, deps.auth)

	return deps, nil
}

// initRegistry выбирает хранилище реестра: PostgreSQL, SQLite или память
func (d *dependencies) initRegistry(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, handler.HealthChecker, error) {
	switch {
	case cfg.Database.DSN != "":
		if err := d.connectPostgres(ctx, cfg, logger); err != nil {
			return nil, nil, err
		}
		logger.Info("Using PostgreSQL storage")
		return store.NewDatabaseStore(d.pg), d.db, nil
	case cfg.SQLitePath != "":
		if err := d.openSQLite(ctx, cfg, logger); err != nil {
			return nil, nil, err
		}
		logger.Info("Using SQLite storage", zap.String("path", cfg.SQLitePath))
		return d.sqlite, d.sqlite, nil
	default:
		logger.Info("Using in-memory storage")
		return store.NewStore(), nil, nil
	}
}

// initCounter выбирает глобальный счётчик согласно COUNTER_BACKEND
func (d *dependencies) initCounter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (allocator.CounterStore, allocator.RangeLedger, error) {
	backend := cfg.ResolveCounterBackend()
	logger.Info("Counter backend selected", zap.String("backend", backend))

	switch backend {
	case config.CounterPostgres:
		if err := d.connectPostgres(ctx, cfg, logger); err != nil {
			return nil, nil, err
		}
		counter := store.NewDatabaseCounter(d.pg)
		return counter, counter, nil
	case config.CounterSQLite:
		if err := d.openSQLite(ctx, cfg, logger); err != nil {
			return nil, nil, err
		}
		return d.sqlite, d.sqlite, nil
	case config.CounterRedis:
		if err := d.connectRedis(ctx, cfg); err != nil {
			return nil, nil, err
		}
		counter := store.NewRedisCounter(d.redis, store.DefaultCounterKey)
		return counter, counter, nil
	default:
		logger.Warn("Using in-memory counter, ranges are not shared between instances")
		counter := store.NewMemoryCounter()
		return counter, counter, nil
	}
}

func (d *dependencies) connectPostgres(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if d.db != nil {
		return nil
	}

	dbCfg := db.NewConfig(cfg.Database.DSN)
	if cfg.Database.MaxConns > 0 {
		dbCfg.MaxConns = cfg.Database.MaxConns
	}
	if cfg.Database.MinConns > 0 {
		dbCfg.MinConns = cfg.Database.MinConns
	}

	adapter, err := dbCfg.Connect(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	d.db = adapter
	d.pg = adapter.Pool

	if err := migrations.NewMigrator(adapter.DB(), migrations.DialectPostgres, logger).RunUp(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (d *dependencies) openSQLite(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if d.sqlite != nil {
		return nil
	}

	sqliteStore, err := store.OpenSQLite(ctx, cfg.SQLitePath, logger)
	if err != nil {
		return fmt.Errorf("failed to open sqlite: %w", err)
	}
	d.sqlite = sqliteStore

	return nil
}

func (d *dependencies) connectRedis(ctx context.Context, cfg *config.Config) error {
	if d.redis != nil {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to ping redis at %s: %w", cfg.RedisAddr, err)
	}
	d.redis = client

	return nil
}

// initCache использует Redis, если он настроен, иначе кэш в памяти
func (d *dependencies) initCache(cfg *config.Config, logger *zap.Logger) service.Cache {
	if cfg.RedisAddr != "" {
		if err := d.connectRedis(context.Background(), cfg); err != nil {
			logger.Warn("Redis cache unavailable, falling back to in-memory cache", zap.Error(err))
		} else {
			logger.Info("Using Redis cache", zap.String("addr", cfg.RedisAddr))
			return cache.NewRedis(d.redis, cfg.Cache.TTL, logger)
		}
	}

	return cache.NewMemory(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
}

// initClicks публикует переходы в NATS, если задан NATS_URL, иначе
// агрегирует их в процессе и пишет в реестр
func (d *dependencies) initClicks(cfg *config.Config, sink analytics.ClickSink, logger *zap.Logger) (service.ClickRecorder, error) {
	if cfg.NATS.URL != "" {
		conn, err := nats.Connect(cfg.NATS.URL, nats.Name("shortlink"))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		d.nats = conn
		logger.Info("Publishing clicks to NATS", zap.String("subject", cfg.NATS.Subject))
		return analytics.NewNATSPublisher(conn, cfg.NATS.Subject, logger), nil
	}

	d.recorder = analytics.NewRecorder(sink, analytics.RecorderConfig{
		QueueSize:     cfg.Clicks.QueueSize,
		FlushInterval: cfg.Clicks.FlushInterval,
		Workers:       cfg.Clicks.Workers,
	}, logger)
	return d.recorder, nil
}

// close останавливает компоненты в обратном порядке: сначала сбрасываются
// переходы и освобождаются диапазоны, затем закрываются соединения
func (d *dependencies) close(ctx context.Context, logger *zap.Logger) {
	var errs []error

	if d.recorder != nil {
		errs = append(errs, d.recorder.Close(ctx))
	}
	if d.allocator != nil {
		errs = append(errs, d.allocator.Close(ctx))
	}
	if d.nats != nil {
		errs = append(errs, d.nats.Drain())
	}
	if d.redis != nil {
		errs = append(errs, d.redis.Close())
	}
	if d.sqlite != nil {
		errs = append(errs, d.sqlite.Close())
	}
	if d.db != nil {
		d.db.Close()
	}

	if err := errors.Join(errs...); err != nil {
		logger.Error("Failed to close dependencies", zap.Error(err))
	}
}

func defaultInstanceID() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "shortlink"
	}
	return host + "-" + uuid.NewString()[:8]
}
