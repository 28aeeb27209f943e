// Package config собирает настройки сервиса из значений по умолчанию,
// YAML-файла, флагов командной строки и переменных окружения (в порядке
// возрастания приоритета).
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/avc-dev/shortlink/internal/config/db"
)

// Бэкенды глобального счётчика
const (
	CounterAuto     = "auto"
	CounterPostgres = "postgres"
	CounterRedis    = "redis"
	CounterSQLite   = "sqlite"
	CounterMemory   = "memory"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config настройки приложения
type Config struct {
	ServerAddress NetworkAddress `env:"SERVER_ADDRESS" yaml:"server_address"`
	BaseURL       URLPrefix      `env:"BASE_URL" yaml:"base_url"`
	GRPCAddress   string         `env:"GRPC_ADDRESS" yaml:"grpc_address"`

	Database       db.Config `yaml:"database"`
	SQLitePath     string    `env:"SQLITE_PATH" yaml:"sqlite_path"`
	RedisAddr      string    `env:"REDIS_ADDR" yaml:"redis_addr"`
	CounterBackend string    `env:"COUNTER_BACKEND" yaml:"counter_backend"`

	NATS   NATSConfig  `yaml:"nats"`
	Auth   AuthConfig  `yaml:"auth"`
	Range  RangeConfig `yaml:"range"`
	Cache  CacheConfig `yaml:"cache"`
	Clicks ClickConfig `yaml:"clicks"`
	Retry  RetryConfig `yaml:"retry"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout"`
	LogLevel        string        `env:"LOG_LEVEL" yaml:"log_level"`
}

type NATSConfig struct {
	URL     string `env:"NATS_URL" yaml:"url"`
	Subject string `env:"NATS_SUBJECT" yaml:"subject"`
	Queue   string `env:"NATS_QUEUE" yaml:"queue"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET" yaml:"jwt_secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" yaml:"token_ttl"`
}

// RangeConfig параметры выделения диапазонов кодов
type RangeConfig struct {
	Size        int64         `env:"RANGE_SIZE" yaml:"size"`
	Threshold   int64         `env:"RANGE_THRESHOLD" yaml:"threshold"`
	AsyncRefill bool          `env:"RANGE_ASYNC_REFILL" yaml:"async_refill"`
	Timeout     time.Duration `env:"RANGE_TIMEOUT" yaml:"timeout"`
	InstanceID  string        `env:"INSTANCE_ID" yaml:"instance_id"`
}

type CacheConfig struct {
	TTL             time.Duration `env:"CACHE_TTL" yaml:"ttl"`
	CleanupInterval time.Duration `env:"CACHE_CLEANUP_INTERVAL" yaml:"cleanup_interval"`
}

// ClickConfig параметры агрегации переходов
type ClickConfig struct {
	QueueSize     int           `env:"CLICK_QUEUE_SIZE" yaml:"queue_size"`
	FlushInterval time.Duration `env:"CLICK_FLUSH_INTERVAL" yaml:"flush_interval"`
	Workers       int           `env:"CLICK_WORKERS" yaml:"workers"`
}

type RetryConfig struct {
	MaxCodeAttempts int `env:"MAX_CODE_ATTEMPTS" yaml:"max_code_attempts"`
}

// NewDefaultConfig возвращает конфигурацию по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:  NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:        URLPrefix("http://localhost:8080/"),
		Database:       *db.NewConfig(""),
		CounterBackend: CounterAuto,
		NATS: NATSConfig{
			Subject: "shortlink.clicks",
			Queue:   "shortlink-clicks",
		},
		Auth: AuthConfig{
			JWTSecret: "shortlink-dev-secret",
			TokenTTL:  24 * time.Hour,
		},
		Range: RangeConfig{
			Size:      1000,
			Threshold: 100,
			Timeout:   3 * time.Second,
		},
		Cache: CacheConfig{
			TTL:             time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		Clicks: ClickConfig{
			QueueSize:     1024,
			FlushInterval: time.Second,
			Workers:       4,
		},
		Retry:           RetryConfig{MaxCodeAttempts: 5},
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "info",
	}
}

// Load читает конфигурацию процесса
func Load() (*Config, error) {
	// .env не перекрывает уже заданные переменные окружения
	_ = godotenv.Load()

	return LoadFrom(os.Args[1:])
}

// LoadFrom собирает конфигурацию из аргументов командной строки и окружения
func LoadFrom(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	// Первый проход нужен только для пути к YAML: флаги применяются
	// повторно после файла, чтобы иметь над ним приоритет
	var path string
	if err := newFlagSet(cfg, &path).Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}
	if v, ok := os.LookupEnv("CONFIG"); ok {
		path = v
	}

	cfg = NewDefaultConfig()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := newFlagSet(cfg, &path).Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newFlagSet(cfg *Config, path *string) *flag.FlagSet {
	fs := flag.NewFlagSet("shortlink", flag.ContinueOnError)

	fs.StringVar(path, "c", *path, "path to YAML config file")
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.BaseURL, "b", "base URL for short links")
	fs.StringVar(&cfg.GRPCAddress, "g", cfg.GRPCAddress, "address of gRPC health server")
	fs.StringVar(&cfg.Database.DSN, "d", cfg.Database.DSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.SQLitePath, "s", cfg.SQLitePath, "path to SQLite database")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.NATS.URL, "n", cfg.NATS.URL, "NATS URL for click events")

	return fs
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	var errs []error

	if c.Range.Size <= 0 {
		errs = append(errs, fmt.Errorf("range size must be positive, got %d", c.Range.Size))
	}
	if c.Range.Threshold < 0 || c.Range.Threshold > c.Range.Size {
		errs = append(errs, fmt.Errorf("range threshold must be within [0, %d], got %d", c.Range.Size, c.Range.Threshold))
	}
	if c.Retry.MaxCodeAttempts < 1 {
		errs = append(errs, fmt.Errorf("max code attempts must be at least 1, got %d", c.Retry.MaxCodeAttempts))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("jwt secret is required"))
	}
	if c.Clicks.QueueSize <= 0 {
		errs = append(errs, fmt.Errorf("click queue size must be positive, got %d", c.Clicks.QueueSize))
	}

	switch c.CounterBackend {
	case CounterAuto:
	case CounterMemory:
		// Счётчик в памяти сбрасывается при рестарте и повторно выдаст занятые коды
		if c.Database.DSN != "" || c.SQLitePath != "" {
			errs = append(errs, errors.New("memory counter cannot be used with a persistent registry (DATABASE_DSN or SQLITE_PATH)"))
		}
	case CounterPostgres:
		if c.Database.DSN == "" {
			errs = append(errs, errors.New("postgres counter requires DATABASE_DSN"))
		}
	case CounterRedis:
		if c.RedisAddr == "" {
			errs = append(errs, errors.New("redis counter requires REDIS_ADDR"))
		}
	case CounterSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("sqlite counter requires SQLITE_PATH"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown counter backend %q", c.CounterBackend))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ResolveCounterBackend раскрывает значение auto в конкретный бэкенд
func (c *Config) ResolveCounterBackend() string {
	if c.CounterBackend != CounterAuto && c.CounterBackend != "" {
		return c.CounterBackend
	}

	switch {
	case c.Database.DSN != "":
		return CounterPostgres
	case c.SQLitePath != "":
		return CounterSQLite
	default:
		return CounterMemory
	}
}
