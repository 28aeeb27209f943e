package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(nil)

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.ServerAddress.String())
	assert.Equal(t, URLPrefix("http://localhost:8080/"), cfg.BaseURL)
	assert.Equal(t, int64(1000), cfg.Range.Size)
	assert.Equal(t, int64(100), cfg.Range.Threshold)
	assert.Equal(t, 3*time.Second, cfg.Range.Timeout)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 5, cfg.Retry.MaxCodeAttempts)
	assert.Equal(t, CounterMemory, cfg.ResolveCounterBackend())
}

func TestLoadFrom_Precedence(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlData := `
server_address: "0.0.0.0:9000"
base_url: "https://yaml.example"
sqlite_path: "/tmp/yaml.db"
range:
  size: 500
  threshold: 50
  timeout: 2s
cache:
  ttl: 30m
`
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0o600))
	t.Setenv("RANGE_THRESHOLD", "10")
	t.Setenv("BASE_URL", "https://env.example")

	// Act
	cfg, err := LoadFrom([]string{"-c", path, "-a", "127.0.0.1:7000", "-b", "https://flag.example"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.ServerAddress.String(), "flag overrides yaml")
	assert.Equal(t, URLPrefix("https://env.example/"), cfg.BaseURL, "env overrides flag")
	assert.Equal(t, int64(500), cfg.Range.Size, "yaml overrides default")
	assert.Equal(t, int64(10), cfg.Range.Threshold, "env overrides yaml")
	assert.Equal(t, 2*time.Second, cfg.Range.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, CounterSQLite, cfg.ResolveCounterBackend())
}

func TestLoadFrom_Env(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://localhost/shortlink")
	t.Setenv("RANGE_ASYNC_REFILL", "true")
	t.Setenv("CLICK_FLUSH_INTERVAL", "250ms")
	t.Setenv("SERVER_ADDRESS", "localhost:9999")

	cfg, err := LoadFrom(nil)

	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/shortlink", cfg.Database.DSN)
	assert.True(t, cfg.Range.AsyncRefill)
	assert.Equal(t, 250*time.Millisecond, cfg.Clicks.FlushInterval)
	assert.Equal(t, 9999, cfg.ServerAddress.Port)
	assert.Equal(t, CounterPostgres, cfg.ResolveCounterBackend())
}

func TestLoadFrom_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "Unknown flag", args: []string{"-unknown"}},
		{name: "Bad address", args: []string{"-a", "no-port"}},
		{name: "Bad base url", args: []string{"-b", "ftp://example.com"}},
		{name: "Missing config file", args: []string{"-c", "/nonexistent/config.yaml"}},
		{name: "Threshold above size", env: map[string]string{"RANGE_SIZE": "10", "RANGE_THRESHOLD": "11"}},
		{name: "Bad duration", env: map[string]string{"CACHE_TTL": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadFrom(tt.args)

			assert.Error(t, err)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{name: "Defaults", modify: func(*Config) {}},
		{name: "Zero threshold", modify: func(c *Config) { c.Range.Threshold = 0 }},
		{name: "Threshold equals size", modify: func(c *Config) { c.Range.Threshold = c.Range.Size }},
		{name: "Zero range size", modify: func(c *Config) { c.Range.Size = 0 }, wantErr: true},
		{name: "Negative threshold", modify: func(c *Config) { c.Range.Threshold = -1 }, wantErr: true},
		{name: "No attempts", modify: func(c *Config) { c.Retry.MaxCodeAttempts = 0 }, wantErr: true},
		{name: "Empty jwt secret", modify: func(c *Config) { c.Auth.JWTSecret = "" }, wantErr: true},
		{name: "Postgres without dsn", modify: func(c *Config) { c.CounterBackend = CounterPostgres }, wantErr: true},
		{name: "Redis without addr", modify: func(c *Config) { c.CounterBackend = CounterRedis }, wantErr: true},
		{name: "Redis with addr", modify: func(c *Config) {
			c.CounterBackend = CounterRedis
			c.RedisAddr = "localhost:6379"
		}},
		{name: "Memory counter alone", modify: func(c *Config) { c.CounterBackend = CounterMemory }},
		{name: "Memory counter with dsn", modify: func(c *Config) {
			c.CounterBackend = CounterMemory
			c.Database.DSN = "postgres://localhost/shortlink"
		}, wantErr: true},
		{name: "Memory counter with sqlite", modify: func(c *Config) {
			c.CounterBackend = CounterMemory
			c.SQLitePath = "shortlink.db"
		}, wantErr: true},
		{name: "Unknown backend", modify: func(c *Config) { c.CounterBackend = "etcd" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			cfg := NewDefaultConfig()
			tt.modify(cfg)

			// Act
			err := cfg.Validate()

			// Assert
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNetworkAddress_Set(t *testing.T) {
	tests := []struct {
		value   string
		want    NetworkAddress
		wantErr bool
	}{
		{value: "localhost:8080", want: NetworkAddress{Host: "localhost", Port: 8080}},
		{value: ":9090", want: NetworkAddress{Port: 9090}},
		{value: "[::1]:80", want: NetworkAddress{Host: "::1", Port: 80}},
		{value: "localhost", wantErr: true},
		{value: "localhost:http", wantErr: true},
		{value: "localhost:70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var a NetworkAddress

			err := a.Set(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestURLPrefix_Set(t *testing.T) {
	tests := []struct {
		value   string
		want    URLPrefix
		wantErr bool
	}{
		{value: "http://localhost:8080", want: "http://localhost:8080/"},
		{value: "https://sho.rt/", want: "https://sho.rt/"},
		{value: "httpx://bad", wantErr: true},
		{value: "https://sho.rt/s", want: "https://sho.rt/s/"},
		{value: "sho.rt", wantErr: true},
		{value: "http://", wantErr: true},
		{value: "https://sho.rt/?q=1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var p URLPrefix

			err := p.Set(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
			assert.Equal(t, string(tt.want)+"g8", p.Join("g8"))
		})
	}
}
