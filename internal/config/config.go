package config

import (
	"auction-client/internal/session"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Session storage backends
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL, default=warn"`
	Port     string `env:"PORT,      default=8080"`

	Gateway GatewayConfig
	Session SessionConfig
	Redis   RedisConfig
}

type GatewayConfig struct {
	URL            string        `env:"AUCTION_GATEWAY_URL,     default=http://localhost:8080/api"`
	CollectionPath string        `env:"AUCTION_COLLECTION_PATH, default=auctions"`
	TimeZone       string        `env:"AUCTION_GATEWAY_TZ,      default=UTC"`
	Timeout        time.Duration `env:"AUCTION_HTTP_TIMEOUT,    default=15s"`
}

type SessionConfig struct {
	Backend  string                  `env:"AUCTION_SESSION_BACKEND,  default=file"`
	File     string                  `env:"AUCTION_SESSION_FILE"`
	Strategy session.RestoreStrategy `env:"AUCTION_RESTORE_STRATEGY, default=revalidate"`
}

type RedisConfig struct {
	Addr   string `env:"REDIS_ADDR,   default=localhost:6379"`
	DB     int    `env:"REDIS_DB,     default=0"`
	Prefix string `env:"REDIS_PREFIX, default=auction-client:"`
}

// Location is the zone the gateway writes timestamps in
func (g GatewayConfig) Location() *time.Location {
	loc, err := time.LoadLocation(g.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads an optional .env file and then the environment
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()
	return FromLookuper(ctx, envconfig.OsLookuper())
}

// FromLookuper reads configuration from l
func FromLookuper(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	if _, err := time.LoadLocation(c.Gateway.TimeZone); err != nil {
		return fmt.Errorf("AUCTION_GATEWAY_TZ: %w", err)
	}

	if c.Gateway.Timeout <= 0 {
		return fmt.Errorf("AUCTION_HTTP_TIMEOUT must be positive, got %s", c.Gateway.Timeout)
	}

	c.Session.Backend = strings.ToLower(strings.TrimSpace(c.Session.Backend))
	switch c.Session.Backend {
	case BackendFile:
		if c.Session.File == "" {
			c.Session.File = defaultSessionFile()
		}
	case BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("AUCTION_SESSION_BACKEND must be file, redis or memory, got %q", c.Session.Backend)
	}
	return nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".auction-client", "session.json")
}
