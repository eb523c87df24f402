package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=3000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// APIBaseURL is the root of the external commerce backend. ImageBaseURL
	// is prepended to bare product image names. Both are opaque strings.
	APIBaseURL   string `env:"API_BASE_URL,   default=http://localhost:8080/api"`
	ImageBaseURL string `env:"IMAGE_BASE_URL, default=http://localhost:8080/uploads/images"`

	BackendTimeout  time.Duration `env:"BACKEND_TIMEOUT,   default=15s"`
	CredentialTTL   time.Duration `env:"CREDENTIAL_TTL,    default=168h"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL, default=2m"`

	// SessionIdleTTL bounds how long an untouched in-memory session (and its
	// cart) is kept before the registry evicts it.
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL, default=1h"`

	Redis RedisConfig
	Mongo MongoConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
