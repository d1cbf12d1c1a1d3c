package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// EventsSecret authenticates lifecycle event delivery. Events are a
	// trusted source; the shared secret is the verification step.
	EventsSecret string `env:"EVENTS_WEBHOOK_SECRET"`

	// EventWorkers is the number of sharded lifecycle-event workers.
	EventWorkers int `env:"EVENT_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
	Cache CacheConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=user_directory"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type CacheConfig struct {
	// Version names the active page cache generation; bumping it makes
	// Activate evict everything cached under previous versions.
	Version string `env:"CACHE_VERSION, default=v1"`
	// OriginURL is the base URL page assets are fetched from on a miss.
	OriginURL string `env:"CACHE_ORIGIN_URL, default=http://localhost:9000"`
	// Precache lists the entries installed at startup.
	Precache []string `env:"CACHE_PRECACHE, default=index.html,offline.html"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
