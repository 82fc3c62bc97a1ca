package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port         string `env:"PORT,          default=8080"`
	Env          string `env:"ENV,           default=development"`
	JWTSecret    string `env:"JWT_SECRET,    default=dev-only-secret"`
	LogLevel     string `env:"LOG_LEVEL,     default=info"`
	EventWorkers int    `env:"EVENT_WORKERS, default=4"`

	Store StoreConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// StoreConfig selects the return store backend. The prototype default is
// the seeded in-memory store; mongo switches on the durable twin and the
// Redis-backed event dedup.
type StoreConfig struct {
	Driver string `env:"STORE_DRIVER, default=memory"`
	Seed   bool   `env:"SEED,         default=true"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=returns_platform"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Store.Driver != "memory" && cfg.Store.Driver != "mongo" {
		return nil, fmt.Errorf("config: unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
	return &cfg, nil
}
