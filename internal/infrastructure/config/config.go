package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string `env:"PORT,        default=8000"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	CORSOrigin string `env:"CORS_ORIGIN, default=http://localhost:3000"`

	Mongo MongoConfig
	Token TokenConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=project_management"`
}

type TokenConfig struct {
	AccessSecret  string        `env:"ACCESS_TOKEN_SECRET"`
	RefreshSecret string        `env:"REFRESH_TOKEN_SECRET"`
	AccessTTL     time.Duration `env:"ACCESS_TOKEN_TTL,  default=15m"`
	RefreshTTL    time.Duration `env:"REFRESH_TOKEN_TTL, default=168h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
