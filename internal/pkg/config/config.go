package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the root of the remote marketplace API, e.g.
	// https://workling.example.com. The portal never serves this API itself.
	APIBaseURL  string        `env:"API_BASE_URL, default=https://workling-project-1.onrender.com"`
	Port        string        `env:"PORT,         default=8080"`
	Env         string        `env:"ENV,          default=development"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT, default=15s"`

	Session SessionConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	// CookieName is the fixed key the browser session ID lives under.
	CookieName string        `env:"SESSION_COOKIE, default=workling_session"`
	TTL        time.Duration `env:"SESSION_TTL,    default=720h"`
	// TokenPath overrides the CLI token file location. Empty means
	// <user config dir>/workling/token.
	TokenPath string `env:"TOKEN_PATH"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// In development a .env file is honoured when present.
func Load() *Config {
	if os.Getenv("ENV") == "" || os.Getenv("ENV") == "development" {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
