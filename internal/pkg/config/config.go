package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Session SessionConfig
	Redis   RedisConfig
}

type BackendConfig struct {
	// BaseURL is the REST API root, including the /api path suffix.
	BaseURL string `env:"BACKEND_BASE_URL, default=http://localhost:5002/api"`
	// HubPath is appended to the base URL with its path suffix stripped to
	// reach the realtime payment hub.
	HubPath        string `env:"PAYMENT_HUB_PATH, default=/hubs/payments"`
	RequestTimeout int    `env:"BACKEND_TIMEOUT_SECONDS, default=15"`
}

type SessionConfig struct {
	// CookieMaxAge is the lifetime of the three session cookies, in seconds.
	CookieMaxAge int `env:"SESSION_COOKIE_MAX_AGE, default=604800"`
	// ResendCooldown is the minimum gap between code resends, in seconds.
	ResendCooldown int `env:"RESEND_COOLDOWN_SECONDS, default=300"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
