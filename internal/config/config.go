package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Backend Backend `validate:"required"`

	Session Session `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

// Backend configures the upstream API the gateway fronts.
type Backend struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`

	// Read retry policy for idempotent calls.
	RetryAttempts int           `validate:"gte=1"`
	RetryDelay    time.Duration `validate:"gte=0"`
	RetryMaxDelay time.Duration `validate:"gte=0"`
}

type Session struct {
	TTL     time.Duration `validate:"gt=0"`
	Storage string        `validate:"required,oneof=memory redis"`
	Redis   Redis
}

type Redis struct {
	Addr     string `validate:"omitempty,hostname_port"`
	Username string
	Password string
	DB       int `validate:"gte=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "3000"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Backend: Backend{
			BaseURL: env("BACKEND_BASE_URL", "http://localhost:5000"),
			Timeout: envDuration("BACKEND_TIMEOUT", 30*time.Second),

			RetryAttempts: envInt("BACKEND_RETRY_ATTEMPTS", 3),
			RetryDelay:    envDuration("BACKEND_RETRY_DELAY", time.Second),
			RetryMaxDelay: envDuration("BACKEND_RETRY_MAX_DELAY", 5*time.Second),
		},

		Session: Session{
			TTL:     envDuration("SESSION_TTL", 24*time.Hour),
			Storage: env("SESSION_STORAGE", "memory"),
			Redis: Redis{
				Addr:     env("REDIS_ADDR", "localhost:6379"),
				Username: env("REDIS_USERNAME", ""),
				Password: env("REDIS_PASSWORD", ""),
				DB:       envInt("REDIS_DB", 0),
			},
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
