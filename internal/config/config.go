package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/futig/sitegen-backend/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR,notEmpty"`

	// Database configuration (analytics event/feedback store)
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// External service configurations
	TextGenCfg     TextGenConnectorConfig     `envPrefix:"TEXTGEN_"`
	ImageSearchCfg ImageSearchConnectorConfig `envPrefix:"IMAGE_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// Rate limiting configuration
	RateLimitCfg RateLimitConfig `envPrefix:"RATE_LIMIT_"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS,notEmpty"`

	// Environment (set from flag, not from env var)
	Environment string
}

// TextGenConnectorConfig configures the text-generation service client.
type TextGenConnectorConfig struct {
	HTTPClientConfig
	CompletionsEndpoint string               `env:"COMPLETIONS_ENDPOINT" envDefault:"/chat/completions"`
	ContentModel        string               `env:"CONTENT_MODEL,notEmpty"`
	StyleModel          string               `env:"STYLE_MODEL,notEmpty"`
	MaxTokens           int                  `env:"MAX_TOKENS" envDefault:"3500"`
	Retry               pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// ImageSearchConnectorConfig configures the image-search service client.
// An empty token disables image resolution entirely (degraded bundles keep
// their placeholder directives).
type ImageSearchConnectorConfig struct {
	HTTPClientConfig
	SearchEndpoint string `env:"SEARCH_ENDPOINT" envDefault:"/search/photos"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT,notEmpty"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT,notEmpty"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE,notEmpty"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT,notEmpty"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT,notEmpty"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL,notEmpty"`
}

// RateLimitConfig holds per-client request limits for the HTTP API.
type RateLimitConfig struct {
	RequestsPerMinute int `env:"REQUESTS_PER_MINUTE" envDefault:"10"`
	Burst             int `env:"BURST" envDefault:"5"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.RateLimitCfg.RequestsPerMinute < 1 || cfg.RateLimitCfg.RequestsPerMinute > 600 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS_PER_MINUTE must be between 1 and 600, got %d", cfg.RateLimitCfg.RequestsPerMinute)
	}

	if cfg.RateLimitCfg.Burst < 1 || cfg.RateLimitCfg.Burst > 100 {
		return fmt.Errorf("RATE_LIMIT_BURST must be between 1 and 100, got %d", cfg.RateLimitCfg.Burst)
	}

	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		return fmt.Errorf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns)
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns)
	}

	if cfg.TextGenCfg.MaxTokens < 256 {
		return fmt.Errorf("TEXTGEN_MAX_TOKENS must be at least 256, got %d", cfg.TextGenCfg.MaxTokens)
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
