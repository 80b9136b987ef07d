package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every environment variable name, so SERVER_URL
// is read from LABELGEN_SERVER_URL.
const envPrefix = "LABELGEN"

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// ServerURL is the Homebox server URL.
	// Env: LABELGEN_SERVER_URL
	ServerURL string `envconfig:"SERVER_URL"`

	// Username is the Homebox username.
	// Env: LABELGEN_USERNAME
	Username string `envconfig:"USERNAME"`

	// Password is the Homebox password. Prefer leaving this unset and
	// entering it at the interactive prompt.
	// Env: LABELGEN_PASSWORD
	Password string `envconfig:"PASSWORD"`

	// LogLevel is the log verbosity level.
	// Env: LABELGEN_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL"`

	// LogFormat is the log output format (pretty or json).
	// Env: LABELGEN_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT"`

	// WorkerCount is the number of concurrent label fetches.
	// Env: LABELGEN_WORKER_COUNT (default: 1)
	WorkerCount int `envconfig:"WORKER_COUNT"`

	// HTTPTimeout is the Homebox request timeout in seconds.
	// Env: LABELGEN_HTTP_TIMEOUT (default: 30)
	HTTPTimeout float64 `envconfig:"HTTP_TIMEOUT"`

	// MaxRetries is the retry budget for retryable API failures.
	// Env: LABELGEN_MAX_RETRIES (default: 3)
	MaxRetries int `envconfig:"MAX_RETRIES"`

	// InitialDelay is the initial retry delay in seconds.
	// Env: LABELGEN_INITIAL_DELAY (default: 1.0)
	InitialDelay float64 `envconfig:"INITIAL_DELAY"`

	// BackoffFactor is the retry backoff multiplier.
	// Env: LABELGEN_BACKOFF_FACTOR (default: 2.0)
	BackoffFactor float64 `envconfig:"BACKOFF_FACTOR"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig, applying only the values the
// environment actually set.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.ServerURL != "" {
		cfg = cfg.Apply(WithServerURL(e.ServerURL))
	}
	if e.Username != "" {
		cfg = cfg.Apply(WithUsername(e.Username))
	}
	if e.Password != "" {
		cfg = cfg.Apply(WithPassword(e.Password))
	}
	if e.LogLevel != "" {
		cfg = cfg.Apply(WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = cfg.Apply(WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if e.WorkerCount > 0 {
		cfg = cfg.Apply(WithWorkerCount(e.WorkerCount))
	}
	if e.HTTPTimeout > 0 {
		cfg = cfg.Apply(WithHTTPTimeout(secondsToDuration(e.HTTPTimeout)))
	}
	if e.MaxRetries > 0 {
		cfg = cfg.Apply(WithMaxRetries(e.MaxRetries))
	}
	if e.InitialDelay > 0 {
		cfg = cfg.Apply(WithInitialDelay(secondsToDuration(e.InitialDelay)))
	}
	if e.BackoffFactor > 0 {
		cfg = cfg.Apply(WithBackoffFactor(e.BackoffFactor))
	}

	return cfg
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
