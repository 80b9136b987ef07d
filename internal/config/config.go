// Package config provides application configuration.
package config

import "time"

// Default configuration values.
const (
	DefaultLogLevel      = "INFO"
	DefaultWorkerCount   = 1
	DefaultHTTPTimeout   = 30 * time.Second
	DefaultMaxRetries    = 3
	DefaultInitialDelay  = time.Second
	DefaultBackoffFactor = 2.0
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig is the resolved application configuration: defaults, overridden
// by the .env file, overridden by environment variables. Command line flags
// are applied on top by the CLI.
type AppConfig struct {
	serverURL     string
	username      string
	password      string
	logLevel      string
	logFormat     LogFormat
	workerCount   int
	httpTimeout   time.Duration
	maxRetries    int
	initialDelay  time.Duration
	backoffFactor float64
}

// NewAppConfig creates an AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		logLevel:      DefaultLogLevel,
		logFormat:     LogFormatPretty,
		workerCount:   DefaultWorkerCount,
		httpTimeout:   DefaultHTTPTimeout,
		maxRetries:    DefaultMaxRetries,
		initialDelay:  DefaultInitialDelay,
		backoffFactor: DefaultBackoffFactor,
	}
}

// ServerURL returns the Homebox server URL.
func (c AppConfig) ServerURL() string { return c.serverURL }

// Username returns the Homebox username.
func (c AppConfig) Username() string { return c.username }

// Password returns the Homebox password. Empty means prompt interactively.
func (c AppConfig) Password() string { return c.password }

// LogLevel returns the log verbosity level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// WorkerCount returns the number of concurrent label fetches.
func (c AppConfig) WorkerCount() int { return c.workerCount }

// HTTPTimeout returns the Homebox request timeout.
func (c AppConfig) HTTPTimeout() time.Duration { return c.httpTimeout }

// MaxRetries returns the retry budget for retryable API failures.
func (c AppConfig) MaxRetries() int { return c.maxRetries }

// InitialDelay returns the initial retry delay.
func (c AppConfig) InitialDelay() time.Duration { return c.initialDelay }

// BackoffFactor returns the retry backoff multiplier.
func (c AppConfig) BackoffFactor() float64 { return c.backoffFactor }

// Option configures an AppConfig.
type Option func(*AppConfig)

// WithServerURL sets the Homebox server URL.
func WithServerURL(u string) Option {
	return func(c *AppConfig) { c.serverURL = u }
}

// WithUsername sets the Homebox username.
func WithUsername(u string) Option {
	return func(c *AppConfig) { c.username = u }
}

// WithPassword sets the Homebox password.
func WithPassword(p string) Option {
	return func(c *AppConfig) { c.password = p }
}

// WithLogLevel sets the log verbosity level.
func WithLogLevel(level string) Option {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log output format.
func WithLogFormat(format LogFormat) Option {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithWorkerCount sets the number of concurrent label fetches.
func WithWorkerCount(n int) Option {
	return func(c *AppConfig) { c.workerCount = n }
}

// WithHTTPTimeout sets the Homebox request timeout.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *AppConfig) { c.httpTimeout = d }
}

// WithMaxRetries sets the retry budget.
func WithMaxRetries(n int) Option {
	return func(c *AppConfig) { c.maxRetries = n }
}

// WithInitialDelay sets the initial retry delay.
func WithInitialDelay(d time.Duration) Option {
	return func(c *AppConfig) { c.initialDelay = d }
}

// WithBackoffFactor sets the retry backoff multiplier.
func WithBackoffFactor(f float64) Option {
	return func(c *AppConfig) { c.backoffFactor = f }
}

// Apply returns a copy of the config with the given options applied.
func (c AppConfig) Apply(opts ...Option) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func parseLogFormat(s string) LogFormat {
	if s == string(LogFormatJSON) {
		return LogFormatJSON
	}
	return LogFormatPretty
}
