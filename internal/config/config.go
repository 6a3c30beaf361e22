package config

import (
	"flag"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"fpl-recommend/internal/fetch"
)

const (
	EnvBaseURL   = "FPL_API_BASE_URL"
	EnvTimeout   = "FPL_HTTP_TIMEOUT"
	EnvRetries   = "FPL_HTTP_RETRIES"
	EnvRetryWait = "FPL_HTTP_RETRY_WAIT"
	EnvLogLevel  = "FPL_LOG_LEVEL"

	defaultLogLevel = "info"
)

// Config holds the settings shared by every command that talks to the FPL API.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
	LogLevel  string
}

// Load reads an optional .env file, then the environment, over defaults.
// Variables already set in the environment win over .env entries.
func Load(envFiles ...string) Config {
	_ = godotenv.Load(envFiles...)
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		BaseURL:   envOrDefault(EnvBaseURL, fetch.DefaultBaseURL),
		Timeout:   durationEnvOrDefault(EnvTimeout, fetch.DefaultTimeout),
		Retries:   nonNegativeIntEnvOrDefault(EnvRetries, fetch.DefaultRetries),
		RetryWait: durationEnvOrDefault(EnvRetryWait, fetch.DefaultRetryWait),
		LogLevel:  envOrDefault(EnvLogLevel, defaultLogLevel),
	}
}

// RegisterFlags binds flags to c using its current values as defaults, so
// flags override the environment.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.BaseURL, "base-url", c.BaseURL, "FPL API base URL")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "per-request HTTP timeout")
	fs.IntVar(&c.Retries, "retries", c.Retries, "retries after a failed request (0 = fail on first error)")
	fs.DurationVar(&c.RetryWait, "retry-wait", c.RetryWait, "initial wait before a retry")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug|info|warn|error")
}

func (c Config) NewClient(log *logrus.Entry) *fetch.Client {
	client := fetch.NewClient()
	client.HTTP = &http.Client{Timeout: c.Timeout}
	client.BaseURL = c.BaseURL
	client.Retries = c.Retries
	client.RetryWait = c.RetryWait
	if log != nil {
		client.Log = log
	}
	return client
}
