package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults for every configuration key.
const (
	DefaultAPIBaseURL       = "http://localhost:8080/api"
	DefaultHTTPTimeout      = 10 * time.Second
	DefaultCacheTTL         = 5 * time.Minute
	DefaultCacheSize        = 512
	DefaultRetryMaxAttempts = 3
	DefaultRetryBaseDelay   = 700 * time.Millisecond
	DefaultPivotCurrency    = "USD"
	DefaultStateDir         = ".finance_client"
	DefaultListenAddr       = "127.0.0.1:3001"
	DefaultRateLimit        = "60-M"
)

// Config holds application configuration.
type Config struct {
	APIBaseURL       string
	HTTPTimeout      time.Duration
	CacheTTL         time.Duration
	CacheSize        int
	RetryMaxAttempts int
	RetryBaseDelay   time.Duration
	PivotCurrency    string
	StateDir         string
	ListenAddr       string
	IsProduction     bool
	RateLimit        string   // ulule/limiter format, e.g. "60-M"
	AllowedOrigins   []string // CORS origins for the local view bridge
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return loadFrom(viper.New()), nil
}

func loadFrom(v *viper.Viper) *Config {
	v.SetDefault("API_BASE_URL", DefaultAPIBaseURL)
	v.SetDefault("HTTP_TIMEOUT", DefaultHTTPTimeout.String())
	v.SetDefault("CACHE_TTL", DefaultCacheTTL.String())
	v.SetDefault("CACHE_SIZE", DefaultCacheSize)
	v.SetDefault("RETRY_MAX_ATTEMPTS", DefaultRetryMaxAttempts)
	v.SetDefault("RETRY_BASE_DELAY", DefaultRetryBaseDelay.String())
	v.SetDefault("PIVOT_CURRENCY", DefaultPivotCurrency)
	v.SetDefault("STATE_DIR", DefaultStateDir)
	v.SetDefault("LISTEN_ADDR", DefaultListenAddr)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("RATE_LIMIT", DefaultRateLimit)
	v.SetDefault("ALLOWED_ORIGINS", "")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.APIBaseURL = strings.TrimRight(v.GetString("API_BASE_URL"), "/")
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
		log.Printf("Warning: API_BASE_URL is empty. Defaulting to %s\n", cfg.APIBaseURL)
	}

	cfg.HTTPTimeout = durationOr(v, "HTTP_TIMEOUT", DefaultHTTPTimeout)
	cfg.CacheTTL = durationOr(v, "CACHE_TTL", DefaultCacheTTL)
	cfg.RetryBaseDelay = durationOr(v, "RETRY_BASE_DELAY", DefaultRetryBaseDelay)

	cfg.CacheSize = v.GetInt("CACHE_SIZE")
	if cfg.CacheSize <= 0 {
		log.Printf("Warning: Invalid value for CACHE_SIZE (%d). Defaulting to %d.\n", cfg.CacheSize, DefaultCacheSize)
		cfg.CacheSize = DefaultCacheSize
	}

	cfg.RetryMaxAttempts = v.GetInt("RETRY_MAX_ATTEMPTS")
	if cfg.RetryMaxAttempts < 1 {
		log.Printf("Warning: Invalid value for RETRY_MAX_ATTEMPTS (%d). Defaulting to %d.\n", cfg.RetryMaxAttempts, DefaultRetryMaxAttempts)
		cfg.RetryMaxAttempts = DefaultRetryMaxAttempts
	}

	cfg.PivotCurrency = strings.ToUpper(strings.TrimSpace(v.GetString("PIVOT_CURRENCY")))
	if cfg.PivotCurrency == "" {
		cfg.PivotCurrency = DefaultPivotCurrency
	}

	cfg.StateDir = v.GetString("STATE_DIR")
	cfg.ListenAddr = v.GetString("LISTEN_ADDR")
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.AllowedOrigins = splitList(v.GetString("ALLOWED_ORIGINS"))

	return cfg
}

// durationOr parses key as a duration, warning and falling back on bad input.
func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
