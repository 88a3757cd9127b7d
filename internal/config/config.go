package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	ListenAddr  string
	DatabaseURL string
	RedisAddr   string
	LogLevel    string

	// SiteBaseURL prefixes content item paths to form snapshot URLs.
	SiteBaseURL string

	CrawlWorkers         int
	CrawlPollInterval    time.Duration
	CrawlDefaultMaxPages int

	AnthropicAPIKey string
	AnthropicModel  string
	// DefaultConfidence is assigned when the generator does not score its output.
	DefaultConfidence float64
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.Atoi(v); err == nil {
			return out
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.ParseFloat(v, 64); err == nil {
			return out
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if out, err := time.ParseDuration(v); err == nil {
			return out
		}
	}
	return def
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:                  getenv("APP_ENV", "development"),
		ListenAddr:           getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		LogLevel:             getenv("LOG_LEVEL", "info"),
		SiteBaseURL:          getenv("SITE_BASE_URL", "http://localhost:3000"),
		CrawlWorkers:         getenvInt("CRAWL_WORKERS", 1),
		CrawlPollInterval:    getenvDuration("CRAWL_POLL_INTERVAL", 500*time.Millisecond),
		CrawlDefaultMaxPages: getenvInt("CRAWL_DEFAULT_MAX_PAGES", 100),
		AnthropicAPIKey:      os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:       getenv("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
		DefaultConfidence:    getenvFloat("SUGGESTION_DEFAULT_CONFIDENCE", 0.75),
	}
	return cfg, cfg.Validate()
}

// Validate rejects values the services cannot run with.
func (c Config) Validate() error {
	if c.CrawlDefaultMaxPages < 1 {
		return fmt.Errorf("CRAWL_DEFAULT_MAX_PAGES must be at least 1, got %d", c.CrawlDefaultMaxPages)
	}
	if c.CrawlPollInterval <= 0 {
		return fmt.Errorf("CRAWL_POLL_INTERVAL must be positive, got %s", c.CrawlPollInterval)
	}
	if c.DefaultConfidence < 0 || c.DefaultConfidence > 1 {
		return fmt.Errorf("SUGGESTION_DEFAULT_CONFIDENCE must be within [0,1], got %v", c.DefaultConfidence)
	}
	if c.CrawlWorkers < 0 {
		return fmt.Errorf("CRAWL_WORKERS must not be negative, got %d", c.CrawlWorkers)
	}
	return nil
}

// InMemory reports whether the service runs without Postgres.
func (c Config) InMemory() bool { return c.DatabaseURL == "" }
