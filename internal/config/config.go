package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env        string `envconfig:"APP_ENV" default:"development"`
	StatusPort int    `envconfig:"STATUS_PORT" default:"8090"`
	DB         DBConfig
	Redis      RedisConfig
	Groq       GroqConfig
	Discord    DiscordConfig
	Scraper    ScraperConfig
}

// database configuration
type DBConfig struct {
	DSN string `envconfig:"DATABASE_URL" required:"true"`
}

// Redis is an optional fast path in front of the visited ledger; the
// scraper runs Postgres-only when the URL is unset.
type RedisConfig struct {
	URL string `envconfig:"REDIS_URL"`
}

// Groq AI configuration
type GroqConfig struct {
	APIKey  string        `envconfig:"GROQ_API_KEY" required:"true"`
	Model   string        `envconfig:"GROQ_MODEL" default:"meta-llama/llama-4-maverick-17b-128e-instruct"`
	Timeout time.Duration `envconfig:"GROQ_TIMEOUT" default:"60s"`
}

// Discord notification configuration
type DiscordConfig struct {
	BotToken  string `envconfig:"DISCORD_BOT_TOKEN" required:"true"`
	ChannelID string `envconfig:"DISCORD_CHANNEL_ID" required:"true"`
}

// scrape loop configuration
type ScraperConfig struct {
	IntervalHours   int           `envconfig:"SCRAPE_INTERVAL_HOURS" default:"6"`
	MaxPages        int           `envconfig:"SCRAPE_MAX_PAGES" default:"5"`
	PageSize        int           `envconfig:"SCRAPE_PAGE_SIZE" default:"50"`
	PolitenessDelay time.Duration `envconfig:"SCRAPE_POLITENESS_DELAY" default:"2s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.StatusPort < 1 || c.StatusPort > 65535 {
		return fmt.Errorf("invalid status port: %d (must be between 1 and 65535)", c.StatusPort)
	}
	if c.Scraper.IntervalHours < 1 {
		return fmt.Errorf("SCRAPE_INTERVAL_HOURS must be at least 1")
	}
	if c.Scraper.MaxPages < 1 {
		return fmt.Errorf("SCRAPE_MAX_PAGES must be at least 1")
	}
	if c.Scraper.PageSize < 1 || c.Scraper.PageSize > 100 {
		return fmt.Errorf("SCRAPE_PAGE_SIZE must be between 1 and 100")
	}
	if c.Scraper.PolitenessDelay < 0 {
		return fmt.Errorf("SCRAPE_POLITENESS_DELAY must be non-negative")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, StatusPort=%d, Scraper.IntervalHours=%d, "+
		"Scraper.MaxPages=%d, Scraper.PageSize=%d, Scraper.PolitenessDelay=%s, "+
		"Groq.Model=%s, Redis=%t}",
		c.Env, c.StatusPort, c.Scraper.IntervalHours,
		c.Scraper.MaxPages, c.Scraper.PageSize, c.Scraper.PolitenessDelay,
		c.Groq.Model, c.Redis.URL != "")
}
