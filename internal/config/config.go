package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/cloo-solutions/shopmate/internal/extract"
)

// Prefix is the environment prefix. Every key is read as SHOPMATE_<KEY>
// first and falls back to the bare <KEY>.
const Prefix = "SHOPMATE"

type Config struct {
	TavilyAPIKey  string `envconfig:"TAVILY_API_KEY"`
	TavilyBaseURL string `envconfig:"TAVILY_BASE_URL" default:"https://api.tavily.com"`

	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel   string `envconfig:"OPENAI_MODEL" default:"gpt-4o"`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL"`

	PreferredDomain  string   `envconfig:"PREFERRED_DOMAIN" default:"musinsa.com"`
	PreferredName    string   `envconfig:"PREFERRED_NAME" default:"무신사"`
	PreferredAliases []string `envconfig:"PREFERRED_ALIASES" default:"musinsa,무신사"`
	PreferredSites   []string `envconfig:"PREFERRED_SITES" default:"musinsa.com,musinsa.co.kr,www.musinsa.com"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	SearchRate  float64       `envconfig:"SEARCH_RATE" default:"5"`
	SearchBurst int           `envconfig:"SEARCH_BURST" default:"1"`

	PriceFloor      int `envconfig:"PRICE_FLOOR" default:"5000"`
	PriceCeiling    int `envconfig:"PRICE_CEILING" default:"5000000"`
	ShippingCeiling int `envconfig:"SHIPPING_CEILING" default:"50000"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	SentryDSN              string  `envconfig:"SENTRY_DSN"`
	SentryEnvironment      string  `envconfig:"SENTRY_ENVIRONMENT" default:"development"`
	SentryTracesSampleRate float64 `envconfig:"SENTRY_TRACES_SAMPLE_RATE" default:"0"`
}

// Load reads the dotenv files (.env when none is given), then the
// environment. Variables already set win over dotenv values and a missing
// dotenv file is not an error.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the pipelines cannot run with.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: want console or json", c.LogFormat)
	}
	if c.SearchRate <= 0 {
		return fmt.Errorf("invalid SEARCH_RATE %v: must be positive", c.SearchRate)
	}
	if c.PriceFloor <= 0 || c.PriceCeiling < c.PriceFloor {
		return fmt.Errorf("invalid price bounds [%d, %d]", c.PriceFloor, c.PriceCeiling)
	}
	if strings.TrimSpace(c.PreferredDomain) == "" {
		return fmt.Errorf("PREFERRED_DOMAIN cannot be empty")
	}
	return nil
}

func (c *Config) HasTavily() bool {
	return strings.TrimSpace(c.TavilyAPIKey) != ""
}

func (c *Config) HasOpenAI() bool {
	return strings.TrimSpace(c.OpenAIAPIKey) != ""
}

// PriceBounds returns the price extractor bounds. Windows keep their
// defaults.
func (c *Config) PriceBounds() extract.PriceBounds {
	b := extract.DefaultPriceBounds()
	b.Floor = c.PriceFloor
	b.Ceiling = c.PriceCeiling
	b.ShippingCeiling = c.ShippingCeiling
	return b
}
