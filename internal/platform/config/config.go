package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lueurxax/greeter/internal/core/domain"
	"github.com/lueurxax/greeter/internal/core/errors"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Translation providers.
const (
	ProviderPassthrough = "passthrough"
	ProviderOpenAI      = "openai"
)

// Config is the full runtime configuration.
type Config struct {
	AppEnv     string `env:"APP_ENV" envDefault:"local"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	HealthPort int    `env:"HEALTH_PORT" envDefault:"8080"`
	SeedFile   string `env:"SEED_FILE"`

	// StatsInterval is how often serve mode refreshes the stored-people gauge.
	StatsInterval time.Duration `env:"STATS_INTERVAL" envDefault:"30s"`

	Storage     StorageConfig
	Greeting    GreetingConfig
	Translation TranslationConfig
	Fetch       FetchConfig
}

// Load reads an optional .env file and the process environment and validates
// the result.
func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional, error is expected when not present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	applyAliases(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	c.Translation.Provider = strings.ToLower(strings.TrimSpace(c.Translation.Provider))

	switch c.Storage.Driver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if c.Storage.PostgresDSN == "" {
			return fmt.Errorf("%w: POSTGRES_DSN is required for the postgres driver", errors.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownStorageDriver, c.Storage.Driver)
	}

	switch c.Translation.Provider {
	case ProviderPassthrough:
	case ProviderOpenAI:
		if c.Translation.LLMAPIKey == "" {
			return fmt.Errorf("%w: LLM_API_KEY is required for the openai provider", errors.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownTranslationProvider, c.Translation.Provider)
	}

	if c.StatsInterval <= 0 {
		return fmt.Errorf("%w: STATS_INTERVAL must be positive", errors.ErrInvalidInput)
	}

	if err := domain.ValidateTemplate(c.Greeting.Template); err != nil {
		return fmt.Errorf("GREETING_TEMPLATE: %w", err)
	}

	return nil
}

// applyAliases fills settings from widely used alternative variable names
// when the primary name is unset.
func applyAliases(cfg *Config) {
	if !hasEnv("POSTGRES_DSN") {
		setStringFromEnv("DATABASE_URL", &cfg.Storage.PostgresDSN)
	}

	if !hasEnv("LLM_API_KEY") {
		setStringFromEnv("OPENAI_API_KEY", &cfg.Translation.LLMAPIKey)
	}

	if !hasEnv("LLM_BASE_URL") {
		setStringFromEnv("OPENAI_BASE_URL", &cfg.Translation.LLMBaseURL)
	}
}

func hasEnv(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

func setStringFromEnv(key string, target *string) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return
	}

	val = strings.TrimSpace(val)
	if val == "" {
		return
	}

	*target = val
}
