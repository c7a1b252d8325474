package config

import "time"

// StorageConfig selects and configures the person repository backend.
type StorageConfig struct {
	Driver            string        `env:"STORAGE_DRIVER" envDefault:"memory"`
	PostgresDSN       string        `env:"POSTGRES_DSN"`
	SQLitePath        string        `env:"SQLITE_PATH" envDefault:"greeter.db"`
	MaxConnections    int32         `env:"DB_MAX_CONNECTIONS" envDefault:"10"`
	MinConnections    int32         `env:"DB_MIN_CONNECTIONS" envDefault:"1"`
	MaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	MaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	HealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
}

// GreetingConfig holds greeting format settings.
type GreetingConfig struct {
	Template     string `env:"GREETING_TEMPLATE" envDefault:"Hello, %s, from Mockito!"`
	FallbackName string `env:"GREETING_FALLBACK_NAME" envDefault:"World"`
}

// TranslationConfig holds translator settings.
type TranslationConfig struct {
	Provider       string  `env:"TRANSLATION_PROVIDER" envDefault:"passthrough"`
	LLMAPIKey      string  `env:"LLM_API_KEY"`
	LLMModel       string  `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	LLMBaseURL     string  `env:"LLM_BASE_URL"`
	RPS            float64 `env:"TRANSLATION_RPS" envDefault:"1"`
	SourceLanguage string  `env:"DEFAULT_SOURCE_LANGUAGE" envDefault:"en"`
	TargetLanguage string  `env:"DEFAULT_TARGET_LANGUAGE" envDefault:"en"`
}

// FetchConfig holds outbound HTTP settings for the astro and bio sources.
type FetchConfig struct {
	AstroURL        string        `env:"ASTRO_URL" envDefault:"http://api.open-notify.org/astros.json"`
	WikipediaAPIURL string        `env:"WIKIPEDIA_API_URL" envDefault:"https://en.wikipedia.org/w/api.php"`
	BioTitles       []string      `env:"BIO_TITLES" envSeparator:","`
	Timeout         time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	RPS             float64       `env:"FETCH_RPS" envDefault:"2"`
}
