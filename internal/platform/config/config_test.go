package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "github.com/lueurxax/greeter/internal/core/errors"
)

// Test environment variable keys.
const (
	testEnvStorageDriver = "STORAGE_DRIVER"
	testEnvPostgresDSN   = "POSTGRES_DSN"
	testEnvDatabaseURL   = "DATABASE_URL"
	testEnvProvider      = "TRANSLATION_PROVIDER"
	testEnvLLMAPIKey     = "LLM_API_KEY"
	testEnvOpenAIAPIKey  = "OPENAI_API_KEY"
	testEnvTemplate      = "GREETING_TEMPLATE"
)

// Test values.
const (
	testPostgresDSN = "postgres://localhost/test"
	testErrLoad     = "Load() error = %v"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf(testErrLoad, err)
	}

	assert.Equal(t, "local", cfg.AppEnv)
	assert.Equal(t, 8080, cfg.HealthPort)
	assert.Equal(t, 30*time.Second, cfg.StatsInterval)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "greeter.db", cfg.Storage.SQLitePath)
	assert.Equal(t, int32(10), cfg.Storage.MaxConnections)
	assert.Equal(t, time.Hour, cfg.Storage.MaxConnLifetime)
	assert.Equal(t, "Hello, %s, from Mockito!", cfg.Greeting.Template)
	assert.Equal(t, "World", cfg.Greeting.FallbackName)
	assert.Equal(t, ProviderPassthrough, cfg.Translation.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Translation.LLMModel)
	assert.Equal(t, "en", cfg.Translation.SourceLanguage)
	assert.Equal(t, "en", cfg.Translation.TargetLanguage)
	assert.Equal(t, "http://api.open-notify.org/astros.json", cfg.Fetch.AstroURL)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	assert.Empty(t, cfg.Fetch.BioTitles)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(testEnvStorageDriver, " SQLite ")
	t.Setenv("SQLITE_PATH", "/tmp/people.db")
	t.Setenv(testEnvTemplate, "Bonjour %s !")
	t.Setenv("BIO_TITLES", "Grace_Hopper,Ada_Lovelace")
	t.Setenv("HTTP_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/people.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "Bonjour %s !", cfg.Greeting.Template)
	assert.Equal(t, []string{"Grace_Hopper", "Ada_Lovelace"}, cfg.Fetch.BioTitles)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv(testEnvStorageDriver, DriverPostgres)

	t.Run("missing DSN", func(t *testing.T) {
		t.Setenv(testEnvPostgresDSN, "")

		_, err := Load()
		assert.ErrorIs(t, err, coreerrors.ErrInvalidInput)
	})

	t.Run("DSN set", func(t *testing.T) {
		t.Setenv(testEnvPostgresDSN, testPostgresDSN)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, testPostgresDSN, cfg.Storage.PostgresDSN)
	})
}

func TestLoad_DatabaseURLAlias(t *testing.T) {
	t.Setenv(testEnvStorageDriver, DriverPostgres)
	t.Setenv(testEnvDatabaseURL, testPostgresDSN)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, testPostgresDSN, cfg.Storage.PostgresDSN)
}

func TestLoad_OpenAI(t *testing.T) {
	t.Setenv(testEnvProvider, ProviderOpenAI)

	_, err := Load()
	require.ErrorIs(t, err, coreerrors.ErrInvalidInput)

	t.Setenv(testEnvOpenAIAPIKey, "sk-alias")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-alias", cfg.Translation.LLMAPIKey)

	t.Setenv(testEnvLLMAPIKey, "sk-primary")

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-primary", cfg.Translation.LLMAPIKey)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want error
	}{
		{name: "unknown driver", key: testEnvStorageDriver, val: "mongo", want: coreerrors.ErrUnknownStorageDriver},
		{name: "unknown provider", key: testEnvProvider, val: "babelfish", want: coreerrors.ErrUnknownTranslationProvider},
		{name: "template without placeholder", key: testEnvTemplate, val: "Hello!", want: coreerrors.ErrInvalidTemplate},
		{name: "template with two placeholders", key: testEnvTemplate, val: "%s and %s", want: coreerrors.ErrInvalidTemplate},
		{name: "zero stats interval", key: "STATS_INTERVAL", val: "0s", want: coreerrors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_InvalidNumber(t *testing.T) {
	t.Setenv("HEALTH_PORT", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
