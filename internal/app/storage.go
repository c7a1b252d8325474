package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lueurxax/greeter/internal/core/errors"
	"github.com/lueurxax/greeter/internal/core/ports"
	"github.com/lueurxax/greeter/internal/platform/config"
	db "github.com/lueurxax/greeter/internal/storage"
	"github.com/lueurxax/greeter/internal/storage/memory"
	"github.com/lueurxax/greeter/internal/storage/sqlite"
)

// store is an opened repository together with its lifecycle hooks.
type store struct {
	repo  ports.PersonRepository
	ping  func(ctx context.Context) error
	close func()
}

func openStore(ctx context.Context, cfg config.StorageConfig, logger *zerolog.Logger) (*store, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		repo := memory.NewPersonRepository()

		return &store{
			repo: repo,
			ping: func(ctx context.Context) error {
				_, err := repo.Count(ctx)
				return err //nolint:wrapcheck // in-memory count never fails
			},
			close: func() {},
		}, nil

	case config.DriverSQLite:
		database, err := sqlite.Open(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}

		return &store{
			repo: sqlite.NewPersonRepository(database),
			ping: database.Ping,
			close: func() {
				if err := database.Close(); err != nil {
					logger.Warn().Err(err).Msg("failed to close sqlite store")
				}
			},
		}, nil

	case config.DriverPostgres:
		poolOpts := db.PoolOptions{
			MaxConns:          cfg.MaxConnections,
			MinConns:          cfg.MinConnections,
			MaxConnIdleTime:   cfg.MaxConnIdleTime,
			MaxConnLifetime:   cfg.MaxConnLifetime,
			HealthCheckPeriod: cfg.HealthCheckPeriod,
		}

		database, err := db.NewWithOptions(ctx, cfg.PostgresDSN, poolOpts, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		return &store{
			repo:  db.NewPersonRepository(database),
			ping:  database.Ping,
			close: database.Close,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownStorageDriver, cfg.Driver)
	}
}
