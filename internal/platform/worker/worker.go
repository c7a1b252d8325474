// Package worker runs periodic background tasks alongside the serve mode.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const (
	logFieldWorker = "worker"
	logFieldTask   = "task"
)

// Task is one unit of periodic work. A failing Run is logged and the loop
// keeps going.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Config configures a ticker loop.
type Config struct {
	// Name identifies the worker for logging.
	Name string

	// Interval between runs. Must be positive.
	Interval time.Duration

	// RunOnStart runs every task once before the first tick.
	RunOnStart bool

	Tasks []Task

	Logger *zerolog.Logger
}

// Loop runs cfg.Tasks on every tick until ctx is canceled and returns the
// wrapped context error.
func Loop(ctx context.Context, cfg Config) error {
	if cfg.Interval <= 0 {
		return fmt.Errorf("worker %s: interval must be positive, got %s", cfg.Name, cfg.Interval)
	}

	logger := getLogger(cfg.Logger)
	logger.Info().Str(logFieldWorker, cfg.Name).Dur("interval", cfg.Interval).Msg("starting ticker loop")

	defer logger.Info().Str(logFieldWorker, cfg.Name).Msg("ticker loop stopped")

	if cfg.RunOnStart {
		runTasks(ctx, cfg, logger)
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("worker %s: %w", cfg.Name, ctx.Err())
		case <-ticker.C:
			runTasks(ctx, cfg, logger)
		}
	}
}

func runTasks(ctx context.Context, cfg Config, logger *zerolog.Logger) {
	for _, task := range cfg.Tasks {
		if task.Run == nil {
			continue
		}

		runTask(ctx, task, logger)
	}
}

func runTask(ctx context.Context, task Task, logger *zerolog.Logger) {
	defer RecoverPanic(logger, task.Name)

	if err := task.Run(ctx); err != nil {
		logger.Warn().Err(err).Str(logFieldTask, task.Name).Msg("task failed")

		return
	}

	logger.Debug().Str(logFieldTask, task.Name).Msg("task done")
}

// Wait blocks until d elapses or ctx is canceled.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("wait interrupted: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

// RecoverPanic recovers from panics and logs them.
// Use as: defer worker.RecoverPanic(logger, "operation name")
func RecoverPanic(logger *zerolog.Logger, operation string) {
	if r := recover(); r != nil {
		logger.Error().
			Interface("panic", r).
			Str("operation", operation).
			Msg("recovered from panic")
	}
}

func getLogger(logger *zerolog.Logger) *zerolog.Logger {
	if logger == nil {
		nop := zerolog.Nop()

		return &nop
	}

	return logger
}
