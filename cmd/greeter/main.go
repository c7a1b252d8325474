package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lueurxax/greeter/internal/app"
	coreerrors "github.com/lueurxax/greeter/internal/core/errors"
	"github.com/lueurxax/greeter/internal/platform/config"
)

const usage = "Usage: %s --mode=[greet|people|seed|sum|astro|bios|serve]"

type options struct {
	mode    string
	id      int
	from    string
	to      string
	file    string
	numbers string
	titles  string
}

func main() {
	var opts options

	flag.StringVar(&opts.mode, "mode", "", "Service mode (greet, people, seed, sum, astro, bios, serve)")
	flag.IntVar(&opts.id, "id", 1, "Person id (greet mode)")
	flag.StringVar(&opts.from, "from", "", "Source language tag (greet mode)")
	flag.StringVar(&opts.to, "to", "", "Target language tag (greet mode)")
	flag.StringVar(&opts.file, "file", "", "YAML seed file (seed mode)")
	flag.StringVar(&opts.numbers, "numbers", "1,2,3", "Comma-separated integers (sum mode)")
	flag.StringVar(&opts.titles, "titles", "", "Comma-separated Wikipedia titles (bios mode)")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, os.Stdout, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize application")
	}
	defer application.Close()

	if err := runMode(ctx, application, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info().Msg("application stopped")
			return
		}

		if errors.Is(err, coreerrors.ErrUnknownMode) {
			log.Printf(usage, os.Args[0])
		}

		logger.Error().Err(err).Msg("application error")

		stop()
		application.Close()
		os.Exit(1) //nolint:gocritic // deferred cleanup already ran above
	}
}

func newLogger(appEnv, level string) zerolog.Logger {
	var logger zerolog.Logger

	if appEnv == "local" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	if lvl, err := zerolog.ParseLevel(level); err == nil && level != "" {
		logger = logger.Level(lvl)
	}

	return logger
}

func runMode(ctx context.Context, application *app.App, opts options) error {
	switch opts.mode {
	case "greet":
		if err := application.EnsureSeeded(ctx); err != nil {
			return err //nolint:wrapcheck
		}

		return application.RunGreet(ctx, opts.id, opts.from, opts.to) //nolint:wrapcheck
	case "people":
		if err := application.EnsureSeeded(ctx); err != nil {
			return err //nolint:wrapcheck
		}

		return application.RunPeople(ctx) //nolint:wrapcheck
	case "seed":
		return application.RunSeed(ctx, opts.file) //nolint:wrapcheck
	case "sum":
		numbers, err := parseNumbers(opts.numbers)
		if err != nil {
			return err
		}

		return application.RunSum(numbers) //nolint:wrapcheck
	case "astro":
		return application.RunAstro(ctx) //nolint:wrapcheck
	case "bios":
		return application.RunBios(ctx, splitList(opts.titles)) //nolint:wrapcheck
	case "serve":
		if err := application.EnsureSeeded(ctx); err != nil {
			return err //nolint:wrapcheck
		}

		return application.RunServe(ctx) //nolint:wrapcheck
	default:
		return fmt.Errorf("%w: %q", coreerrors.ErrUnknownMode, opts.mode)
	}
}

func parseNumbers(s string) ([]int, error) {
	parts := splitList(s)
	numbers := make([]int, 0, len(parts))

	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", coreerrors.ErrInvalidInput, p)
		}

		numbers = append(numbers, n)
	}

	return numbers, nil
}

func splitList(s string) []string {
	var out []string

	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
