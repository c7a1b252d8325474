// Package app provides the application bootstrap and runtime orchestration.
//
// The App type wires together all dependencies and exposes methods to run
// the different operational modes:
//
//   - Greet mode: greet one person by id
//   - People mode: print aggregates over the stored people
//   - Seed mode: load people from a YAML file
//   - Sum mode: total a list of integers three ways
//   - Astro mode: count the people in space per craft
//   - Bios mode: print encyclopedia extracts for a list of titles
//   - Serve mode: health, metrics and greeting HTTP endpoints
package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lueurxax/greeter/internal/adding"
	"github.com/lueurxax/greeter/internal/astro"
	"github.com/lueurxax/greeter/internal/bio"
	"github.com/lueurxax/greeter/internal/core/domain"
	"github.com/lueurxax/greeter/internal/core/errors"
	"github.com/lueurxax/greeter/internal/core/ports"
	"github.com/lueurxax/greeter/internal/greeting"
	"github.com/lueurxax/greeter/internal/people"
	"github.com/lueurxax/greeter/internal/platform/config"
	"github.com/lueurxax/greeter/internal/platform/fetch"
	"github.com/lueurxax/greeter/internal/platform/observability"
	"github.com/lueurxax/greeter/internal/platform/worker"
	"github.com/lueurxax/greeter/internal/seed"
	"github.com/lueurxax/greeter/internal/translate"
)

// Log field constants.
const (
	logFieldDriver   = "driver"
	logFieldProvider = "provider"
	logFieldCount    = "count"
)

const greetPath = "/greet"

// App holds the application dependencies and provides methods to run different modes.
type App struct {
	cfg    *config.Config
	store  *store
	out    io.Writer
	logger *zerolog.Logger

	translator ports.Translator
	fetcher    *fetch.Fetcher
	greeter    *greeting.Service
	people     *people.Service
}

// New opens the configured store and wires the services. Output lines are
// written to out. Close releases the store.
func New(ctx context.Context, cfg *config.Config, out io.Writer, logger *zerolog.Logger) (*App, error) {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	st, err := openStore(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	translator, err := newTranslator(cfg.Translation, logger)
	if err != nil {
		st.close()
		return nil, err
	}

	a := &App{
		cfg:        cfg,
		store:      st,
		out:        out,
		logger:     logger,
		translator: translator,
		fetcher:    fetch.New(cfg.Fetch.RPS, cfg.Fetch.Timeout),
		greeter: greeting.New(
			greeting.WithRepository(st.repo),
			greeting.WithTranslator(translator),
			greeting.WithTemplate(cfg.Greeting.Template),
			greeting.WithFallbackName(cfg.Greeting.FallbackName),
			greeting.WithLogger(logger),
		),
		people: people.NewService(st.repo),
	}

	logger.Debug().
		Str(logFieldDriver, cfg.Storage.Driver).
		Str(logFieldProvider, cfg.Translation.Provider).
		Msg("application wired")

	return a, nil
}

func newTranslator(cfg config.TranslationConfig, logger *zerolog.Logger) (ports.Translator, error) {
	switch cfg.Provider {
	case config.ProviderPassthrough, "":
		return translate.NewPassthrough(cfg.SourceLanguage, cfg.TargetLanguage), nil
	case config.ProviderOpenAI:
		return translate.NewOpenAI(translate.OpenAIConfig{
			APIKey:  cfg.LLMAPIKey,
			Model:   cfg.LLMModel,
			BaseURL: cfg.LLMBaseURL,
			RPS:     cfg.RPS,
			Source:  cfg.SourceLanguage,
			Target:  cfg.TargetLanguage,
		}, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownTranslationProvider, cfg.Provider)
	}
}

// Close releases the store.
func (a *App) Close() {
	a.store.close()
}

// EnsureSeeded loads the seed set into an empty in-memory store so one-shot
// modes have people to work with. Persistent stores are left untouched.
func (a *App) EnsureSeeded(ctx context.Context) error {
	if a.cfg.Storage.Driver != config.DriverMemory {
		return nil
	}

	n, err := a.store.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count people: %w", err)
	}

	if n > 0 {
		return nil
	}

	_, err = a.seed(ctx, a.cfg.SeedFile)

	return err
}

func (a *App) seed(ctx context.Context, file string) ([]int, error) {
	var (
		list []domain.Person
		err  error
	)

	if file == "" {
		list, err = seed.Default()
	} else {
		list, err = seed.LoadFile(file)
	}

	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}

	ids, err := a.people.SavePeople(ctx, list...)
	if err != nil {
		return nil, fmt.Errorf("save seed: %w", err)
	}

	a.logger.Info().Int(logFieldCount, len(ids)).Msg("seeded people")

	return ids, nil
}

// RunGreet prints the greeting for id. Empty languages use the default pair.
func (a *App) RunGreet(ctx context.Context, id int, from, to string) error {
	var (
		text string
		err  error
	)

	if from == "" && to == "" {
		text, err = a.greeter.GreetDefault(ctx, id)
	} else {
		text, err = a.greeter.Greet(ctx, id, from, to)
	}

	if err != nil {
		return fmt.Errorf("greet %d: %w", id, err)
	}

	return a.println(text)
}

// RunPeople prints the people aggregates.
func (a *App) RunPeople(ctx context.Context) error {
	total, err := a.people.TotalPeople(ctx)
	if err != nil {
		return fmt.Errorf("total people: %w", err)
	}

	highest, err := a.people.HighestID(ctx)
	if err != nil {
		return fmt.Errorf("highest id: %w", err)
	}

	names, err := a.people.LastNames(ctx)
	if err != nil {
		return fmt.Errorf("last names: %w", err)
	}

	return a.printf("total: %d\nhighest id: %d\nlast names: %v\n", total, highest, names)
}

// RunSeed loads file (or the embedded set when empty) and prints the saved ids.
func (a *App) RunSeed(ctx context.Context, file string) error {
	ids, err := a.seed(ctx, file)
	if err != nil {
		return err
	}

	return a.printf("saved ids: %v\n", ids)
}

// RunSum prints the totals of numbers computed three ways.
func (a *App) RunSum(numbers []int) error {
	m := adding.NewMachine(adding.IntSlice(numbers))

	return a.printf("loop: %d\niterator: %d\nslice: %d\n",
		m.TotalUsingLoop(), m.TotalUsingIterator(), m.TotalUsingSlice())
}

// RunAstro prints the number of people aboard each craft.
func (a *App) RunAstro(ctx context.Context) error {
	svc := astro.NewService(astro.NewHTTPGateway(a.fetcher, a.cfg.Fetch.AstroURL))

	counts, err := svc.CraftCounts(ctx)
	if err != nil {
		return fmt.Errorf("craft counts: %w", err)
	}

	for _, craft := range slices.Sorted(maps.Keys(counts)) {
		if err := a.printf("%s: %d\n", craft, counts[craft]); err != nil {
			return err
		}
	}

	return nil
}

// RunBios prints an extract for each title. Empty titles fall back to the
// configured list and then to bio.DefaultTitles.
func (a *App) RunBios(ctx context.Context, titles []string) error {
	if len(titles) == 0 {
		titles = a.cfg.Fetch.BioTitles
	}

	svc := bio.NewService(bio.NewWikipediaFetcher(a.fetcher, a.cfg.Fetch.WikipediaAPIURL), titles...)

	bios, err := svc.Bios(ctx)
	if err != nil {
		return fmt.Errorf("bios: %w", err)
	}

	for _, b := range bios {
		if err := a.printf("== %s ==\n%s\n", b.Title, b.Extract); err != nil {
			return err
		}
	}

	return nil
}

// Server builds the serve-mode HTTP server.
func (a *App) Server() *observability.Server {
	srv := observability.NewServer(a.store.ping, a.cfg.HealthPort, a.logger)
	srv.Handle(greetPath, greeting.NewHandler(a.greeter, a.logger))

	return srv
}

// RunServe serves health, metrics and greeting endpoints until ctx is done.
// A background worker keeps the stored-people gauge current.
func (a *App) RunServe(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.Server().Start(gctx) //nolint:wrapcheck // server error already carries context
	})

	g.Go(func() error {
		return worker.Loop(gctx, a.statsWorker())
	})

	if err := g.Wait(); err != nil && !stderrors.Is(err, context.Canceled) {
		return err //nolint:wrapcheck // already wrapped by the failing goroutine
	}

	return nil
}

func (a *App) statsWorker() worker.Config {
	return worker.Config{
		Name:       "stats",
		Interval:   a.cfg.StatsInterval,
		RunOnStart: true,
		Logger:     a.logger,
		Tasks:      []worker.Task{{Name: "people_stored", Run: a.refreshPeopleGauge}},
	}
}

func (a *App) refreshPeopleGauge(ctx context.Context) error {
	n, err := a.people.TotalPeople(ctx)
	if err != nil {
		return fmt.Errorf("count people: %w", err)
	}

	observability.PeopleStored.Set(float64(n))

	return nil
}

func (a *App) println(s string) error {
	return a.printf("%s\n", s)
}

func (a *App) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(a.out, format, args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
