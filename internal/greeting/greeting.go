// Package greeting formats personalised greetings for stored people and
// hands them to a translator.
package greeting

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lueurxax/greeter/internal/core/domain"
	"github.com/lueurxax/greeter/internal/core/ports"
	"github.com/lueurxax/greeter/internal/platform/observability"
	"github.com/lueurxax/greeter/internal/storage/memory"
	"github.com/lueurxax/greeter/internal/translate"
)

const (
	// DefaultTemplate is the greeting format used when none is configured.
	DefaultTemplate = "Hello, %s, from Mockito!"
	// DefaultFallbackName replaces the first name of an unknown person.
	DefaultFallbackName = "World"
)

// Service builds greetings from a person repository and a translator.
type Service struct {
	repo       ports.PersonRepository
	translator ports.Translator
	fallback   string
	logger     *zerolog.Logger

	mu       sync.RWMutex
	template string
}

// Option configures a Service.
type Option func(*Service)

// WithRepository sets the person repository.
func WithRepository(repo ports.PersonRepository) Option {
	return func(s *Service) {
		s.repo = repo
	}
}

// WithTranslator sets the translation collaborator.
func WithTranslator(tr ports.Translator) Option {
	return func(s *Service) {
		s.translator = tr
	}
}

// WithTemplate sets the initial greeting template.
func WithTemplate(template string) Option {
	return func(s *Service) {
		s.template = template
	}
}

// WithFallbackName sets the name used for unknown ids.
func WithFallbackName(name string) Option {
	return func(s *Service) {
		s.fallback = name
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a greeting service. Without options it greets everyone as
// DefaultFallbackName over an empty in-memory repository and a passthrough
// translator.
func New(opts ...Option) *Service {
	nop := zerolog.Nop()

	s := &Service{
		fallback: DefaultFallbackName,
		template: DefaultTemplate,
		logger:   &nop,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.repo == nil {
		s.repo = memory.NewPersonRepository()
	}

	if s.translator == nil {
		s.translator = translate.NewPassthrough(translate.DefaultLanguage, translate.DefaultLanguage)
	}

	return s
}

// NewService creates a greeting service over repo and translator.
func NewService(repo ports.PersonRepository, translator ports.Translator) *Service {
	return New(WithRepository(repo), WithTranslator(translator))
}

// Greet looks up id, formats the greeting and translates it from source to target.
// An unknown id is greeted with the fallback name.
func (s *Service) Greet(ctx context.Context, id int, source, target string) (string, error) {
	text, err := s.greetingFor(ctx, id)
	if err != nil {
		return "", err
	}

	return s.translator.Translate(ctx, text, source, target) //nolint:wrapcheck // collaborator errors surface verbatim
}

// GreetDefault is Greet with the translator's default language pair.
func (s *Service) GreetDefault(ctx context.Context, id int) (string, error) {
	text, err := s.greetingFor(ctx, id)
	if err != nil {
		return "", err
	}

	return s.translator.TranslateDefault(ctx, text) //nolint:wrapcheck // collaborator errors surface verbatim
}

// GreetPerson greets p directly without consulting the repository.
func (s *Service) GreetPerson(ctx context.Context, p domain.Person, source, target string) (string, error) {
	return s.translator.Translate(ctx, s.format(p.First), source, target) //nolint:wrapcheck // collaborator errors surface verbatim
}

func (s *Service) greetingFor(ctx context.Context, id int) (string, error) {
	p, ok, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err //nolint:wrapcheck // collaborator errors surface verbatim
	}

	name := p.First
	result := observability.GreetingFound

	if !ok {
		name = s.fallback
		result = observability.GreetingFallback
	}

	observability.GreetingsTotal.WithLabelValues(result).Inc()

	s.logger.Debug().Int("id", id).Str("result", result).Msg("resolved greeting name")

	return s.format(name), nil
}

func (s *Service) format(name string) string {
	return fmt.Sprintf(s.Template(), name)
}

// Template returns the current greeting template.
func (s *Service) Template() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.template
}

// SetTemplate replaces the greeting template. It is not validated; see ValidateTemplate.
func (s *Service) SetTemplate(template string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.template = template
}

// ValidateTemplate reports whether template holds exactly one name placeholder.
func ValidateTemplate(template string) error {
	return domain.ValidateTemplate(template) //nolint:wrapcheck // already carries the template
}
