// Package ports provides domain-centric interfaces for external dependencies.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern,
// allowing business logic to remain independent of infrastructure concerns.
package ports

import (
	"context"

	"github.com/lueurxax/greeter/internal/core/domain"
)

// PersonRepository stores and retrieves person records by integer id.
//
// Save assigns max(id)+1 when p.ID is zero and overwrites on an existing id.
// FindByID reports absence through ok, never through err. Delete of an absent
// record is a no-op. Count equals len(FindAll) at the same logical point.
type PersonRepository interface {
	Save(ctx context.Context, p domain.Person) (domain.Person, error)
	FindByID(ctx context.Context, id int) (p domain.Person, ok bool, err error)
	FindAll(ctx context.Context) ([]domain.Person, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, p domain.Person) error
}

// Translator provides text translation services.
type Translator interface {
	Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) (string, error)
	// TranslateDefault translates using the translator's default language pair.
	TranslateDefault(ctx context.Context, text string) (string, error)
}

// AstroGateway returns the people currently in space.
type AstroGateway interface {
	Astronauts(ctx context.Context) (domain.AstroResponse, error)
}

// ExtractFetcher returns a plain-text encyclopedia extract for a title.
type ExtractFetcher interface {
	Extract(ctx context.Context, title string) (string, error)
}
