package mocks

import (
	"context"
	"sync"

	"github.com/lueurxax/greeter/internal/core/domain"
)

// AstroGateway is a thread-safe implementation of ports.AstroGateway serving
// a fixed response.
type AstroGateway struct {
	mu       sync.RWMutex
	response *domain.AstroResponse
	calls    int

	// AstronautsFn allows overriding Astronauts behavior.
	AstronautsFn func(ctx context.Context) (domain.AstroResponse, error)
}

// NewAstroGateway creates a gateway that returns people aboard their crafts.
func NewAstroGateway(people ...domain.Assignment) *AstroGateway {
	g := &AstroGateway{}
	if people != nil {
		g.Set(people...)
	}

	return g
}

// Set replaces the served response.
func (g *AstroGateway) Set(people ...domain.Assignment) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.response = &domain.AstroResponse{
		Message: "success",
		Number:  len(people),
		People:  append([]domain.Assignment(nil), people...),
	}
}

// Astronauts returns the configured response.
func (g *AstroGateway) Astronauts(ctx context.Context) (domain.AstroResponse, error) {
	g.mu.Lock()
	g.calls++
	fn := g.AstronautsFn
	resp := g.response
	g.mu.Unlock()

	if fn != nil {
		return fn(ctx)
	}

	if resp == nil {
		return domain.AstroResponse{}, ErrNoAstronauts
	}

	out := *resp
	out.People = append([]domain.Assignment(nil), resp.People...)

	return out, nil
}

// Calls returns how many times Astronauts was called.
func (g *AstroGateway) Calls() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.calls
}

// ExtractFetcher is a thread-safe implementation of ports.ExtractFetcher
// backed by a title to extract map.
type ExtractFetcher struct {
	mu       sync.RWMutex
	extracts map[string]string
	titles   []string

	// ExtractFn allows overriding Extract behavior.
	ExtractFn func(ctx context.Context, title string) (string, error)
}

// NewExtractFetcher creates an empty fetcher.
func NewExtractFetcher() *ExtractFetcher {
	return &ExtractFetcher{extracts: make(map[string]string)}
}

// Set stores the extract returned for title.
func (f *ExtractFetcher) Set(title, extract string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.extracts[title] = extract
}

// Extract returns the stored extract for title.
func (f *ExtractFetcher) Extract(ctx context.Context, title string) (string, error) {
	f.mu.Lock()
	f.titles = append(f.titles, title)
	fn := f.ExtractFn
	extract, ok := f.extracts[title]
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx, title)
	}

	if !ok {
		return "", ErrExtractNotFound
	}

	return extract, nil
}

// Titles returns the requested titles in call order.
func (f *ExtractFetcher) Titles() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return append([]string(nil), f.titles...)
}
