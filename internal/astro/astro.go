// Package astro reports who is currently in space, grouped by craft.
package astro

import (
	"context"

	"github.com/lueurxax/greeter/internal/core/domain"
	"github.com/lueurxax/greeter/internal/core/ports"
	"github.com/lueurxax/greeter/internal/platform/fetch"
)

// DefaultURL is the open-notify people-in-space endpoint.
const DefaultURL = "http://api.open-notify.org/astros.json"

const sourceName = "open-notify"

var _ ports.AstroGateway = (*HTTPGateway)(nil)

// Service groups astronauts by craft.
type Service struct {
	gateway ports.AstroGateway
}

// NewService creates an astro service over gateway.
func NewService(gateway ports.AstroGateway) *Service {
	return &Service{gateway: gateway}
}

// CraftCounts returns the number of people aboard each craft.
func (s *Service) CraftCounts(ctx context.Context) (map[string]int, error) {
	resp, err := s.gateway.Astronauts(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck // collaborator errors surface verbatim
	}

	counts := make(map[string]int)
	for _, a := range resp.People {
		counts[a.Craft]++
	}

	return counts, nil
}

// HTTPGateway reads the open-notify API.
type HTTPGateway struct {
	fetcher *fetch.Fetcher
	url     string
}

// NewHTTPGateway creates a gateway for url. An empty url selects DefaultURL.
func NewHTTPGateway(fetcher *fetch.Fetcher, url string) *HTTPGateway {
	if url == "" {
		url = DefaultURL
	}

	return &HTTPGateway{fetcher: fetcher, url: url}
}

// Astronauts fetches and decodes the current crew list.
func (g *HTTPGateway) Astronauts(ctx context.Context) (domain.AstroResponse, error) {
	var resp domain.AstroResponse
	if err := g.fetcher.GetJSON(ctx, sourceName, g.url, &resp); err != nil {
		return domain.AstroResponse{}, err //nolint:wrapcheck // fetch errors carry the request context
	}

	return resp, nil
}
