// Package bio collects encyclopedia extracts for a fixed list of titles.
package bio

import (
	"context"
	"fmt"
	"net/url"

	"github.com/lueurxax/greeter/internal/core/domain"
	"github.com/lueurxax/greeter/internal/core/errors"
	"github.com/lueurxax/greeter/internal/core/ports"
	"github.com/lueurxax/greeter/internal/platform/fetch"
)

// DefaultAPIURL is the English Wikipedia action API.
const DefaultAPIURL = "https://en.wikipedia.org/w/api.php"

const sourceName = "wikipedia"

// DefaultTitles are the pages fetched when no titles are configured.
var DefaultTitles = []string{"Grace_Hopper", "Ada_Lovelace", "Adele_Goldberg_(computer_scientist)", "Barbara_Liskov"}

var _ ports.ExtractFetcher = (*WikipediaFetcher)(nil)

// Service fetches one Bio per configured title.
type Service struct {
	fetcher ports.ExtractFetcher
	titles  []string
}

// NewService creates a bio service. Without titles DefaultTitles are used.
func NewService(fetcher ports.ExtractFetcher, titles ...string) *Service {
	if len(titles) == 0 {
		titles = DefaultTitles
	}

	return &Service{fetcher: fetcher, titles: append([]string(nil), titles...)}
}

// Titles returns the configured titles.
func (s *Service) Titles() []string {
	return append([]string(nil), s.titles...)
}

// Bios fetches each title in order. The first failure stops the run.
func (s *Service) Bios(ctx context.Context) ([]domain.Bio, error) {
	bios := make([]domain.Bio, 0, len(s.titles))

	for _, title := range s.titles {
		extract, err := s.fetcher.Extract(ctx, title)
		if err != nil {
			return nil, err //nolint:wrapcheck // collaborator errors surface verbatim
		}

		bios = append(bios, domain.Bio{Title: title, Extract: extract})
	}

	return bios, nil
}

// WikipediaFetcher reads plain-text extracts from the MediaWiki action API.
type WikipediaFetcher struct {
	fetcher *fetch.Fetcher
	apiURL  string
}

// NewWikipediaFetcher creates a fetcher for apiURL. An empty apiURL selects DefaultAPIURL.
func NewWikipediaFetcher(fetcher *fetch.Fetcher, apiURL string) *WikipediaFetcher {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	return &WikipediaFetcher{fetcher: fetcher, apiURL: apiURL}
}

type extractResponse struct {
	Query struct {
		Pages []struct {
			Title   string `json:"title"`
			Extract string `json:"extract"`
			Missing bool   `json:"missing"`
			Invalid bool   `json:"invalid"`
		} `json:"pages"`
	} `json:"query"`
}

// Extract returns the plain-text extract of title, or errors.ErrNotFound when
// the page does not exist.
func (f *WikipediaFetcher) Extract(ctx context.Context, title string) (string, error) {
	var resp extractResponse
	if err := f.fetcher.GetJSON(ctx, sourceName, f.queryURL(title), &resp); err != nil {
		return "", fmt.Errorf("fetch extract %q: %w", title, err)
	}

	if len(resp.Query.Pages) == 0 {
		return "", fmt.Errorf("fetch extract %q: %w", title, errors.ErrEmptyResponse)
	}

	page := resp.Query.Pages[0]
	if page.Missing || page.Invalid {
		return "", fmt.Errorf("page %q: %w", title, errors.ErrNotFound)
	}

	return page.Extract, nil
}

func (f *WikipediaFetcher) queryURL(title string) string {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("prop", "extracts")
	q.Set("explaintext", "1")
	q.Set("format", "json")
	q.Set("formatversion", "2")
	q.Set("titles", title)

	return f.apiURL + "?" + q.Encode()
}
