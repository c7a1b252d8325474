// Package people provides aggregate queries and bulk saves over a person repository.
package people

import (
	"cmp"
	"context"
	"slices"

	"github.com/lueurxax/greeter/internal/core/domain"
	"github.com/lueurxax/greeter/internal/core/ports"
	"github.com/lueurxax/greeter/internal/platform/observability"
)

// Service aggregates over a person repository.
type Service struct {
	repo ports.PersonRepository
}

// NewService creates a people service over repo.
func NewService(repo ports.PersonRepository) *Service {
	return &Service{repo: repo}
}

// HighestID returns the largest stored id, or 0 when the repository is empty.
func (s *Service) HighestID(ctx context.Context) (int, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, err //nolint:wrapcheck // collaborator errors surface verbatim
	}

	if len(all) == 0 {
		return 0, nil
	}

	return slices.MaxFunc(all, func(a, b domain.Person) int { return cmp.Compare(a.ID, b.ID) }).ID, nil
}

// LastNames returns every last name in repository order.
func (s *Service) LastNames(ctx context.Context) ([]string, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck // collaborator errors surface verbatim
	}

	names := make([]string, 0, len(all))
	for _, p := range all {
		names = append(names, p.Last)
	}

	return names, nil
}

// TotalPeople returns the number of stored people.
func (s *Service) TotalPeople(ctx context.Context) (int, error) {
	return s.repo.Count(ctx) //nolint:wrapcheck // collaborator errors surface verbatim
}

// SavePeople saves each person in order and returns the assigned ids in the
// same order. The first failure stops the batch; earlier saves are not rolled back.
func (s *Service) SavePeople(ctx context.Context, people ...domain.Person) ([]int, error) {
	ids := make([]int, 0, len(people))

	for _, p := range people {
		saved, err := s.repo.Save(ctx, p)
		if err != nil {
			return nil, err //nolint:wrapcheck // collaborator errors surface verbatim
		}

		observability.PeopleSaved.Inc()

		ids = append(ids, saved.ID)
	}

	return ids, nil
}
