// Package memory provides the in-memory PersonRepository used for tests and
// as the default backend when no database is configured.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/lueurxax/greeter/internal/core/domain"
	"github.com/lueurxax/greeter/internal/core/ports"
)

var _ ports.PersonRepository = (*PersonRepository)(nil)

// PersonRepository is a thread-safe in-memory implementation of ports.PersonRepository.
// Records are kept in a map keyed by id with a sorted id index, so FindAll
// returns records in ascending id order.
type PersonRepository struct {
	mu     sync.RWMutex
	people map[int]domain.Person
	ids    []int
}

// NewPersonRepository creates an empty repository, optionally seeded with people.
func NewPersonRepository(seed ...domain.Person) *PersonRepository {
	r := &PersonRepository{
		people: make(map[int]domain.Person),
	}

	for _, p := range seed {
		r.save(p)
	}

	return r
}

// Save inserts or overwrites p. A zero id is replaced with max(id)+1, never
// less than 1.
func (r *PersonRepository) Save(_ context.Context, p domain.Person) (domain.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(p), nil
}

func (r *PersonRepository) save(p domain.Person) domain.Person {
	if p.ID == 0 {
		p.ID = r.nextID()
	}

	if _, exists := r.people[p.ID]; !exists {
		pos, _ := slices.BinarySearch(r.ids, p.ID)
		r.ids = slices.Insert(r.ids, pos, p.ID)
	}

	r.people[p.ID] = p

	return p
}

func (r *PersonRepository) nextID() int {
	if len(r.ids) == 0 {
		return 1
	}

	// Assigned ids stay positive so zero keeps meaning "unassigned".
	return max(r.ids[len(r.ids)-1], 0) + 1
}

// FindByID returns the person with id, or ok == false when absent.
func (r *PersonRepository) FindByID(_ context.Context, id int) (domain.Person, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.people[id]

	return p, ok, nil
}

// FindAll returns a snapshot of all people ordered by id.
func (r *PersonRepository) FindAll(_ context.Context) ([]domain.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]domain.Person, 0, len(r.ids))
	for _, id := range r.ids {
		res = append(res, r.people[id])
	}

	return res, nil
}

// Count returns the number of stored people.
func (r *PersonRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.ids), nil
}

// Delete removes the person with p.ID. Deleting an absent person is a no-op.
func (r *PersonRepository) Delete(_ context.Context, p domain.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.people[p.ID]; !ok {
		return nil
	}

	delete(r.people, p.ID)

	if pos, found := slices.BinarySearch(r.ids, p.ID); found {
		r.ids = slices.Delete(r.ids, pos, pos+1)
	}

	return nil
}

// Clear removes all people.
func (r *PersonRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.people = make(map[int]domain.Person)
	r.ids = nil
}
