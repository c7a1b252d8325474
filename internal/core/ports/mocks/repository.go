package mocks

import (
	"context"
	"sync"

	"github.com/lueurxax/greeter/internal/core/domain"
	"github.com/lueurxax/greeter/internal/core/ports"
)

// PersonRepository wraps a real ports.PersonRepository and counts calls per
// method, so tests can verify interactions against real behavior.
type PersonRepository struct {
	ports.PersonRepository

	mu    sync.Mutex
	calls map[string]int

	// SaveFn allows overriding Save behavior.
	SaveFn func(ctx context.Context, p domain.Person) (domain.Person, error)
}

// Method names recorded by PersonRepository.
const (
	MethodSave     = "Save"
	MethodFindByID = "FindByID"
	MethodFindAll  = "FindAll"
	MethodCount    = "Count"
	MethodDelete   = "Delete"
)

// NewPersonRepository wraps repo.
func NewPersonRepository(repo ports.PersonRepository) *PersonRepository {
	return &PersonRepository{PersonRepository: repo, calls: make(map[string]int)}
}

func (r *PersonRepository) record(method string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls[method]++
}

// Save records the call and delegates.
func (r *PersonRepository) Save(ctx context.Context, p domain.Person) (domain.Person, error) {
	r.record(MethodSave)

	if r.SaveFn != nil {
		return r.SaveFn(ctx, p)
	}

	return r.PersonRepository.Save(ctx, p)
}

// FindByID records the call and delegates.
func (r *PersonRepository) FindByID(ctx context.Context, id int) (domain.Person, bool, error) {
	r.record(MethodFindByID)

	return r.PersonRepository.FindByID(ctx, id)
}

// FindAll records the call and delegates.
func (r *PersonRepository) FindAll(ctx context.Context) ([]domain.Person, error) {
	r.record(MethodFindAll)

	return r.PersonRepository.FindAll(ctx)
}

// Count records the call and delegates.
func (r *PersonRepository) Count(ctx context.Context) (int, error) {
	r.record(MethodCount)

	return r.PersonRepository.Count(ctx)
}

// Delete records the call and delegates.
func (r *PersonRepository) Delete(ctx context.Context, p domain.Person) error {
	r.record(MethodDelete)

	return r.PersonRepository.Delete(ctx, p)
}

// Calls returns how many times method was called.
func (r *PersonRepository) Calls(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.calls[method]
}
