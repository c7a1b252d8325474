// Package storetest holds the behavioural contract every ports.PersonRepository
// implementation must satisfy. Backend packages run it from their own tests.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/greeter/internal/core/domain"
	"github.com/lueurxax/greeter/internal/core/ports"
)

// Factory returns an empty repository for a single subtest.
type Factory func(t *testing.T) ports.PersonRepository

// People is the fixture shared by repository and service tests.
func People() []domain.Person {
	return []domain.Person{
		domain.NewPerson(1, "Grace", "Hopper", 1906, time.December, 9),
		domain.NewPerson(2, "Ada", "Lovelace", 1815, time.December, 10),
		domain.NewPerson(3, "Adele", "Goldberg", 1945, time.July, 7),
		domain.NewPerson(4, "Anita", "Borg", 1949, time.January, 17),
		domain.NewPerson(5, "Barbara", "Liskov", 1939, time.November, 7),
	}
}

// RunPersonRepositoryContract runs the PersonRepository contract against repositories built by newRepo.
func RunPersonRepositoryContract(t *testing.T, newRepo Factory) {
	t.Helper()

	ctx := context.Background()

	t.Run("save then find returns equal content", func(t *testing.T) {
		repo := newRepo(t)
		hopper := People()[0]

		saved, err := repo.Save(ctx, hopper)
		require.NoError(t, err)
		assert.Equal(t, hopper, saved)

		got, ok, err := repo.FindByID(ctx, hopper.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, hopper, got)
	})

	t.Run("find missing id is not an error", func(t *testing.T) {
		repo := newRepo(t)

		got, ok, err := repo.FindByID(ctx, 100)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, domain.Person{}, got)
	})

	t.Run("zero id is assigned max plus one", func(t *testing.T) {
		repo := newRepo(t)

		first, err := repo.Save(ctx, domain.Person{First: "Grace", Last: "Hopper", BirthDate: People()[0].BirthDate})
		require.NoError(t, err)
		assert.Equal(t, 1, first.ID)

		_, err = repo.Save(ctx, People()[4])
		require.NoError(t, err)

		next, err := repo.Save(ctx, domain.Person{First: "Ada", Last: "Lovelace", BirthDate: People()[1].BirthDate})
		require.NoError(t, err)
		assert.Equal(t, 6, next.ID)
	})

	t.Run("assigned id stays positive after negative ids", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Save(ctx, domain.Person{ID: -1, First: "Minus", Last: "One"})
		require.NoError(t, err)

		first, err := repo.Save(ctx, domain.Person{First: "Grace", Last: "Hopper"})
		require.NoError(t, err)
		assert.Equal(t, 1, first.ID)

		first.Last = "Murray Hopper"
		_, err = repo.Save(ctx, first)
		require.NoError(t, err)

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		got, ok, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Murray Hopper", got.Last)
	})

	t.Run("duplicate id overwrites", func(t *testing.T) {
		repo := newRepo(t)
		hopper := People()[0]

		_, err := repo.Save(ctx, hopper)
		require.NoError(t, err)

		renamed := hopper
		renamed.First = "Amazing Grace"

		_, err = repo.Save(ctx, renamed)
		require.NoError(t, err)

		got, ok, err := repo.FindByID(ctx, hopper.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Amazing Grace", got.First)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("count matches find all", func(t *testing.T) {
		repo := newRepo(t)

		for _, p := range People() {
			_, err := repo.Save(ctx, p)
			require.NoError(t, err)
		}

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, count)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, count)
		assert.Equal(t, People(), all)
	})

	t.Run("find all snapshot is independent", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Save(ctx, People()[0])
		require.NoError(t, err)

		snapshot, err := repo.FindAll(ctx)
		require.NoError(t, err)
		snapshot[0].First = "changed"

		got, _, err := repo.FindByID(ctx, People()[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Grace", got.First)
	})

	t.Run("delete removes by id", func(t *testing.T) {
		repo := newRepo(t)
		lovelace := People()[1]

		_, err := repo.Save(ctx, lovelace)
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, domain.Person{ID: lovelace.ID}))

		_, ok, err := repo.FindByID(ctx, lovelace.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("delete missing is a no-op", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Save(ctx, People()[2])
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, domain.Person{ID: 42}))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
