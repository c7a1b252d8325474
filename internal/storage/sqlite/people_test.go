package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/greeter/internal/core/domain"
	"github.com/lueurxax/greeter/internal/core/ports"
	"github.com/lueurxax/greeter/internal/storage/storetest"
)

func openMemory(t *testing.T) *DB {
	t.Helper()

	db, err := Open(context.Background(), MemoryPath, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("close sqlite: %v", err)
		}
	})

	return db
}

func TestPersonRepository_Contract(t *testing.T) {
	storetest.RunPersonRepositoryContract(t, func(t *testing.T) ports.PersonRepository {
		return NewPersonRepository(openMemory(t))
	})
}

func TestPersonRepository_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "people.db")

	first, err := Open(ctx, path, nil)
	require.NoError(t, err)

	hopper := storetest.People()[0]
	_, err = NewPersonRepository(first).Save(ctx, hopper)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(ctx, path, nil)
	require.NoError(t, err)

	defer second.Close()

	got, ok, err := NewPersonRepository(second).FindByID(ctx, hopper.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, hopper, got)
}

func TestPersonRepository_ZeroBirthDate(t *testing.T) {
	ctx := context.Background()
	repo := NewPersonRepository(openMemory(t))

	saved, err := repo.Save(ctx, domain.Person{First: "Grace"})
	require.NoError(t, err)

	got, ok, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.BirthDate.IsZero())
}

func TestPersonRepository_ClosedDatabaseFails(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, MemoryPath, nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	repo := NewPersonRepository(db)

	_, err = repo.Count(ctx)
	require.Error(t, err)

	_, err = repo.Save(ctx, storetest.People()[0])
	require.Error(t, err)

	assert.Error(t, db.Ping(ctx))
}
