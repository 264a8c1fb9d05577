package sqlite_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/emicon/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_ConcurrentAccessReturnsSameConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	defer func() { _ = lazy.Close() }()

	const workers = 8
	var wg sync.WaitGroup
	results := make([]any, workers)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			assert.NoError(t, err)
			results[i] = db
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestLazyDB_MigratesSchema(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	defer func() { _ = lazy.Close() }()

	db, err := lazy.DB(ctx)
	require.NoError(t, err)

	version, err := sqlite.MigrationVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestLazyDB_EmptyPathFails(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(testCtx())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database initialization failed")
	assert.False(t, lazy.IsInitialized())
}
