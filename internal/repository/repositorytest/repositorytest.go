// Package repositorytest provides a Store backed by a private in-memory
// SQLite database for tests.
package repositorytest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"asq/internal/capability"
	"asq/internal/db"
	"asq/internal/repository"
)

// NewStore returns an initialized Store that is closed when the test ends.
func NewStore(t testing.TB) *repository.Store {
	t.Helper()

	gormDB, err := db.NewSQLite("file:"+uuid.NewString()+"?mode=memory&cache=shared", nil)
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store := repository.NewStore(gormDB)
	require.NoError(t, capability.CreateAllTables(context.Background(), store))
	return store
}
