// Package testutil provides test helpers for packages that need a
// real storage backend.
package testutil

import (
	"context"
	"testing"

	"github.com/groupwatch/groupwatch/internal/service"
	"github.com/groupwatch/groupwatch/internal/storage"
)

// TestDB wraps an in-memory storage instance for tests.
type TestDB struct {
	Storage service.Storage
	t       *testing.T
}

// SetupTestDB creates a migrated in-memory SQLite database and
// registers cleanup on the test.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage: store,
		t:       t,
	}
}
