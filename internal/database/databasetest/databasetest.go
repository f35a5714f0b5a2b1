// Package databasetest provides throwaway in-memory databases for tests.
package databasetest

import (
	"fmt"
	"testing"
	"time"

	"glossary-backend/internal/config"
	"glossary-backend/internal/database"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
)

// New returns a migrated SQLite database that lives for the duration of the test.
// The pool is pinned to a single connection so the in-memory schema is shared by
// every query, including those run inside transactions.
func New(t testing.TB) *database.Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(sqlite.Open(dsn), config.DatabaseConfig{
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		QueryTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})
	return db
}
