// Package testutil provides helpers for repository tests backed by a real
// sqlite database in a temporary directory.
package testutil

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"inkatlas/backend/internal/db"
	"inkatlas/backend/internal/snowflake"
)

var snowflakeOnce sync.Once

// NewTestDB opens a fresh migrated database for one test and closes it on
// cleanup. The snowflake node is initialized once for ID generation.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(1); err != nil {
			t.Fatalf("init snowflake: %v", err)
		}
	})

	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}
