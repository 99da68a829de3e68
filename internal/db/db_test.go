package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"inkatlas/backend/internal/db"
)

func TestOpen_CreatesSchema(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer conn.Close()

	for _, table := range []string{"settings", "search_history"} {
		var name string
		err := conn.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	conn, err := db.Open(path)
	require.NoError(t, err)
	require.NoError(t, conn.Close())
}

func TestMigrate_Idempotent(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, db.Migrate(conn))
}
