package db_test

import (
	"database/sql"
	"testing"

	"github.com/souvikjs01/unkey/internal/db"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	database, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestMigrate_Idempotent(t *testing.T) {
	database := openMemory(t)

	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Migrate(database))
}

func TestMigrate_LiveNamespaceNamesAreUnique(t *testing.T) {
	database := openMemory(t)
	require.NoError(t, db.Migrate(database))

	_, err := database.Exec(`INSERT INTO workspaces (id, org_id, name, created_at_m) VALUES ('ws_1', 'org_a', 'acme', 1)`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO ratelimit_namespaces (id, workspace_id, name, created_at_m, deleted_at_m) VALUES ('rlns_1', 'ws_1', 'api', 1, 2)`)
	require.NoError(t, err)

	// the deleted row does not block reuse of its name
	_, err = database.Exec(`INSERT INTO ratelimit_namespaces (id, workspace_id, name, created_at_m) VALUES ('rlns_2', 'ws_1', 'api', 3)`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO ratelimit_namespaces (id, workspace_id, name, created_at_m) VALUES ('rlns_3', 'ws_1', 'api', 4)`)
	require.Error(t, err)
}

func TestMigrate_AddsUpdatedAtColumn(t *testing.T) {
	database := openMemory(t)

	_, err := database.Exec(`
		CREATE TABLE workspaces (
			id TEXT PRIMARY KEY,
			org_id TEXT NOT NULL,
			name TEXT NOT NULL,
			created_at_m INTEGER NOT NULL,
			deleted_at_m INTEGER
		);
		CREATE TABLE ratelimit_namespaces (
			id TEXT PRIMARY KEY,
			workspace_id TEXT NOT NULL,
			name TEXT NOT NULL,
			created_at_m INTEGER NOT NULL,
			deleted_at_m INTEGER
		);
	`)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(database))

	for _, table := range []string{"workspaces", "ratelimit_namespaces"} {
		var count int
		err := database.QueryRow(`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = 'updated_at_m'`, table).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count, table)
	}
}
