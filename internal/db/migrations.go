package db

import (
	"database/sql"
	"fmt"
)

// Timestamps are unix milliseconds; a NULL deleted_at_m marks a live row.
const baseSchema = `
CREATE TABLE IF NOT EXISTS workspaces (
  id TEXT PRIMARY KEY,
  org_id TEXT NOT NULL,
  name TEXT NOT NULL,
  created_at_m INTEGER NOT NULL,
  updated_at_m INTEGER,
  deleted_at_m INTEGER
);

CREATE INDEX IF NOT EXISTS idx_workspaces_org_id ON workspaces(org_id);

CREATE TABLE IF NOT EXISTS ratelimit_namespaces (
  id TEXT PRIMARY KEY,
  workspace_id TEXT NOT NULL,
  name TEXT NOT NULL,
  created_at_m INTEGER NOT NULL,
  updated_at_m INTEGER,
  deleted_at_m INTEGER,
  FOREIGN KEY (workspace_id) REFERENCES workspaces(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_ratelimit_namespaces_workspace_id ON ratelimit_namespaces(workspace_id);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: names are unique among live namespaces of a workspace only,
	// so a soft-deleted name can be reused.
	if _, err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_ratelimit_namespaces_live_name
		ON ratelimit_namespaces(workspace_id, name) WHERE deleted_at_m IS NULL
	`); err != nil {
		return fmt.Errorf("create idx_ratelimit_namespaces_live_name: %w", err)
	}

	// Migration 2: partial index for the org lookup on live workspaces
	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_workspaces_live_org
		ON workspaces(org_id, created_at_m) WHERE deleted_at_m IS NULL
	`); err != nil {
		return fmt.Errorf("create idx_workspaces_live_org: %w", err)
	}

	// Migration 3: updated_at_m was added after the first release
	for _, table := range []string{"workspaces", "ratelimit_namespaces"} {
		exists, err := hasColumn(db, table, "updated_at_m")
		if err != nil {
			return fmt.Errorf("check %s.updated_at_m: %w", table, err)
		}
		if !exists {
			if _, err := db.Exec(fmt.Sprintf(`ALTER TABLE %s ADD COLUMN updated_at_m INTEGER`, table)); err != nil {
				return fmt.Errorf("add %s.updated_at_m: %w", table, err)
			}
		}
	}

	return nil
}

func hasColumn(db *sql.DB, table string, column string) (bool, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
