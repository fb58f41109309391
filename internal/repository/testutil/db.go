package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode"

	"github.com/souvikjs01/unkey/internal/db"
	"github.com/souvikjs01/unkey/internal/model"
	"github.com/souvikjs01/unkey/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce initializes the ID generator once across parallel tests.
var snowflakeOnce sync.Once

// NewTestDB opens a private in-memory sqlite database with all migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// shared cache lets every pooled connection see the same memory database;
	// the unique name keeps tests apart.
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, t.Name())
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

func ptrVal[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

// SeedWorkspace inserts ws and returns its ID. Zero ID and CreatedAtM are filled in.
func SeedWorkspace(t *testing.T, db *sql.DB, ws model.Workspace) string {
	t.Helper()

	if ws.ID == "" {
		ws.ID = snowflake.NewID("ws")
	}
	if ws.Name == "" {
		ws.Name = "workspace"
	}
	if ws.CreatedAtM == 0 {
		ws.CreatedAtM = time.Now().UnixMilli()
	}

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO workspaces (id, org_id, name, created_at_m, updated_at_m, deleted_at_m) VALUES (?, ?, ?, ?, ?, ?)`,
		ws.ID, ws.OrgID, ws.Name, ws.CreatedAtM, ptrVal(ws.UpdatedAtM), ptrVal(ws.DeletedAtM),
	)
	if err != nil {
		t.Fatalf("failed to seed workspace: %v", err)
	}

	return ws.ID
}

// SeedNamespace inserts ns and returns its ID.
func SeedNamespace(t *testing.T, db *sql.DB, ns model.RatelimitNamespace) string {
	t.Helper()

	if ns.ID == "" {
		ns.ID = snowflake.NewID("rlns")
	}
	if ns.CreatedAtM == 0 {
		ns.CreatedAtM = time.Now().UnixMilli()
	}

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO ratelimit_namespaces (id, workspace_id, name, created_at_m, updated_at_m, deleted_at_m) VALUES (?, ?, ?, ?, ?, ?)`,
		ns.ID, ns.WorkspaceID, ns.Name, ns.CreatedAtM, ptrVal(ns.UpdatedAtM), ptrVal(ns.DeletedAtM),
	)
	if err != nil {
		t.Fatalf("failed to seed namespace: %v", err)
	}

	return ns.ID
}

func Millis(v int64) *int64 {
	return &v
}
