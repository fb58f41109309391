package testutil

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/souvikjs01/unkey/internal/model"
	"github.com/souvikjs01/unkey/internal/query"
	"github.com/souvikjs01/unkey/internal/repository"
)

// Repositories is a backend under test.
type Repositories struct {
	Workspaces repository.WorkspaceRepository
	Namespaces repository.RatelimitNamespaceRepository
}

// OverviewSpec is the lookup the rate limit overview page issues.
func OverviewSpec(orgID string) query.Spec {
	return query.Spec{
		Where: query.And(query.Eq("org_id", orgID), query.IsNull("deleted_at_m")),
		With: map[string]query.Include{
			repository.RelationRatelimitNamespaces: {
				Where:   query.IsNull("deleted_at_m"),
				Columns: []string{"id", "name"},
			},
		},
	}
}

// RunRepositoryContract runs the behaviour every backend must share.
func RunRepositoryContract(t *testing.T, open func(t *testing.T, db *sql.DB) Repositories) {
	ctx := context.Background()

	t.Run("live workspace with live and deleted namespaces", func(t *testing.T) {
		db := NewTestDB(t)
		repos := open(t, db)

		wsID := SeedWorkspace(t, db, model.Workspace{ID: "ws_w1", OrgID: "A"})
		SeedNamespace(t, db, model.RatelimitNamespace{ID: "ns1", WorkspaceID: wsID, Name: "alpha", CreatedAtM: 1})
		SeedNamespace(t, db, model.RatelimitNamespace{ID: "ns2", WorkspaceID: wsID, Name: "beta", CreatedAtM: 2, DeletedAtM: Millis(1704067200000)})

		ws, err := repos.Workspaces.FindFirst(ctx, OverviewSpec("A"))
		require.NoError(t, err)
		require.NotNil(t, ws)
		require.Equal(t, "ws_w1", ws.ID)
		require.Equal(t, []model.RatelimitNamespace{{ID: "ns1", Name: "alpha"}}, ws.RatelimitNamespaces)
	})

	t.Run("workspace without namespaces has an empty list", func(t *testing.T) {
		db := NewTestDB(t)
		repos := open(t, db)

		SeedWorkspace(t, db, model.Workspace{OrgID: "A"})

		ws, err := repos.Workspaces.FindFirst(ctx, OverviewSpec("A"))
		require.NoError(t, err)
		require.NotNil(t, ws)
		require.NotNil(t, ws.RatelimitNamespaces)
		require.Empty(t, ws.RatelimitNamespaces)
	})

	t.Run("no workspace row", func(t *testing.T) {
		db := NewTestDB(t)
		repos := open(t, db)

		ws, err := repos.Workspaces.FindFirst(ctx, OverviewSpec("B"))
		require.NoError(t, err)
		require.Nil(t, ws)
	})

	t.Run("soft deleted workspace is not found", func(t *testing.T) {
		db := NewTestDB(t)
		repos := open(t, db)

		wsID := SeedWorkspace(t, db, model.Workspace{OrgID: "C", DeletedAtM: Millis(1704067200000)})
		SeedNamespace(t, db, model.RatelimitNamespace{WorkspaceID: wsID, Name: "alpha"})

		ws, err := repos.Workspaces.FindFirst(ctx, OverviewSpec("C"))
		require.NoError(t, err)
		require.Nil(t, ws)
	})

	t.Run("other organization is never selected", func(t *testing.T) {
		db := NewTestDB(t)
		repos := open(t, db)

		other := SeedWorkspace(t, db, model.Workspace{OrgID: "other"})
		SeedNamespace(t, db, model.RatelimitNamespace{WorkspaceID: other, Name: "foreign"})
		mine := SeedWorkspace(t, db, model.Workspace{OrgID: "A"})
		SeedNamespace(t, db, model.RatelimitNamespace{ID: "ns_mine", WorkspaceID: mine, Name: "mine"})

		ws, err := repos.Workspaces.FindFirst(ctx, OverviewSpec("A"))
		require.NoError(t, err)
		require.NotNil(t, ws)
		require.Equal(t, mine, ws.ID)
		require.Equal(t, []model.RatelimitNamespace{{ID: "ns_mine", Name: "mine"}}, ws.RatelimitNamespaces)
	})

	t.Run("first live workspace by creation time wins", func(t *testing.T) {
		db := NewTestDB(t)
		repos := open(t, db)

		SeedWorkspace(t, db, model.Workspace{ID: "ws_deleted", OrgID: "A", CreatedAtM: 1, DeletedAtM: Millis(5)})
		SeedWorkspace(t, db, model.Workspace{ID: "ws_newer", OrgID: "A", CreatedAtM: 20})
		SeedWorkspace(t, db, model.Workspace{ID: "ws_older", OrgID: "A", CreatedAtM: 10})

		ws, err := repos.Workspaces.FindFirst(ctx, OverviewSpec("A"))
		require.NoError(t, err)
		require.NotNil(t, ws)
		require.Equal(t, "ws_older", ws.ID)
	})

	t.Run("namespaces ordered by creation and fully loaded without projection", func(t *testing.T) {
		db := NewTestDB(t)
		repos := open(t, db)

		wsID := SeedWorkspace(t, db, model.Workspace{OrgID: "A"})
		SeedNamespace(t, db, model.RatelimitNamespace{ID: "ns_b", WorkspaceID: wsID, Name: "second", CreatedAtM: 20})
		SeedNamespace(t, db, model.RatelimitNamespace{ID: "ns_a", WorkspaceID: wsID, Name: "first", CreatedAtM: 10})

		spec := OverviewSpec("A")
		spec.With[repository.RelationRatelimitNamespaces] = query.Include{Where: query.IsNull("deleted_at_m")}

		ws, err := repos.Workspaces.FindFirst(ctx, spec)
		require.NoError(t, err)
		require.NotNil(t, ws)
		require.Len(t, ws.RatelimitNamespaces, 2)
		require.Equal(t, "ns_a", ws.RatelimitNamespaces[0].ID)
		require.Equal(t, wsID, ws.RatelimitNamespaces[0].WorkspaceID)
		require.Equal(t, int64(10), ws.RatelimitNamespaces[0].CreatedAtM)
		require.Equal(t, "ns_b", ws.RatelimitNamespaces[1].ID)
	})

	t.Run("without relations only the workspace is loaded", func(t *testing.T) {
		db := NewTestDB(t)
		repos := open(t, db)

		wsID := SeedWorkspace(t, db, model.Workspace{OrgID: "A", Name: "acme"})
		SeedNamespace(t, db, model.RatelimitNamespace{WorkspaceID: wsID, Name: "alpha"})

		ws, err := repos.Workspaces.FindFirst(ctx, query.Spec{Where: query.Eq("org_id", "A")})
		require.NoError(t, err)
		require.NotNil(t, ws)
		require.Equal(t, "acme", ws.Name)
		require.Nil(t, ws.RatelimitNamespaces)
	})

	t.Run("unknown columns and relations are rejected", func(t *testing.T) {
		db := NewTestDB(t)
		repos := open(t, db)

		_, err := repos.Workspaces.FindFirst(ctx, query.Spec{Where: query.Eq("password", "x")})
		require.ErrorIs(t, err, query.ErrUnknownColumn)

		spec := OverviewSpec("A")
		spec.With[repository.RelationRatelimitNamespaces] = query.Include{Columns: []string{"id", "secret"}}
		_, err = repos.Workspaces.FindFirst(ctx, spec)
		require.ErrorIs(t, err, query.ErrUnknownColumn)

		_, err = repos.Workspaces.FindFirst(ctx, query.Spec{With: map[string]query.Include{"keys": {}}})
		var relErr *repository.UnknownRelationError
		require.True(t, errors.As(err, &relErr))
		require.Equal(t, "keys", relErr.Relation)
	})

	t.Run("create and soft delete workspace", func(t *testing.T) {
		db := NewTestDB(t)
		repos := open(t, db)

		created, err := repos.Workspaces.Create(ctx, "A", "acme")
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		require.Equal(t, "A", created.OrgID)

		ws, err := repos.Workspaces.FindFirst(ctx, OverviewSpec("A"))
		require.NoError(t, err)
		require.NotNil(t, ws)
		require.Equal(t, created.ID, ws.ID)

		require.NoError(t, repos.Workspaces.SoftDelete(ctx, created.ID))
		require.ErrorIs(t, repos.Workspaces.SoftDelete(ctx, created.ID), sql.ErrNoRows)

		ws, err = repos.Workspaces.FindFirst(ctx, OverviewSpec("A"))
		require.NoError(t, err)
		require.Nil(t, ws)
	})

	t.Run("namespace lifecycle", func(t *testing.T) {
		db := NewTestDB(t)
		repos := open(t, db)

		wsID := SeedWorkspace(t, db, model.Workspace{OrgID: "A"})
		otherID := SeedWorkspace(t, db, model.Workspace{OrgID: "B"})

		created, err := repos.Namespaces.Create(ctx, wsID, "api.requests")
		require.NoError(t, err)
		require.Equal(t, wsID, created.WorkspaceID)

		found, err := repos.Namespaces.FindByName(ctx, wsID, "api.requests")
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Equal(t, created.ID, found.ID)

		missing, err := repos.Namespaces.FindByName(ctx, otherID, "api.requests")
		require.NoError(t, err)
		require.Nil(t, missing)

		require.ErrorIs(t, repos.Namespaces.SoftDelete(ctx, otherID, created.ID), sql.ErrNoRows)
		require.NoError(t, repos.Namespaces.SoftDelete(ctx, wsID, created.ID))
		require.ErrorIs(t, repos.Namespaces.SoftDelete(ctx, wsID, created.ID), sql.ErrNoRows)

		found, err = repos.Namespaces.FindByName(ctx, wsID, "api.requests")
		require.NoError(t, err)
		require.Nil(t, found)

		// the name is free again once the old namespace is deleted
		_, err = repos.Namespaces.Create(ctx, wsID, "api.requests")
		require.NoError(t, err)
	})

	t.Run("second live namespace with the same name is a duplicate", func(t *testing.T) {
		db := NewTestDB(t)
		repos := open(t, db)

		wsID := SeedWorkspace(t, db, model.Workspace{OrgID: "A"})
		otherID := SeedWorkspace(t, db, model.Workspace{OrgID: "B"})

		_, err := repos.Namespaces.Create(ctx, wsID, "api")
		require.NoError(t, err)

		_, err = repos.Namespaces.Create(ctx, wsID, "api")
		require.ErrorIs(t, err, repository.ErrDuplicate)

		_, err = repos.Namespaces.Create(ctx, otherID, "api")
		require.NoError(t, err)
	})

	t.Run("purge removes only namespaces deleted before the cutoff", func(t *testing.T) {
		db := NewTestDB(t)
		repos := open(t, db)

		wsID := SeedWorkspace(t, db, model.Workspace{OrgID: "A"})
		SeedNamespace(t, db, model.RatelimitNamespace{ID: "old", WorkspaceID: wsID, Name: "old", DeletedAtM: Millis(100)})
		SeedNamespace(t, db, model.RatelimitNamespace{ID: "recent", WorkspaceID: wsID, Name: "recent", DeletedAtM: Millis(900)})
		SeedNamespace(t, db, model.RatelimitNamespace{ID: "live", WorkspaceID: wsID, Name: "live"})

		purged, err := repos.Namespaces.PurgeDeleted(ctx, 500)
		require.NoError(t, err)
		require.Equal(t, int64(1), purged)

		var remaining []string
		rows, err := db.QueryContext(ctx, `SELECT id FROM ratelimit_namespaces ORDER BY id`)
		require.NoError(t, err)
		defer rows.Close()
		for rows.Next() {
			var id string
			require.NoError(t, rows.Scan(&id))
			remaining = append(remaining, id)
		}
		require.NoError(t, rows.Err())
		require.Equal(t, []string{"live", "recent"}, remaining)

		purged, err = repos.Namespaces.PurgeDeleted(ctx, 500)
		require.NoError(t, err)
		require.Zero(t, purged)
	})
}
