package repository_test

import (
	"context"
	"testing"

	"github.com/souvikjs01/unkey/internal/model"
	"github.com/souvikjs01/unkey/internal/repository"
	"github.com/souvikjs01/unkey/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestRatelimitNamespaceRepository_Timestamps(t *testing.T) {
	db := testutil.NewTestDB(t)
	restore := repository.SetNowMillis(func() int64 { return 1704067200000 })
	defer restore()

	repo := repository.NewRatelimitNamespaceRepository(db)
	ctx := context.Background()
	wsID := testutil.SeedWorkspace(t, db, model.Workspace{OrgID: "A"})

	created, err := repo.Create(ctx, wsID, "alpha")
	require.NoError(t, err)
	require.Equal(t, int64(1704067200000), created.CreatedAtM)
	require.NotNil(t, created.UpdatedAtM)
	require.Nil(t, created.DeletedAtM)

	require.NoError(t, repo.SoftDelete(ctx, wsID, created.ID))

	var deletedAt int64
	err = db.QueryRowContext(ctx, `SELECT deleted_at_m FROM ratelimit_namespaces WHERE id = ?`, created.ID).Scan(&deletedAt)
	require.NoError(t, err)
	require.Equal(t, int64(1704067200000), deletedAt)
}

func TestRatelimitNamespaceRepository_DuplicateLiveName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewRatelimitNamespaceRepository(db)
	ctx := context.Background()
	wsID := testutil.SeedWorkspace(t, db, model.Workspace{OrgID: "A"})

	_, err := repo.Create(ctx, wsID, "alpha")
	require.NoError(t, err)

	_, err = repo.Create(ctx, wsID, "alpha")
	require.ErrorIs(t, err, repository.ErrDuplicate)
}
