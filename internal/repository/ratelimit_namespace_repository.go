//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/souvikjs01/unkey/internal/model"
	"github.com/souvikjs01/unkey/pkg/snowflake"
)

// RatelimitNamespaceRepository defines the interface for rate limit namespace storage.
type RatelimitNamespaceRepository interface {
	// Create returns ErrDuplicate when a live namespace already has name.
	Create(ctx context.Context, workspaceID, name string) (*model.RatelimitNamespace, error)
	// FindByName only considers live namespaces. Returns nil when none matches.
	FindByName(ctx context.Context, workspaceID, name string) (*model.RatelimitNamespace, error)
	SoftDelete(ctx context.Context, workspaceID, id string) error
	// PurgeDeleted removes namespaces soft deleted before the given unix
	// millisecond and reports how many rows went away.
	PurgeDeleted(ctx context.Context, before int64) (int64, error)
}

type ratelimitNamespaceRepository struct {
	db dbtx
}

// NewRatelimitNamespaceRepository creates a new rate limit namespace repository.
func NewRatelimitNamespaceRepository(db *sql.DB) RatelimitNamespaceRepository {
	return &ratelimitNamespaceRepository{db: db}
}

// Create inserts a live namespace under workspaceID. A live namespace with
// the same name yields ErrDuplicate.
func (r *ratelimitNamespaceRepository) Create(ctx context.Context, workspaceID, name string) (*model.RatelimitNamespace, error) {
	id := snowflake.NewID("rlns")
	now := nowMillis()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ratelimit_namespaces (id, workspace_id, name, created_at_m, updated_at_m)
		VALUES (?, ?, ?, ?, ?)
	`, id, workspaceID, name, now, now)
	if err != nil {
		return nil, TranslateError(err)
	}

	return &model.RatelimitNamespace{
		ID:          id,
		WorkspaceID: workspaceID,
		Name:        name,
		CreatedAtM:  now,
		UpdatedAtM:  &now,
	}, nil
}

func (r *ratelimitNamespaceRepository) FindByName(ctx context.Context, workspaceID, name string) (*model.RatelimitNamespace, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, workspace_id, name, created_at_m, updated_at_m, deleted_at_m
		FROM ratelimit_namespaces
		WHERE workspace_id = ? AND name = ? AND deleted_at_m IS NULL
	`, workspaceID, name)

	var n namespaceRow
	if err := row.Scan(&n.id, &n.workspaceID, &n.name, &n.createdAtM, &n.updatedAtM, &n.deletedAtM); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	ns := n.toModel()
	return &ns, nil
}

// SoftDelete marks a live namespace deleted. Returns sql.ErrNoRows when the
// namespace does not exist, belongs to another workspace or is already deleted.
func (r *ratelimitNamespaceRepository) SoftDelete(ctx context.Context, workspaceID, id string) error {
	now := nowMillis()
	result, err := r.db.ExecContext(ctx, `
		UPDATE ratelimit_namespaces SET deleted_at_m = ?, updated_at_m = ?
		WHERE id = ? AND workspace_id = ? AND deleted_at_m IS NULL
	`, now, now, id, workspaceID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ratelimitNamespaceRepository) PurgeDeleted(ctx context.Context, before int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM ratelimit_namespaces
		WHERE deleted_at_m IS NOT NULL AND deleted_at_m < ?
	`, before)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// namespaceRow holds nullable scan targets; LEFT JOINed rows may be all NULL.
type namespaceRow struct {
	id          sql.NullString
	workspaceID sql.NullString
	name        sql.NullString
	createdAtM  sql.NullInt64
	updatedAtM  sql.NullInt64
	deletedAtM  sql.NullInt64
}

func (n *namespaceRow) target(column string) any {
	switch column {
	case "id":
		return &n.id
	case "workspace_id":
		return &n.workspaceID
	case "name":
		return &n.name
	case "created_at_m":
		return &n.createdAtM
	case "updated_at_m":
		return &n.updatedAtM
	case "deleted_at_m":
		return &n.deletedAtM
	}
	// columns are validated against NamespaceColumns before scanning
	panic("repository: unhandled namespace column " + column)
}

func (n namespaceRow) toModel() model.RatelimitNamespace {
	return model.RatelimitNamespace{
		ID:          n.id.String,
		WorkspaceID: n.workspaceID.String,
		Name:        n.name.String,
		CreatedAtM:  n.createdAtM.Int64,
		UpdatedAtM:  int64Ptr(n.updatedAtM),
		DeletedAtM:  int64Ptr(n.deletedAtM),
	}
}
