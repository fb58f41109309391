//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/souvikjs01/unkey/internal/model"
	"github.com/souvikjs01/unkey/internal/query"
	"github.com/souvikjs01/unkey/pkg/snowflake"
)

// WorkspaceRepository defines the interface for workspace storage.
type WorkspaceRepository interface {
	// FindFirst returns the oldest workspace matching spec.Where, or nil when
	// none matches. Relations named in spec.With are loaded with their own
	// filter and projection.
	FindFirst(ctx context.Context, spec query.Spec) (*model.Workspace, error)
	Create(ctx context.Context, orgID, name string) (*model.Workspace, error)
	SoftDelete(ctx context.Context, id string) error
}

type workspaceRepository struct {
	db dbtx
}

// NewWorkspaceRepository creates a new workspace repository.
func NewWorkspaceRepository(db *sql.DB) WorkspaceRepository {
	return &workspaceRepository{db: db}
}

var workspaceSelectColumns = []string{"id", "org_id", "name", "created_at_m", "updated_at_m", "deleted_at_m"}

// FindFirst issues a single statement: the matching workspace is picked in a
// subquery and its namespaces are LEFT JOINed with the include filter.
func (r *workspaceRepository) FindFirst(ctx context.Context, spec query.Spec) (*model.Workspace, error) {
	if err := WorkspaceColumns.Validate(spec.Where.Columns()...); err != nil {
		return nil, err
	}
	include, withNamespaces, err := NamespaceInclude(spec)
	if err != nil {
		return nil, err
	}

	first := sq.Select(workspaceSelectColumns...).
		From("workspaces").
		OrderBy("created_at_m", "id").
		Limit(1)
	if where := spec.Where.Sqlizer(""); where != nil {
		first = first.Where(where)
	}

	if !withNamespaces {
		sqlStr, args, err := first.ToSql()
		if err != nil {
			return nil, fmt.Errorf("build workspace query: %w", err)
		}
		var ws model.Workspace
		var updatedAt, deletedAt sql.NullInt64
		err = r.db.QueryRowContext(ctx, sqlStr, args...).
			Scan(&ws.ID, &ws.OrgID, &ws.Name, &ws.CreatedAtM, &updatedAt, &deletedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, nil
			}
			return nil, err
		}
		ws.UpdatedAtM = int64Ptr(updatedAt)
		ws.DeletedAtM = int64Ptr(deletedAt)
		return &ws, nil
	}

	columns := make([]string, 0, len(workspaceSelectColumns)+1+len(include.Columns))
	for _, c := range workspaceSelectColumns {
		columns = append(columns, "w."+c)
	}
	// n.id doubles as the marker telling an empty LEFT JOIN apart from a match.
	columns = append(columns, "n.id")
	for _, c := range include.Columns {
		columns = append(columns, "n."+c)
	}

	join := "ratelimit_namespaces n ON n.workspace_id = w.id"
	nsWhere, nsArgs, err := query.ToSQL(include.Where, "n")
	if err != nil {
		return nil, fmt.Errorf("build namespace filter: %w", err)
	}
	if nsWhere != "" {
		join += " AND " + nsWhere
	}

	sqlStr, args, err := sq.Select(columns...).
		FromSelect(first, "w").
		LeftJoin(join, nsArgs...).
		OrderBy("n.created_at_m", "n.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build workspace query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ws *model.Workspace
	for rows.Next() {
		var w model.Workspace
		var updatedAt, deletedAt sql.NullInt64
		var marker sql.NullString
		var row namespaceRow
		dest := []any{&w.ID, &w.OrgID, &w.Name, &w.CreatedAtM, &updatedAt, &deletedAt, &marker}
		for _, c := range include.Columns {
			dest = append(dest, row.target(c))
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		if ws == nil {
			w.UpdatedAtM = int64Ptr(updatedAt)
			w.DeletedAtM = int64Ptr(deletedAt)
			w.RatelimitNamespaces = []model.RatelimitNamespace{}
			ws = &w
		}
		if marker.Valid {
			ws.RatelimitNamespaces = append(ws.RatelimitNamespaces, row.toModel())
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ws, nil
}

// Create creates a new live workspace for orgID.
func (r *workspaceRepository) Create(ctx context.Context, orgID, name string) (*model.Workspace, error) {
	id := snowflake.NewID("ws")
	now := nowMillis()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workspaces (id, org_id, name, created_at_m, updated_at_m)
		VALUES (?, ?, ?, ?, ?)
	`, id, orgID, name, now, now)
	if err != nil {
		return nil, err
	}

	return &model.Workspace{
		ID:         id,
		OrgID:      orgID,
		Name:       name,
		CreatedAtM: now,
		UpdatedAtM: &now,
	}, nil
}

// SoftDelete marks a live workspace deleted. Returns sql.ErrNoRows when no live row matches.
func (r *workspaceRepository) SoftDelete(ctx context.Context, id string) error {
	now := nowMillis()
	result, err := r.db.ExecContext(ctx, `
		UPDATE workspaces SET deleted_at_m = ?, updated_at_m = ? WHERE id = ? AND deleted_at_m IS NULL
	`, now, now, id)
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
