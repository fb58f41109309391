package gormrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/souvikjs01/unkey/internal/model"
	"github.com/souvikjs01/unkey/internal/query"
	"github.com/souvikjs01/unkey/internal/repository"
	"github.com/souvikjs01/unkey/pkg/snowflake"
)

// WorkspaceRepository is a GORM-backed implementation of repository.WorkspaceRepository.
type WorkspaceRepository struct {
	db *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// FindFirst loads the workspace and preloads namespaces in a second statement.
func (r *WorkspaceRepository) FindFirst(ctx context.Context, spec query.Spec) (*model.Workspace, error) {
	if err := repository.WorkspaceColumns.Validate(spec.Where.Columns()...); err != nil {
		return nil, err
	}
	include, withNamespaces, err := repository.NamespaceInclude(spec)
	if err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).Order("created_at_m, id").Limit(1)
	where, args, err := query.ToSQL(spec.Where, "")
	if err != nil {
		return nil, fmt.Errorf("build workspace filter: %w", err)
	}
	if where != "" {
		tx = tx.Where(where, args...)
	}

	projected := query.NewColumnSet(include.Columns...)
	if withNamespaces {
		nsWhere, nsArgs, err := query.ToSQL(include.Where, "")
		if err != nil {
			return nil, fmt.Errorf("build namespace filter: %w", err)
		}
		selected := include.Columns
		if !projected.Has("workspace_id") {
			// GORM needs the foreign key to attach preloaded rows.
			selected = append(append([]string{}, include.Columns...), "workspace_id")
		}
		tx = tx.Preload("RatelimitNamespaces", func(db *gorm.DB) *gorm.DB {
			db = db.Select(selected).Order("created_at_m, id")
			if nsWhere != "" {
				db = db.Where(nsWhere, nsArgs...)
			}
			return db
		})
	}

	var recs []workspaceRecord
	if err := tx.Find(&recs).Error; err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}

	rec := recs[0]
	ws := &model.Workspace{
		ID:         rec.ID,
		OrgID:      rec.OrgID,
		Name:       rec.Name,
		CreatedAtM: rec.CreatedAtM,
		UpdatedAtM: rec.UpdatedAtM,
		DeletedAtM: rec.DeletedAtM,
	}
	if withNamespaces {
		ws.RatelimitNamespaces = make([]model.RatelimitNamespace, 0, len(rec.RatelimitNamespaces))
		for _, n := range rec.RatelimitNamespaces {
			ns := toNamespaceModel(n)
			if !projected.Has("workspace_id") {
				ns.WorkspaceID = ""
			}
			ws.RatelimitNamespaces = append(ws.RatelimitNamespaces, ns)
		}
	}
	return ws, nil
}

func (r *WorkspaceRepository) Create(ctx context.Context, orgID, name string) (*model.Workspace, error) {
	now := time.Now().UnixMilli()
	rec := workspaceRecord{
		ID:         snowflake.NewID("ws"),
		OrgID:      orgID,
		Name:       name,
		CreatedAtM: now,
		UpdatedAtM: &now,
	}
	if err := r.db.WithContext(ctx).Omit("RatelimitNamespaces").Create(&rec).Error; err != nil {
		return nil, err
	}
	return &model.Workspace{
		ID:         rec.ID,
		OrgID:      rec.OrgID,
		Name:       rec.Name,
		CreatedAtM: rec.CreatedAtM,
		UpdatedAtM: rec.UpdatedAtM,
	}, nil
}

func (r *WorkspaceRepository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UnixMilli()
	res := r.db.WithContext(ctx).
		Model(&workspaceRecord{}).
		Where("id = ? AND deleted_at_m IS NULL", id).
		Updates(map[string]interface{}{"deleted_at_m": now, "updated_at_m": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func toNamespaceModel(r namespaceRecord) model.RatelimitNamespace {
	return model.RatelimitNamespace{
		ID:          r.ID,
		WorkspaceID: r.WorkspaceID,
		Name:        r.Name,
		CreatedAtM:  r.CreatedAtM,
		UpdatedAtM:  r.UpdatedAtM,
		DeletedAtM:  r.DeletedAtM,
	}
}

// Ensure interface satisfaction.
var _ repository.WorkspaceRepository = (*WorkspaceRepository)(nil)
