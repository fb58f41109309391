package gormrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/souvikjs01/unkey/internal/model"
	"github.com/souvikjs01/unkey/internal/repository"
	"github.com/souvikjs01/unkey/pkg/snowflake"
)

// RatelimitNamespaceRepository is a GORM-backed implementation of
// repository.RatelimitNamespaceRepository.
type RatelimitNamespaceRepository struct {
	db *gorm.DB
}

func NewRatelimitNamespaceRepository(db *gorm.DB) *RatelimitNamespaceRepository {
	return &RatelimitNamespaceRepository{db: db}
}

func (r *RatelimitNamespaceRepository) Create(ctx context.Context, workspaceID, name string) (*model.RatelimitNamespace, error) {
	now := time.Now().UnixMilli()
	rec := namespaceRecord{
		ID:          snowflake.NewID("rlns"),
		WorkspaceID: workspaceID,
		Name:        name,
		CreatedAtM:  now,
		UpdatedAtM:  &now,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, repository.TranslateError(err)
	}
	ns := toNamespaceModel(rec)
	return &ns, nil
}

func (r *RatelimitNamespaceRepository) FindByName(ctx context.Context, workspaceID, name string) (*model.RatelimitNamespace, error) {
	var rec namespaceRecord
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND name = ? AND deleted_at_m IS NULL", workspaceID, name).
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	ns := toNamespaceModel(rec)
	return &ns, nil
}

func (r *RatelimitNamespaceRepository) SoftDelete(ctx context.Context, workspaceID, id string) error {
	now := time.Now().UnixMilli()
	res := r.db.WithContext(ctx).
		Model(&namespaceRecord{}).
		Where("id = ? AND workspace_id = ? AND deleted_at_m IS NULL", id, workspaceID).
		Updates(map[string]interface{}{"deleted_at_m": now, "updated_at_m": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *RatelimitNamespaceRepository) PurgeDeleted(ctx context.Context, before int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("deleted_at_m IS NOT NULL AND deleted_at_m < ?", before).
		Delete(&namespaceRecord{})
	return res.RowsAffected, res.Error
}

// Ensure interface satisfaction.
var _ repository.RatelimitNamespaceRepository = (*RatelimitNamespaceRepository)(nil)
