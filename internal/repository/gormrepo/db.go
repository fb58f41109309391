// Package gormrepo implements the repository interfaces with GORM on top of
// the same sqlite database the SQL repositories use.
package gormrepo

import (
	"database/sql"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open wraps an already migrated connection. The modernc driver registers
// itself as "sqlite"; GORM only issues statements through conn.
func Open(conn *sql.DB) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", Conn: conn}), &gorm.Config{
		Logger:                 newLogger(),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	return db, nil
}

type workspaceRecord struct {
	ID                  string            `gorm:"column:id;primaryKey"`
	OrgID               string            `gorm:"column:org_id"`
	Name                string            `gorm:"column:name"`
	CreatedAtM          int64             `gorm:"column:created_at_m"`
	UpdatedAtM          *int64            `gorm:"column:updated_at_m"`
	DeletedAtM          *int64            `gorm:"column:deleted_at_m"`
	RatelimitNamespaces []namespaceRecord `gorm:"foreignKey:WorkspaceID;references:ID"`
}

func (workspaceRecord) TableName() string { return "workspaces" }

type namespaceRecord struct {
	ID          string `gorm:"column:id;primaryKey"`
	WorkspaceID string `gorm:"column:workspace_id"`
	Name        string `gorm:"column:name"`
	CreatedAtM  int64  `gorm:"column:created_at_m"`
	UpdatedAtM  *int64 `gorm:"column:updated_at_m"`
	DeletedAtM  *int64 `gorm:"column:deleted_at_m"`
}

func (namespaceRecord) TableName() string { return "ratelimit_namespaces" }
