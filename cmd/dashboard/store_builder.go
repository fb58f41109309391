package main

import (
	"database/sql"
	"fmt"

	"github.com/souvikjs01/unkey/internal/config"
	"github.com/souvikjs01/unkey/internal/db"
	"github.com/souvikjs01/unkey/internal/repository"
	"github.com/souvikjs01/unkey/internal/repository/gormrepo"
	"github.com/souvikjs01/unkey/internal/service"
	"github.com/souvikjs01/unkey/pkg/snowflake"
)

// openStore opens the database and builds the ratelimit service on the
// configured repository backend. The caller closes the returned *sql.DB.
func openStore(cfg *config.Config) (*sql.DB, service.RatelimitService, error) {
	if err := snowflake.Init(1); err != nil {
		return nil, nil, fmt.Errorf("init snowflake: %w", err)
	}

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	svc, err := buildService(cfg.Store, conn)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, svc, nil
}

func buildService(store string, conn *sql.DB) (service.RatelimitService, error) {
	switch store {
	case config.StoreGorm:
		gdb, err := gormrepo.Open(conn)
		if err != nil {
			return nil, err
		}
		return service.NewRatelimitService(gormrepo.NewWorkspaceRepository(gdb), gormrepo.NewRatelimitNamespaceRepository(gdb)), nil
	case config.StoreSQL, "":
		return service.NewRatelimitService(repository.NewWorkspaceRepository(conn), repository.NewRatelimitNamespaceRepository(conn)), nil
	default:
		return nil, fmt.Errorf("unknown store %q (want sql or gorm)", store)
	}
}
