package main

import (
	"context"
	"database/sql"
	"fmt"

	mem "petclinic/internal/adapters/storage/memory"
	pg "petclinic/internal/adapters/storage/postgres"
	"petclinic/internal/adapters/storage/seed"
	"petclinic/internal/adapters/storage/sqlite"
	"petclinic/internal/adapters/storage/sqlstore"
	"petclinic/internal/domain/owners"
	"petclinic/internal/platform/config"
	"petclinic/internal/platform/logger"
)

// store es el repo elegido por config más la conexión SQL (nil en memoria).
type store struct {
	repo owners.Repository
	db   *sql.DB
}

func (s *store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// openStore abre el storage configurado. Las bases SQL quedan migradas y,
// con withSeed, cargadas con los datos de ejemplo si estaban vacías.
func openStore(ctx context.Context, cfg config.StorageConfig, withSeed bool, log logger.Logger) (*store, error) {
	var (
		db      *sql.DB
		dialect sqlstore.Dialect
		repo    owners.Repository
		err     error
	)

	switch cfg.Driver {
	case config.DriverMemory:
		if withSeed {
			return &store{repo: mem.NewSeededOwnersRepo()}, nil
		}
		return &store{repo: mem.NewOwnersRepo()}, nil
	case config.DriverPostgres:
		db, err = pg.Open(ctx, cfg.DSN, pg.PoolOptions{})
		dialect = sqlstore.Postgres
		if err == nil {
			repo = pg.NewOwnersRepo(db)
		}
	case config.DriverSQLite:
		db, err = sqlite.Open(ctx, cfg.DSN)
		dialect = sqlstore.SQLite
		if err == nil {
			repo = sqlite.NewOwnersRepo(db)
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	applied, err := sqlstore.Migrate(ctx, db, dialect)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info("schema migrated", map[string]any{"driver": dialect.Name, "applied": applied})

	if withSeed {
		seeded, err := sqlstore.Seed(ctx, db, dialect, seed.Load())
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		if seeded {
			log.Info("sample data loaded", map[string]any{"driver": dialect.Name})
		}
	}

	return &store{repo: repo, db: db}, nil
}
