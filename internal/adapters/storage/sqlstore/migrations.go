package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Migration es un paso de schema. Los statements se ejecutan en orden
// dentro de una misma transacción.
type Migration struct {
	Version    int
	Name       string
	Statements []string
}

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    INTEGER PRIMARY KEY,
	name       TEXT NOT NULL,
	applied_at TEXT NOT NULL
)`

// Migrate aplica las migraciones pendientes del dialecto y devuelve cuántas
// corrió.
func Migrate(ctx context.Context, db *sql.DB, d Dialect) (int, error) {
	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations table: %w", err)
	}

	current, err := SchemaVersion(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("get schema version: %w", err)
	}

	applied := 0
	for _, m := range d.migrations {
		if m.Version <= current {
			continue
		}
		if err := runMigration(ctx, db, d, m); err != nil {
			return applied, fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
		applied++
	}
	return applied, nil
}

// SchemaVersion devuelve la última versión aplicada, 0 si no hay ninguna.
func SchemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version int
	err := db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, err
	}
	return version, nil
}

func runMigration(ctx context.Context, db *sql.DB, d Dialect, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range m.Statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("execute migration: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		d.Rebind("INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)"),
		m.Version, m.Name, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record migration: %w", err)
	}

	return tx.Commit()
}
