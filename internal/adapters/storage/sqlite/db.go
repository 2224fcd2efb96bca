package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"petclinic/internal/adapters/storage/sqlstore"
	"petclinic/internal/domain/owners"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Memory es el path que pide una base en memoria.
const Memory = ":memory:"

// Open abre (o crea) la base SQLite en path.
//
// Con ":memory:" cada llamada obtiene su propia base compartida entre las
// conexiones del pool (nombre único + cache=shared), así dos tests no se
// pisan los datos. Las bases en archivo usan WAL.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	var dsn string
	if path == Memory {
		dsn = fmt.Sprintf("file:petclinic-%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	} else {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dir, err)
		}
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite serializa las escrituras; una conexión evita SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

func NewOwnersRepo(db *sql.DB) owners.Repository {
	return sqlstore.NewOwnersRepo(db, sqlstore.SQLite)
}
