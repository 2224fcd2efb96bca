package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"petclinic/internal/adapters/storage/seed"
)

// Seed carga d con sus ids originales si la base no tiene tipos de mascota
// todavía. Devuelve false si ya había datos.
func Seed(ctx context.Context, db *sql.DB, d Dialect, data seed.Data) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM types`).Scan(&n); err != nil {
		return false, fmt.Errorf("count types: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	exec := func(query string, args ...any) error {
		_, err := tx.ExecContext(ctx, d.Rebind(query), args...)
		return err
	}

	for _, t := range data.Types {
		if err := exec(`INSERT INTO types (id, name) VALUES (?, ?)`, t.ID, t.Name); err != nil {
			return false, fmt.Errorf("insert type %d: %w", t.ID, err)
		}
	}

	for _, o := range data.Owners {
		err := exec(`INSERT INTO owners (id, first_name, last_name, address, city, telephone) VALUES (?, ?, ?, ?, ?, ?)`,
			o.ID, o.FirstName, o.LastName, o.Address, o.City, o.Telephone)
		if err != nil {
			return false, fmt.Errorf("insert owner %d: %w", o.ID, err)
		}

		for _, p := range o.Pets() {
			var typeID any
			if p.Type != nil {
				typeID = p.Type.ID
			}
			err := exec(`INSERT INTO pets (id, name, birth_date, type_id, owner_id) VALUES (?, ?, ?, ?, ?)`,
				p.ID, p.Name, dateArg(p.BirthDate), typeID, o.ID)
			if err != nil {
				return false, fmt.Errorf("insert pet %d: %w", p.ID, err)
			}

			for _, v := range p.Visits() {
				err := exec(`INSERT INTO visits (id, pet_id, visit_date, description) VALUES (?, ?, ?, ?)`,
					v.ID, p.ID, dateArg(v.Date), v.Description)
				if err != nil {
					return false, fmt.Errorf("insert visit %d: %w", v.ID, err)
				}
			}
		}
	}

	for _, stmt := range d.resetSequences {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return false, fmt.Errorf("reset sequences: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
