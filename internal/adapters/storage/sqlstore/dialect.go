package sqlstore

import (
	"strconv"
	"strings"
)

// Dialect agrupa lo que cambia entre motores: placeholders, schema y el
// ajuste de secuencias después de insertar ids explícitos.
type Dialect struct {
	Name string

	// numbered: los placeholders se escriben como $1, $2... (Postgres).
	numbered bool

	migrations     []Migration
	resetSequences []string
}

// Rebind convierte una query escrita con "?" al formato del dialecto.
func (d Dialect) Rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d Dialect) Migrations() []Migration {
	out := make([]Migration, len(d.migrations))
	copy(out, d.migrations)
	return out
}

var Postgres = Dialect{
	Name:     "postgres",
	numbered: true,
	migrations: []Migration{
		{
			Version: 1,
			Name:    "create_clinic_tables",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS types (
					id   SERIAL PRIMARY KEY,
					name VARCHAR(80) NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS owners (
					id         SERIAL PRIMARY KEY,
					first_name VARCHAR(30) NOT NULL,
					last_name  VARCHAR(30) NOT NULL,
					address    VARCHAR(255) NOT NULL,
					city       VARCHAR(80) NOT NULL,
					telephone  VARCHAR(20) NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_owners_last_name ON owners (last_name)`,
				`CREATE TABLE IF NOT EXISTS pets (
					id         SERIAL PRIMARY KEY,
					name       VARCHAR(30) NOT NULL,
					birth_date DATE,
					type_id    INTEGER REFERENCES types (id),
					owner_id   INTEGER NOT NULL REFERENCES owners (id)
				)`,
				`CREATE INDEX IF NOT EXISTS idx_pets_owner ON pets (owner_id)`,
				`CREATE TABLE IF NOT EXISTS visits (
					id          SERIAL PRIMARY KEY,
					pet_id      INTEGER NOT NULL REFERENCES pets (id),
					visit_date  DATE,
					description VARCHAR(255) NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_visits_pet ON visits (pet_id)`,
			},
		},
	},
	resetSequences: []string{
		`SELECT setval(pg_get_serial_sequence('types', 'id'), (SELECT COALESCE(MAX(id), 1) FROM types))`,
		`SELECT setval(pg_get_serial_sequence('owners', 'id'), (SELECT COALESCE(MAX(id), 1) FROM owners))`,
		`SELECT setval(pg_get_serial_sequence('pets', 'id'), (SELECT COALESCE(MAX(id), 1) FROM pets))`,
		`SELECT setval(pg_get_serial_sequence('visits', 'id'), (SELECT COALESCE(MAX(id), 1) FROM visits))`,
	},
}

// SQLite guarda las fechas como TEXT YYYY-MM-DD.
var SQLite = Dialect{
	Name: "sqlite",
	migrations: []Migration{
		{
			Version: 1,
			Name:    "create_clinic_tables",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS types (
					id   INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS owners (
					id         INTEGER PRIMARY KEY AUTOINCREMENT,
					first_name TEXT NOT NULL,
					last_name  TEXT NOT NULL,
					address    TEXT NOT NULL,
					city       TEXT NOT NULL,
					telephone  TEXT NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_owners_last_name ON owners (last_name)`,
				`CREATE TABLE IF NOT EXISTS pets (
					id         INTEGER PRIMARY KEY AUTOINCREMENT,
					name       TEXT NOT NULL,
					birth_date TEXT,
					type_id    INTEGER REFERENCES types (id),
					owner_id   INTEGER NOT NULL REFERENCES owners (id)
				)`,
				`CREATE INDEX IF NOT EXISTS idx_pets_owner ON pets (owner_id)`,
				`CREATE TABLE IF NOT EXISTS visits (
					id          INTEGER PRIMARY KEY AUTOINCREMENT,
					pet_id      INTEGER NOT NULL REFERENCES pets (id),
					visit_date  TEXT,
					description TEXT NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_visits_pet ON visits (pet_id)`,
			},
		},
	},
}
