package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"petclinic/internal/domain/owners"
)

// OwnersRepo implementa owners.Repository sobre database/sql. La misma
// implementación sirve para Postgres (pgx) y SQLite (modernc); las
// diferencias viven en Dialect.
type OwnersRepo struct {
	db *sql.DB
	d  Dialect
}

var _ owners.Repository = (*OwnersRepo)(nil)

func NewOwnersRepo(db *sql.DB, d Dialect) *OwnersRepo {
	return &OwnersRepo{db: db, d: d}
}

func (r *OwnersRepo) GetOwner(ctx context.Context, id int) (*owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, r.d.Rebind(`
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE id = ?
	`), id)

	var o owners.Owner
	if err := row.Scan(&o.ID, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, owners.ErrOwnerNotFound
		}
		return nil, err
	}

	if err := r.loadPets(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OwnersRepo) FindOwners(ctx context.Context, lastNamePrefix string) ([]*owners.Owner, error) {
	pattern := strings.ToLower(strings.TrimSpace(lastNamePrefix)) + "%"

	rows, err := r.db.QueryContext(ctx, r.d.Rebind(`
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE LOWER(last_name) LIKE ?
		ORDER BY id ASC
	`), pattern)
	if err != nil {
		return nil, err
	}

	out := make([]*owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(&o.ID, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone); err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, &o)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	// Las mascotas se cargan con rows ya cerrado: SQLite en memoria usa una
	// sola conexión.
	for _, o := range out {
		if err := r.loadPets(ctx, o); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CreateOwner guarda solo los datos del owner; las mascotas van por SavePet.
func (r *OwnersRepo) CreateOwner(ctx context.Context, o *owners.Owner) error {
	if o == nil {
		return owners.ErrNilOwner
	}

	var id int
	err := r.db.QueryRowContext(ctx, r.d.Rebind(`
		INSERT INTO owners (first_name, last_name, address, city, telephone)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`), o.FirstName, o.LastName, o.Address, o.City, o.Telephone).Scan(&id)
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}

func (r *OwnersRepo) GetPet(ctx context.Context, id int) (*owners.Pet, error) {
	var ownerID int
	err := r.db.QueryRowContext(ctx, r.d.Rebind(`SELECT owner_id FROM pets WHERE id = ?`), id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, owners.ErrPetNotFound
		}
		return nil, err
	}

	o, err := r.GetOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, p := range o.Pets() {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, owners.ErrPetNotFound
}

func (r *OwnersRepo) SavePet(ctx context.Context, ownerID int, p *owners.Pet) error {
	if p == nil {
		return owners.ErrNilPet
	}
	if err := r.ownerExists(ctx, ownerID); err != nil {
		return err
	}

	var typeID any
	if p.Type != nil {
		if _, err := r.GetPetType(ctx, p.Type.ID); err != nil {
			return err
		}
		typeID = p.Type.ID
	}

	if p.IsNew() {
		var id int
		err := r.db.QueryRowContext(ctx, r.d.Rebind(`
			INSERT INTO pets (name, birth_date, type_id, owner_id)
			VALUES (?, ?, ?, ?)
			RETURNING id
		`), p.Name, dateArg(p.BirthDate), typeID, ownerID).Scan(&id)
		if err != nil {
			return err
		}
		p.ID = id
		return nil
	}

	res, err := r.db.ExecContext(ctx, r.d.Rebind(`
		UPDATE pets
		SET name = ?, birth_date = ?, type_id = ?
		WHERE id = ? AND owner_id = ?
	`), p.Name, dateArg(p.BirthDate), typeID, p.ID, ownerID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrPetNotFound
	}
	return nil
}

func (r *OwnersRepo) ListPetTypes(ctx context.Context) ([]owners.PetType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM types ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.PetType, 0)
	for rows.Next() {
		var t owners.PetType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *OwnersRepo) GetPetType(ctx context.Context, id int) (owners.PetType, error) {
	var t owners.PetType
	err := r.db.QueryRowContext(ctx, r.d.Rebind(`SELECT id, name FROM types WHERE id = ?`), id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return owners.PetType{}, owners.ErrPetTypeNotFound
		}
		return owners.PetType{}, err
	}
	return t, nil
}

func (r *OwnersRepo) AddVisit(ctx context.Context, petID int, v *owners.Visit) error {
	if v == nil {
		return owners.ErrNilVisit
	}

	var exists int
	err := r.db.QueryRowContext(ctx, r.d.Rebind(`SELECT COUNT(*) FROM pets WHERE id = ?`), petID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists == 0 {
		return owners.ErrPetNotFound
	}

	var id int
	err = r.db.QueryRowContext(ctx, r.d.Rebind(`
		INSERT INTO visits (pet_id, visit_date, description)
		VALUES (?, ?, ?)
		RETURNING id
	`), petID, dateArg(v.Date), v.Description).Scan(&id)
	if err != nil {
		return err
	}
	v.ID = id
	v.PetID = petID
	return nil
}

func (r *OwnersRepo) ownerExists(ctx context.Context, ownerID int) error {
	var n int
	err := r.db.QueryRowContext(ctx, r.d.Rebind(`SELECT COUNT(*) FROM owners WHERE id = ?`), ownerID).Scan(&n)
	if err != nil {
		return err
	}
	if n == 0 {
		return owners.ErrOwnerNotFound
	}
	return nil
}

// loadPets completa o con sus mascotas (por id asc) y las visitas de cada una
// (por fecha asc).
func (r *OwnersRepo) loadPets(ctx context.Context, o *owners.Owner) error {
	rows, err := r.db.QueryContext(ctx, r.d.Rebind(`
		SELECT p.id, p.name, p.birth_date, t.id, t.name
		FROM pets p
		LEFT JOIN types t ON t.id = p.type_id
		WHERE p.owner_id = ?
		ORDER BY p.id ASC
	`), o.ID)
	if err != nil {
		return err
	}

	byID := map[int]*owners.Pet{}
	for rows.Next() {
		var (
			p        owners.Pet
			bd       nullDate
			typeID   sql.NullInt64
			typeName sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Name, &bd, &typeID, &typeName); err != nil {
			rows.Close()
			return err
		}
		p.BirthDate = bd.Time
		if typeID.Valid {
			p.Type = &owners.PetType{ID: int(typeID.Int64), Name: typeName.String}
		}

		pet := p
		if err := o.AddPet(&pet); err != nil {
			rows.Close()
			return err
		}
		byID[pet.ID] = &pet
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	if len(byID) == 0 {
		return nil
	}
	return r.loadVisits(ctx, o.ID, byID)
}

func (r *OwnersRepo) loadVisits(ctx context.Context, ownerID int, byID map[int]*owners.Pet) error {
	rows, err := r.db.QueryContext(ctx, r.d.Rebind(`
		SELECT v.id, v.pet_id, v.visit_date, v.description
		FROM visits v
		JOIN pets p ON p.id = v.pet_id
		WHERE p.owner_id = ?
		ORDER BY v.visit_date ASC, v.id ASC
	`), ownerID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			v    owners.Visit
			date nullDate
		)
		if err := rows.Scan(&v.ID, &v.PetID, &date, &v.Description); err != nil {
			return err
		}
		v.Date = date.Time

		p, ok := byID[v.PetID]
		if !ok {
			continue
		}
		if err := p.AddVisit(&v); err != nil {
			return err
		}
	}
	return rows.Err()
}

// dateArg manda las fechas como texto YYYY-MM-DD: Postgres lo castea a DATE
// y SQLite lo guarda tal cual.
func dateArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(owners.DateLayout)
}

// nullDate acepta lo que devuelve cada driver para una columna de fecha:
// time.Time (pgx), string o []byte (SQLite), o NULL.
type nullDate struct {
	Time *time.Time
}

func (d *nullDate) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.Time = nil
		return nil
	case time.Time:
		t := owners.StartOfDay(v)
		d.Time = &t
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("sqlstore: cannot scan %T into date", src)
	}
}

func (d *nullDate) parse(s string) error {
	if len(s) > len(owners.DateLayout) {
		s = s[:len(owners.DateLayout)]
	}
	t, err := time.Parse(owners.DateLayout, s)
	if err != nil {
		return fmt.Errorf("sqlstore: invalid date %q: %w", s, err)
	}
	d.Time = &t
	return nil
}
