package sqlstore_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"petclinic/internal/adapters/storage/seed"
	"petclinic/internal/adapters/storage/sqlite"
	"petclinic/internal/adapters/storage/sqlstore"
	"petclinic/internal/domain/owners"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSeeded(t *testing.T) (*sql.DB, *sqlstore.OwnersRepo) {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, sqlite.Memory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	applied, err := sqlstore.Migrate(ctx, db, sqlstore.SQLite)
	require.NoError(t, err)
	require.Equal(t, len(sqlstore.SQLite.Migrations()), applied)

	seeded, err := sqlstore.Seed(ctx, db, sqlstore.SQLite, seed.Load())
	require.NoError(t, err)
	require.True(t, seeded)

	return db, sqlstore.NewOwnersRepo(db, sqlstore.SQLite)
}

func day(s string) *time.Time {
	t, err := time.Parse(owners.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db, _ := openSeeded(t)
	ctx := context.Background()

	applied, err := sqlstore.Migrate(ctx, db, sqlstore.SQLite)
	require.NoError(t, err)
	assert.Zero(t, applied)

	version, err := sqlstore.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	seeded, err := sqlstore.Seed(ctx, db, sqlstore.SQLite, seed.Load())
	require.NoError(t, err)
	assert.False(t, seeded, "second seed must be a no-op")
}

func TestOwnersRepo_GetOwner(t *testing.T) {
	_, repo := openSeeded(t)

	o, err := repo.GetOwner(context.Background(), 6)
	require.NoError(t, err)

	assert.Equal(t, "Jean Coleman", o.FullName())

	got := owners.ToOwnerResponse(o)
	want := []owners.PetResponse{
		{
			ID: 7, Name: "Samantha", BirthDate: "2012-09-04",
			Type: &owners.PetTypeResponse{ID: 1, Name: "cat"},
			Visits: []owners.VisitResponse{
				{ID: 1, Date: "2013-01-01", Description: "rabies shot"},
				{ID: 4, Date: "2013-01-04", Description: "spayed"},
			},
		},
		{
			ID: 8, Name: "Max", BirthDate: "2012-09-04",
			Type: &owners.PetTypeResponse{ID: 1, Name: "cat"},
			Visits: []owners.VisitResponse{
				{ID: 2, Date: "2013-01-02", Description: "rabies shot"},
				{ID: 3, Date: "2013-01-03", Description: "neutered"},
			},
		},
	}
	if diff := cmp.Diff(want, got.Pets); diff != "" {
		t.Fatalf("pets mismatch (-want +got):\n%s", diff)
	}

	for _, p := range o.Pets() {
		assert.Same(t, o, p.Owner())
	}

	_, err = repo.GetOwner(context.Background(), 11)
	assert.ErrorIs(t, err, owners.ErrOwnerNotFound)
}

func TestOwnersRepo_FindOwners(t *testing.T) {
	_, repo := openSeeded(t)
	ctx := context.Background()

	davis, err := repo.FindOwners(ctx, "davis")
	require.NoError(t, err)
	require.Len(t, davis, 2)
	assert.Equal(t, 2, davis[0].ID)
	assert.Equal(t, 4, davis[1].ID)
	assert.Len(t, davis[1].Pets(), 1)

	all, err := repo.FindOwners(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 10)

	none, err := repo.FindOwners(ctx, "Nadie")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOwnersRepo_SavePet(t *testing.T) {
	_, repo := openSeeded(t)
	ctx := context.Background()

	dog, err := repo.GetPetType(ctx, 2)
	require.NoError(t, err)

	p := &owners.Pet{Name: "Betty", BirthDate: day("2015-02-12"), Type: &dog}
	require.NoError(t, repo.SavePet(ctx, 10, p))
	assert.Equal(t, 14, p.ID)

	o, err := repo.GetOwner(ctx, 10)
	require.NoError(t, err)
	saved := o.PetByNameIgnoreNew("betty", true)
	require.NotNil(t, saved)
	assert.Equal(t, "2015-02-12", saved.BirthDate.Format(owners.DateLayout))

	saved.Name = "Betty II"
	saved.Type = nil
	require.NoError(t, repo.SavePet(ctx, 10, saved))

	reloaded, err := repo.GetPet(ctx, 14)
	require.NoError(t, err)
	assert.Equal(t, "Betty II", reloaded.Name)
	assert.Nil(t, reloaded.Type)
	assert.Equal(t, 10, reloaded.Owner().ID)
}

func TestOwnersRepo_SavePet_Errors(t *testing.T) {
	_, repo := openSeeded(t)
	ctx := context.Background()

	err := repo.SavePet(ctx, 99, &owners.Pet{Name: "x"})
	assert.ErrorIs(t, err, owners.ErrOwnerNotFound)

	err = repo.SavePet(ctx, 10, &owners.Pet{Name: "x", Type: &owners.PetType{ID: 8}})
	assert.ErrorIs(t, err, owners.ErrPetTypeNotFound)

	// la mascota 12 es de owner 10
	err = repo.SavePet(ctx, 1, &owners.Pet{ID: 12, Name: "Lucky"})
	assert.ErrorIs(t, err, owners.ErrPetNotFound)

	assert.ErrorIs(t, repo.SavePet(ctx, 10, nil), owners.ErrNilPet)
}

func TestOwnersRepo_AddVisit(t *testing.T) {
	_, repo := openSeeded(t)
	ctx := context.Background()

	v := &owners.Visit{Date: day("2013-01-02"), Description: "checkup"}
	require.NoError(t, repo.AddVisit(ctx, 7, v))
	assert.Equal(t, 5, v.ID)
	assert.Equal(t, 7, v.PetID)

	p, err := repo.GetPet(ctx, 7)
	require.NoError(t, err)

	var descriptions []string
	for _, v := range p.Visits() {
		descriptions = append(descriptions, v.Description)
	}
	assert.Equal(t, []string{"rabies shot", "checkup", "spayed"}, descriptions)

	err = repo.AddVisit(ctx, 999, &owners.Visit{Description: "x"})
	assert.ErrorIs(t, err, owners.ErrPetNotFound)
}

func TestOwnersRepo_CreateOwnerAndTypes(t *testing.T) {
	_, repo := openSeeded(t)
	ctx := context.Background()

	o := &owners.Owner{FirstName: "Ana", LastName: "Paz", Address: "Calle 1", City: "Lima", Telephone: "123"}
	require.NoError(t, repo.CreateOwner(ctx, o))
	assert.Equal(t, 11, o.ID)

	types, err := repo.ListPetTypes(ctx)
	require.NoError(t, err)
	var names []string
	for _, pt := range types {
		names = append(names, pt.Name)
	}
	assert.Equal(t, []string{"bird", "cat", "dog", "hamster", "lizard", "snake"}, names)

	_, err = repo.GetPetType(ctx, 8)
	assert.ErrorIs(t, err, owners.ErrPetTypeNotFound)
}

func TestDialect_Rebind(t *testing.T) {
	q := "SELECT * FROM pets WHERE id = ? AND owner_id = ?"

	assert.Equal(t, "SELECT * FROM pets WHERE id = $1 AND owner_id = $2", sqlstore.Postgres.Rebind(q))
	assert.Equal(t, q, sqlstore.SQLite.Rebind(q))
}
