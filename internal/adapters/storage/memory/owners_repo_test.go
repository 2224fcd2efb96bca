package memory

import (
	"context"
	"sync"
	"testing"

	"petclinic/internal/domain/owners"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnersRepo_GetOwnerReturnsCopy(t *testing.T) {
	repo := NewSeededOwnersRepo()
	ctx := context.Background()

	o, err := repo.GetOwner(ctx, 10)
	require.NoError(t, err)
	require.Len(t, o.Pets(), 2)

	o.LastName = "Cambiado"
	require.NoError(t, o.AddPet(&owners.Pet{Name: "Fantasma"}))
	o.Pets()[0].Name = "Otro"

	again, err := repo.GetOwner(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Estaban", again.LastName)
	assert.Len(t, again.Pets(), 2)
	assert.Equal(t, "Lucky", again.Pets()[0].Name)
}

func TestOwnersRepo_SavePetAndVisit(t *testing.T) {
	repo := NewSeededOwnersRepo()
	ctx := context.Background()

	cat, err := repo.GetPetType(ctx, 1)
	require.NoError(t, err)

	p := &owners.Pet{Name: "Tom", Type: &cat}
	require.NoError(t, repo.SavePet(ctx, 10, p))
	assert.Equal(t, 14, p.ID)

	v := &owners.Visit{Description: "checkup"}
	require.NoError(t, repo.AddVisit(ctx, 14, v))
	assert.Equal(t, 5, v.ID)

	got, err := repo.GetPet(ctx, 14)
	require.NoError(t, err)
	assert.Equal(t, "Tom", got.Name)
	assert.Equal(t, 10, got.Owner().ID)
	require.Len(t, got.Visits(), 1)
	assert.Equal(t, "checkup", got.Visits()[0].Description)

	got.Name = "Tommy"
	require.NoError(t, repo.SavePet(ctx, 10, got))
	got, err = repo.GetPet(ctx, 14)
	require.NoError(t, err)
	assert.Equal(t, "Tommy", got.Name)
}

func TestOwnersRepo_Errors(t *testing.T) {
	repo := NewSeededOwnersRepo()
	ctx := context.Background()

	_, err := repo.GetOwner(ctx, -1)
	assert.ErrorIs(t, err, owners.ErrOwnerNotFound)

	_, err = repo.GetPet(ctx, 999)
	assert.ErrorIs(t, err, owners.ErrPetNotFound)

	_, err = repo.GetPetType(ctx, 8)
	assert.ErrorIs(t, err, owners.ErrPetTypeNotFound)

	assert.ErrorIs(t, repo.SavePet(ctx, 11, &owners.Pet{Name: "x"}), owners.ErrOwnerNotFound)
	assert.ErrorIs(t, repo.SavePet(ctx, 1, &owners.Pet{ID: 12, Name: "Lucky"}), owners.ErrPetNotFound)
	assert.ErrorIs(t, repo.SavePet(ctx, 1, &owners.Pet{Name: "x", Type: &owners.PetType{ID: -1}}), owners.ErrPetTypeNotFound)
	assert.ErrorIs(t, repo.AddVisit(ctx, 999, &owners.Visit{}), owners.ErrPetNotFound)
}

func TestOwnersRepo_FindOwnersAndCreate(t *testing.T) {
	repo := NewOwnersRepo()
	ctx := context.Background()

	for _, last := range []string{"Davis", "Franklin", "davidson"} {
		require.NoError(t, repo.CreateOwner(ctx, &owners.Owner{FirstName: "X", LastName: last}))
	}

	found, err := repo.FindOwners(ctx, "DAV")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, []int{1, 3}, []int{found[0].ID, found[1].ID})

	types, err := repo.ListPetTypes(ctx)
	require.NoError(t, err)
	assert.Empty(t, types)
}

func TestOwnersRepo_ConcurrentVisits(t *testing.T) {
	repo := NewSeededOwnersRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.AddVisit(ctx, 8, &owners.Visit{Description: "control"})
		}()
	}
	wg.Wait()

	p, err := repo.GetPet(ctx, 8)
	require.NoError(t, err)
	assert.Len(t, p.Visits(), 22)
}
