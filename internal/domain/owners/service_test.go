package owners

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"petclinic/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	owners map[int]*Owner
	types  map[int]PetType

	nextOwnerID int
	nextPetID   int
	saved       []*Pet
}

func newTestRepo() *testRepo {
	r := &testRepo{
		owners: map[int]*Owner{},
		types: map[int]PetType{
			1: {ID: 1, Name: "cat"},
			2: {ID: 2, Name: "dog"},
		},
		nextOwnerID: 10,
		nextPetID:   13,
	}

	carlos := &Owner{ID: 10, FirstName: "Carlos", LastName: "Estaban", Address: "2335 Independence La.", City: "Waunakee", Telephone: "6085555487"}
	dog := r.types[2]
	cat := r.types[1]
	_ = carlos.AddPet(&Pet{ID: 12, Name: "Lucky", BirthDate: mustDate("2010-06-24"), Type: &dog})
	_ = carlos.AddPet(&Pet{ID: 13, Name: "Sly", BirthDate: mustDate("2012-06-08"), Type: &cat})
	r.owners[carlos.ID] = carlos

	r.owners[4] = &Owner{ID: 4, FirstName: "Harold", LastName: "Davis"}
	r.owners[2] = &Owner{ID: 2, FirstName: "Betty", LastName: "Davis"}
	return r
}

func mustDate(s string) *time.Time {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return &d
}

func (r *testRepo) GetOwner(ctx context.Context, id int) (*Owner, error) {
	o, ok := r.owners[id]
	if !ok {
		return nil, ErrOwnerNotFound
	}
	return o, nil
}

func (r *testRepo) FindOwners(ctx context.Context, prefix string) ([]*Owner, error) {
	out := make([]*Owner, 0)
	for _, id := range []int{2, 4, 10} {
		o, ok := r.owners[id]
		if ok && strings.HasPrefix(strings.ToLower(o.LastName), strings.ToLower(prefix)) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *testRepo) CreateOwner(ctx context.Context, o *Owner) error {
	r.nextOwnerID++
	o.ID = r.nextOwnerID
	r.owners[o.ID] = o
	return nil
}

func (r *testRepo) GetPet(ctx context.Context, id int) (*Pet, error) {
	for _, o := range r.owners {
		for _, p := range o.Pets() {
			if p.ID == id {
				return p, nil
			}
		}
	}
	return nil, ErrPetNotFound
}

func (r *testRepo) SavePet(ctx context.Context, ownerID int, p *Pet) error {
	if _, ok := r.owners[ownerID]; !ok {
		return ErrOwnerNotFound
	}
	if p.IsNew() {
		r.nextPetID++
		p.ID = r.nextPetID
	}
	r.saved = append(r.saved, p)
	return nil
}

func (r *testRepo) ListPetTypes(ctx context.Context) ([]PetType, error) {
	return []PetType{r.types[1], r.types[2]}, nil
}

func (r *testRepo) GetPetType(ctx context.Context, id int) (PetType, error) {
	t, ok := r.types[id]
	if !ok {
		return PetType{}, ErrPetTypeNotFound
	}
	return t, nil
}

func (r *testRepo) AddVisit(ctx context.Context, petID int, v *Visit) error {
	return nil
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC) }
	return svc
}

// -------------------------
// Pet creation
// -------------------------

func TestService_ProcessPetCreation_Success(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	out, err := svc.ProcessPetCreation(context.Background(), 10, PetForm{Name: "Betty", BirthDate: "2015-02-12", TypeID: "2"})
	require.NoError(t, err)

	assert.True(t, out.IsRedirect())
	assert.Equal(t, "/owners/10", out.Redirect)
	assert.Equal(t, FlashPetAdded, out.Flash)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, 14, repo.saved[0].ID)
	assert.Equal(t, "dog", repo.saved[0].Type.Name)
	assert.Same(t, repo.owners[10], repo.saved[0].Owner())
}

func TestService_ProcessPetCreation_FormErrors(t *testing.T) {
	tests := []struct {
		name  string
		form  PetForm
		field string
		code  string
	}{
		{"duplicate name", PetForm{Name: "Lucky", BirthDate: "2015-02-12", TypeID: "2"}, "name", "duplicate"},
		{"duplicate name other case", PetForm{Name: "lucky", BirthDate: "2015-02-12", TypeID: "2"}, "name", "duplicate"},
		{"blank name", PetForm{Name: "  ", BirthDate: "2015-02-12", TypeID: "2"}, "name", "required"},
		{"missing type", PetForm{Name: "Nuevo", BirthDate: "2015-02-12"}, "type", "required"},
		{"missing birth date", PetForm{Name: "Nuevo", TypeID: "2"}, "birthDate", "required"},
		{"malformed birth date", PetForm{Name: "Nuevo", BirthDate: "2025-01-4", TypeID: "2"}, "birthDate", "typeMismatch.birthDate"},
		{"future birth date", PetForm{Name: "Nuevo", BirthDate: "2024-05-11", TypeID: "2"}, "birthDate", "typeMismatch.birthDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo()
			svc := newTestService(repo)

			out, err := svc.ProcessPetCreation(context.Background(), 10, tt.form)
			require.NoError(t, err)

			assert.False(t, out.IsRedirect())
			assert.Equal(t, ViewPetForm, out.View)
			assert.Equal(t, "pet", out.Errors.Object())
			assert.True(t, out.Errors.HasFieldErrorCode(tt.field, tt.code), "errors: %v", out.Errors.Map())
			assert.Len(t, out.Types, 2)
			assert.Empty(t, repo.saved)
			assert.Len(t, repo.owners[10].Pets(), 2)
		})
	}
}

func TestService_ProcessPetCreation_BirthDateToday(t *testing.T) {
	svc := newTestService(newTestRepo())

	out, err := svc.ProcessPetCreation(context.Background(), 10, PetForm{Name: "Hoy", BirthDate: "2024-05-10", TypeID: "1"})
	require.NoError(t, err)
	assert.True(t, out.IsRedirect())
}

func TestService_ProcessPetCreation_RequestErrors(t *testing.T) {
	tests := []struct {
		name    string
		ownerID int
		form    PetForm
		want    error
	}{
		{"unknown owner", 11, PetForm{Name: "Nuevo", BirthDate: "2015-02-12", TypeID: "2"}, ErrOwnerNotFound},
		{"negative owner", -1, PetForm{Name: "Nuevo", BirthDate: "2015-02-12", TypeID: "2"}, ErrOwnerNotFound},
		{"unknown type", 10, PetForm{Name: "Nuevo", BirthDate: "2015-02-12", TypeID: "8"}, ErrPetTypeNotFound},
		{"negative type", 10, PetForm{Name: "Nuevo", BirthDate: "2015-02-12", TypeID: "-1"}, ErrPetTypeNotFound},
		{"non numeric type", 10, PetForm{Name: "Nuevo", BirthDate: "2015-02-12", TypeID: "dog"}, ErrPetTypeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newTestRepo())

			_, err := svc.ProcessPetCreation(context.Background(), tt.ownerID, tt.form)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// -------------------------
// Pet update
// -------------------------

func TestService_ProcessPetUpdate_Success(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	out, err := svc.ProcessPetUpdate(context.Background(), 10, 12, PetForm{Name: "Lucky II", BirthDate: "2011-01-01"})
	require.NoError(t, err)

	assert.Equal(t, "/owners/10", out.Redirect)
	assert.Equal(t, FlashPetEdited, out.Flash)

	lucky := repo.owners[10].Pets()[0]
	assert.Equal(t, "Lucky II", lucky.Name)
	assert.Equal(t, "2011-01-01", lucky.BirthDate.Format(DateLayout))
	assert.Equal(t, "dog", lucky.Type.Name, "type is kept when the form omits it")
}

func TestService_ProcessPetUpdate_KeepsOwnName(t *testing.T) {
	svc := newTestService(newTestRepo())

	out, err := svc.ProcessPetUpdate(context.Background(), 10, 12, PetForm{Name: "lucky", BirthDate: "2010-06-24", TypeID: "2"})
	require.NoError(t, err)
	assert.True(t, out.IsRedirect())
}

func TestService_ProcessPetUpdate_NameOfAnotherPet(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	out, err := svc.ProcessPetUpdate(context.Background(), 10, 12, PetForm{Name: "Sly", BirthDate: "2010-06-24"})
	require.NoError(t, err)

	assert.Equal(t, ViewPetForm, out.View)
	assert.Equal(t, []string{"duplicate"}, out.Errors.FieldErrors("name"))
	assert.Equal(t, "Lucky", repo.owners[10].Pets()[0].Name)
	assert.Empty(t, repo.saved)
}

func TestService_ProcessPetUpdate_PetOfAnotherOwner(t *testing.T) {
	svc := newTestService(newTestRepo())

	_, err := svc.ProcessPetUpdate(context.Background(), 4, 12, PetForm{Name: "Lucky", BirthDate: "2010-06-24"})
	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestService_InitPetUpdate(t *testing.T) {
	svc := newTestService(newTestRepo())

	out, err := svc.InitPetUpdate(context.Background(), 10, 13)
	require.NoError(t, err)

	assert.Equal(t, ViewPetForm, out.View)
	assert.Equal(t, "Sly", out.Pet.Name)
	assert.Equal(t, 10, out.Owner.ID)
	assert.Nil(t, out.Errors)
}

func TestService_InitPetCreation(t *testing.T) {
	svc := newTestService(newTestRepo())

	out, err := svc.InitPetCreation(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, ViewPetForm, out.View)
	assert.True(t, out.Pet.IsNew())

	_, err = svc.InitPetCreation(context.Background(), 99)
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

// -------------------------
// Owners
// -------------------------

func TestService_FindOwners(t *testing.T) {
	svc := newTestService(newTestRepo())
	ctx := context.Background()

	out, err := svc.FindOwners(ctx, "Estaban")
	require.NoError(t, err)
	assert.Equal(t, "/owners/10", out.Redirect)

	out, err = svc.FindOwners(ctx, "davis")
	require.NoError(t, err)
	assert.Equal(t, ViewOwnersList, out.View)
	assert.Len(t, out.Owners, 2)

	out, err = svc.FindOwners(ctx, "Nadie")
	require.NoError(t, err)
	assert.Equal(t, ViewFindOwners, out.View)
	assert.True(t, out.Errors.HasFieldErrorCode("lastName", validation.CodeNotFound))
}

func TestService_ProcessOwnerCreation(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	out, err := svc.ProcessOwnerCreation(context.Background(), OwnerForm{
		FirstName: "Ana", LastName: "Paz", Address: "Calle 1", City: "Lima", Telephone: "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "/owners/11", out.Redirect)
	assert.Equal(t, FlashOwnerCreated, out.Flash)

	out, err = svc.ProcessOwnerCreation(context.Background(), OwnerForm{FirstName: "Ana", Telephone: "abc"})
	require.NoError(t, err)
	assert.Equal(t, ViewOwnerForm, out.View)
	assert.Equal(t, []string{"lastName", "address", "city", "telephone"}, out.Errors.Fields())
	assert.Equal(t, []string{"pattern"}, out.Errors.FieldErrors("telephone"))
}

func TestService_ShowOwner_NotFound(t *testing.T) {
	svc := newTestService(newTestRepo())

	_, err := svc.ShowOwner(context.Background(), 11)
	assert.True(t, errors.Is(err, ErrOwnerNotFound))
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = ParseID("testing")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("")
	assert.True(t, ok)
	assert.Nil(t, d)

	d, ok = ParseDate("2025-01-4")
	assert.False(t, ok)
	assert.Nil(t, d)

	d, ok = ParseDate("2015-02-12")
	require.True(t, ok)
	assert.Equal(t, time.Date(2015, 2, 12, 0, 0, 0, 0, time.UTC), *d)
}
