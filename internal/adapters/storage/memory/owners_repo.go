package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"petclinic/internal/adapters/storage/seed"
	"petclinic/internal/domain/owners"
)

// ownersRepo guarda los grafos owner -> pets -> visits. Todo lo que entra y
// sale se copia, así los callers nunca comparten punteros con el store.
type ownersRepo struct {
	mu sync.RWMutex

	owners   map[int]*owners.Owner
	types    map[int]owners.PetType
	petOwner map[int]int // petID -> ownerID

	nextOwnerID int
	nextPetID   int
	nextVisitID int
}

func NewOwnersRepo() owners.Repository {
	return &ownersRepo{
		owners:   make(map[int]*owners.Owner),
		types:    make(map[int]owners.PetType),
		petOwner: make(map[int]int),
	}
}

// NewSeededOwnersRepo arranca con los datos de ejemplo de seed.
func NewSeededOwnersRepo() owners.Repository {
	r := NewOwnersRepo().(*ownersRepo)
	r.load(seed.Load())
	return r
}

func (r *ownersRepo) load(d seed.Data) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range d.Types {
		r.types[t.ID] = t
	}
	for _, o := range d.Owners {
		r.owners[o.ID] = cloneOwner(o)
		r.nextOwnerID = max(r.nextOwnerID, o.ID)
		for _, p := range o.Pets() {
			r.petOwner[p.ID] = o.ID
			r.nextPetID = max(r.nextPetID, p.ID)
			for _, v := range p.Visits() {
				r.nextVisitID = max(r.nextVisitID, v.ID)
			}
		}
	}
}

func (r *ownersRepo) GetOwner(ctx context.Context, id int) (*owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.owners[id]
	if !ok {
		return nil, owners.ErrOwnerNotFound
	}
	return cloneOwner(o), nil
}

func (r *ownersRepo) FindOwners(ctx context.Context, lastNamePrefix string) ([]*owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix := strings.ToLower(strings.TrimSpace(lastNamePrefix))
	out := make([]*owners.Owner, 0)
	for _, o := range r.owners {
		if strings.HasPrefix(strings.ToLower(o.LastName), prefix) {
			out = append(out, cloneOwner(o))
		}
	}

	// Orden estable por id (el map no lo garantiza)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// CreateOwner guarda solo los datos del owner; las mascotas van por SavePet.
func (r *ownersRepo) CreateOwner(ctx context.Context, o *owners.Owner) error {
	if o == nil {
		return owners.ErrNilOwner
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextOwnerID++
	o.ID = r.nextOwnerID
	r.owners[o.ID] = &owners.Owner{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
	}
	return nil
}

func (r *ownersRepo) GetPet(ctx context.Context, id int) (*owners.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ownerID, ok := r.petOwner[id]
	if !ok {
		return nil, owners.ErrPetNotFound
	}
	o := cloneOwner(r.owners[ownerID])
	if p := findPet(o, id); p != nil {
		return p, nil
	}
	return nil, owners.ErrPetNotFound
}

func (r *ownersRepo) SavePet(ctx context.Context, ownerID int, p *owners.Pet) error {
	if p == nil {
		return owners.ErrNilPet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.owners[ownerID]
	if !ok {
		return owners.ErrOwnerNotFound
	}
	if p.Type != nil {
		if _, ok := r.types[p.Type.ID]; !ok {
			return owners.ErrPetTypeNotFound
		}
	}

	if p.IsNew() {
		r.nextPetID++
		p.ID = r.nextPetID
		if err := o.AddPet(clonePet(p)); err != nil {
			return err
		}
		r.petOwner[p.ID] = ownerID
		return nil
	}

	if r.petOwner[p.ID] != ownerID {
		return owners.ErrPetNotFound
	}
	stored := findPet(o, p.ID)
	if stored == nil {
		return owners.ErrPetNotFound
	}
	stored.Name = p.Name
	stored.BirthDate = cloneTime(p.BirthDate)
	stored.Type = cloneType(p.Type)
	return nil
}

func (r *ownersRepo) ListPetTypes(ctx context.Context) ([]owners.PetType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]owners.PetType, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	// mismo orden que la consulta SQL: por nombre
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *ownersRepo) GetPetType(ctx context.Context, id int) (owners.PetType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[id]
	if !ok {
		return owners.PetType{}, owners.ErrPetTypeNotFound
	}
	return t, nil
}

func (r *ownersRepo) AddVisit(ctx context.Context, petID int, v *owners.Visit) error {
	if v == nil {
		return owners.ErrNilVisit
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ownerID, ok := r.petOwner[petID]
	if !ok {
		return owners.ErrPetNotFound
	}
	stored := findPet(r.owners[ownerID], petID)
	if stored == nil {
		return owners.ErrPetNotFound
	}

	r.nextVisitID++
	v.ID = r.nextVisitID
	v.PetID = petID
	return stored.AddVisit(cloneVisit(v))
}

func findPet(o *owners.Owner, id int) *owners.Pet {
	for _, p := range o.Pets() {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func cloneOwner(o *owners.Owner) *owners.Owner {
	out := &owners.Owner{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
	}
	for _, p := range o.Pets() {
		_ = out.AddPet(clonePet(p))
	}
	return out
}

func clonePet(p *owners.Pet) *owners.Pet {
	out := &owners.Pet{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: cloneTime(p.BirthDate),
		Type:      cloneType(p.Type),
	}
	for _, v := range p.Visits() {
		_ = out.AddVisit(cloneVisit(v))
	}
	return out
}

func cloneVisit(v *owners.Visit) *owners.Visit {
	return &owners.Visit{
		ID:          v.ID,
		PetID:       v.PetID,
		Date:        cloneTime(v.Date),
		Description: v.Description,
	}
}

func cloneType(t *owners.PetType) *owners.PetType {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
