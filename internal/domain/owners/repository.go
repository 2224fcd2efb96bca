package owners

import "context"

// Repository persiste owners junto con sus mascotas y visitas.
// GetOwner devuelve un grafo completo (pets, types y visits cargados) que el
// caller puede modificar sin afectar al store hasta llamar a SavePet/AddVisit.
type Repository interface {
	GetOwner(ctx context.Context, id int) (*Owner, error)
	FindOwners(ctx context.Context, lastNamePrefix string) ([]*Owner, error)
	CreateOwner(ctx context.Context, o *Owner) error

	GetPet(ctx context.Context, id int) (*Pet, error)
	SavePet(ctx context.Context, ownerID int, p *Pet) error

	ListPetTypes(ctx context.Context) ([]PetType, error)
	GetPetType(ctx context.Context, id int) (PetType, error)

	AddVisit(ctx context.Context, petID int, v *Visit) error
}
