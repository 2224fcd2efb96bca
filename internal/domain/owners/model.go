package owners

import (
	"strings"
	"time"
)

// Owner representa al dueño de una o más mascotas.
// ID == 0 indica que todavía no fue persistido.
type Owner struct {
	ID        int
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string

	// pets mantiene el orden de inserción; solo se modifica vía AddPet.
	pets []*Pet
}

func (o *Owner) IsNew() bool {
	return o.ID == 0
}

func (o *Owner) FullName() string {
	return strings.TrimSpace(o.FirstName + " " + o.LastName)
}

// PetType es la categoría de una mascota (cat, dog, ...).
type PetType struct {
	ID   int
	Name string
}

// Pet es una mascota registrada (o por registrar) de un Owner.
// ID == 0 indica mascota nueva (sin persistir).
type Pet struct {
	ID        int
	Name      string
	BirthDate *time.Time
	Type      *PetType

	owner  *Owner
	visits []*Visit
}

func (p *Pet) IsNew() bool {
	return p.ID == 0
}

// Owner devuelve el dueño al que se asoció la mascota con AddPet (o nil).
func (p *Pet) Owner() *Owner {
	return p.owner
}

// Visits devuelve las visitas en orden de alta.
func (p *Pet) Visits() []*Visit {
	out := make([]*Visit, len(p.visits))
	copy(out, p.visits)
	return out
}

// AddVisit agrega v a la historia de la mascota y fija v.PetID.
func (p *Pet) AddVisit(v *Visit) error {
	if v == nil {
		return ErrNilVisit
	}
	for _, existing := range p.visits {
		if existing == v {
			return nil
		}
	}
	v.PetID = p.ID
	p.visits = append(p.visits, v)
	return nil
}

// Visit es una consulta veterinaria de una mascota.
type Visit struct {
	ID          int
	PetID       int
	Date        *time.Time
	Description string
}

func (v *Visit) IsNew() bool {
	return v.ID == 0
}
