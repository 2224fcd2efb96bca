package owners

import "strings"

// AddPet agrega p al final de la colección del owner y deja a p apuntando
// a este owner.
//
// Si p ya está en la colección, o si hay otra entrada con el mismo ID
// (distinto de cero), la llamada no hace nada. Un p nil devuelve ErrNilPet.
func (o *Owner) AddPet(p *Pet) error {
	if p == nil {
		return ErrNilPet
	}

	for _, existing := range o.pets {
		if existing == p {
			return nil
		}
		if !p.IsNew() && existing.ID == p.ID {
			return nil
		}
	}

	o.pets = append(o.pets, p)
	p.owner = o
	return nil
}

// Pets devuelve todas las mascotas agregadas, nuevas incluidas, en orden de
// inserción. El slice es una copia; las mascotas son las mismas.
func (o *Owner) Pets() []*Pet {
	out := make([]*Pet, len(o.pets))
	copy(out, o.pets)
	return out
}

// PetByName equivale a PetByNameIgnoreNew(name, false).
func (o *Owner) PetByName(name string) *Pet {
	return o.PetByNameIgnoreNew(name, false)
}

// PetByNameIgnoreNew busca por nombre sin distinguir mayúsculas.
// Con nombres repetidos gana la última coincidencia de la colección.
// Con ignoreNew, las mascotas sin ID no participan de la búsqueda.
func (o *Owner) PetByNameIgnoreNew(name string, ignoreNew bool) *Pet {
	if name == "" {
		return nil
	}

	var found *Pet
	for _, p := range o.pets {
		if ignoreNew && p.IsNew() {
			continue
		}
		if strings.EqualFold(p.Name, name) {
			found = p
		}
	}
	return found
}

// PetByID recorre la colección comparando ids.
//
// La guarda está invertida respecto de PetByNameIgnoreNew: solo se comparan
// las mascotas nuevas, cuyo ID es cero, así que ninguna mascota persistida
// coincide. Se conserva así; para buscar por id usar Repository.GetPet.
func (o *Owner) PetByID(id int) *Pet {
	if id <= 0 {
		return nil
	}

	for _, p := range o.pets {
		if p.IsNew() && p.ID == id {
			return p
		}
	}
	return nil
}
