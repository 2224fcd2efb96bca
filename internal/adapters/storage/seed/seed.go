// Package seed contiene el set de datos de ejemplo de la clínica: 10 owners,
// 6 tipos, 13 mascotas y 4 visitas. Lo usan el store en memoria y el
// comando `seed` para las bases SQL.
package seed

import (
	"time"

	"petclinic/internal/domain/owners"
)

type Data struct {
	Types  []owners.PetType
	Owners []*owners.Owner
}

type petRow struct {
	id        int
	name      string
	birthDate string
	typeID    int
	ownerID   int
}

type visitRow struct {
	id          int
	petID       int
	date        string
	description string
}

var types = []owners.PetType{
	{ID: 1, Name: "cat"},
	{ID: 2, Name: "dog"},
	{ID: 3, Name: "lizard"},
	{ID: 4, Name: "snake"},
	{ID: 5, Name: "bird"},
	{ID: 6, Name: "hamster"},
}

var ownerRows = []owners.Owner{
	{ID: 1, FirstName: "George", LastName: "Franklin", Address: "110 W. Liberty St.", City: "Madison", Telephone: "6085551023"},
	{ID: 2, FirstName: "Betty", LastName: "Davis", Address: "638 Cardinal Ave.", City: "Sun Prairie", Telephone: "6085551749"},
	{ID: 3, FirstName: "Eduardo", LastName: "Rodriquez", Address: "2693 Commerce St.", City: "McFarland", Telephone: "6085558763"},
	{ID: 4, FirstName: "Harold", LastName: "Davis", Address: "563 Friendly St.", City: "Windsor", Telephone: "6085553198"},
	{ID: 5, FirstName: "Peter", LastName: "McTavish", Address: "2387 S. Fair Way", City: "Madison", Telephone: "6085552765"},
	{ID: 6, FirstName: "Jean", LastName: "Coleman", Address: "105 N. Lake St.", City: "Monona", Telephone: "6085552654"},
	{ID: 7, FirstName: "Jeff", LastName: "Black", Address: "1450 Oak Blvd.", City: "Monona", Telephone: "6085555387"},
	{ID: 8, FirstName: "Maria", LastName: "Escobito", Address: "345 Maple St.", City: "Madison", Telephone: "6085557683"},
	{ID: 9, FirstName: "David", LastName: "Schroeder", Address: "2749 Blackhawk Trail", City: "Madison", Telephone: "6085559435"},
	{ID: 10, FirstName: "Carlos", LastName: "Estaban", Address: "2335 Independence La.", City: "Waunakee", Telephone: "6085555487"},
}

var petRows = []petRow{
	{1, "Leo", "2010-09-07", 1, 1},
	{2, "Basil", "2012-08-06", 6, 2},
	{3, "Rosy", "2011-04-17", 2, 3},
	{4, "Jewel", "2010-03-07", 2, 3},
	{5, "Iggy", "2010-11-30", 3, 4},
	{6, "George", "2010-01-20", 4, 5},
	{7, "Samantha", "2012-09-04", 1, 6},
	{8, "Max", "2012-09-04", 1, 6},
	{9, "Lucky", "2011-08-06", 5, 7},
	{10, "Mulligan", "2007-02-24", 2, 8},
	{11, "Freddy", "2010-03-09", 5, 9},
	{12, "Lucky", "2010-06-24", 2, 10},
	{13, "Sly", "2012-06-08", 1, 10},
}

var visitRows = []visitRow{
	{1, 7, "2013-01-01", "rabies shot"},
	{2, 8, "2013-01-02", "rabies shot"},
	{3, 8, "2013-01-03", "neutered"},
	{4, 7, "2013-01-04", "spayed"},
}

// Load arma un grafo nuevo en cada llamada; el caller puede mutarlo.
func Load() Data {
	d := Data{Types: make([]owners.PetType, len(types))}
	copy(d.Types, types)

	byOwner := map[int]*owners.Owner{}
	for _, row := range ownerRows {
		o := row
		byOwner[o.ID] = &o
		d.Owners = append(d.Owners, &o)
	}

	byPet := map[int]*owners.Pet{}
	for _, row := range petRows {
		t := types[row.typeID-1]
		p := &owners.Pet{
			ID:        row.id,
			Name:      row.name,
			BirthDate: mustDate(row.birthDate),
			Type:      &t,
		}
		byPet[p.ID] = p
		// ids únicos: AddPet no puede rechazarlos
		_ = byOwner[row.ownerID].AddPet(p)
	}

	for _, row := range visitRows {
		_ = byPet[row.petID].AddVisit(&owners.Visit{
			ID:          row.id,
			Date:        mustDate(row.date),
			Description: row.description,
		})
	}

	return d
}

func mustDate(s string) *time.Time {
	t, err := time.Parse(owners.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return &t
}
