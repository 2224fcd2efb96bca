package owners

import "errors"

var (
	// Errores de programación: nunca se tragan, el caller debe corregir la llamada.
	ErrNilPet    = errors.New("owners: nil pet")
	ErrNilVisit  = errors.New("owners: nil visit")
	ErrNilOwner  = errors.New("owners: nil owner")
	ErrNilErrors = errors.New("owners: nil validation errors")

	ErrInvalidInput    = errors.New("invalid input")
	ErrOwnerNotFound   = errors.New("owner not found")
	ErrPetNotFound     = errors.New("pet not found")
	ErrPetTypeNotFound = errors.New("pet type not found")
)
