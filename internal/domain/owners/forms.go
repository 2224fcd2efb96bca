package owners

import (
	"strconv"
	"strings"
	"time"

	"petclinic/internal/validation"
)

// DateLayout es el formato de fecha de todos los formularios.
const DateLayout = "2006-01-02"

// Vistas que resuelven los handlers de owners y pets.
const (
	ViewOwnerDetails = "owners/ownerDetails"
	ViewFindOwners   = "owners/findOwners"
	ViewOwnersList   = "owners/ownersList"
	ViewOwnerForm    = "owners/createOrUpdateOwnerForm"
	ViewPetForm      = "pets/createOrUpdatePetForm"
)

// Outcome es el resultado de procesar un formulario: o se vuelve a mostrar
// una vista (View, con Errors si hubo rechazos) o se redirige (Redirect,
// con un Flash opcional de confirmación).
type Outcome struct {
	View     string
	Redirect string
	Flash    string
	Errors   *validation.Errors

	Owner  *Owner
	Owners []*Owner
	Pet    *Pet
	Visit  *Visit
	Types  []PetType
}

func (o Outcome) IsRedirect() bool {
	return o.Redirect != ""
}

// PetForm son los parámetros crudos del formulario de mascota
// (name, birthDate, type.id).
type PetForm struct {
	Name      string
	BirthDate string
	TypeID    string
}

// OwnerForm son los parámetros crudos del formulario de owner.
type OwnerForm struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
}

// ParseDate convierte un valor de formulario en fecha.
// Vacío devuelve (nil, true); un formato inválido devuelve (nil, false).
func ParseDate(raw string) (*time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// ParseID convierte un id de path o formulario. Devuelve ErrInvalidInput si
// no es un entero.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidInput
	}
	return id, nil
}

// OwnerLocation es la URL de detalle de un owner, destino de los redirects.
func OwnerLocation(ownerID int) string {
	return "/owners/" + strconv.Itoa(ownerID)
}

// StartOfDay normaliza t a medianoche UTC del mismo día calendario.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
