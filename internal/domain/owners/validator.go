package owners

import (
	"strings"
	"unicode"

	"petclinic/internal/validation"
)

const maxTelephoneDigits = 10

// PetValidator aplica las reglas de presencia de campos antes de guardar
// una mascota.
type PetValidator struct{}

// Validate registra en errs un error "required" por cada regla que falle:
//   - name vacío o solo espacios
//   - type nil, solo para mascotas nuevas
//   - birthDate nil, nuevas o existentes
//
// Un pet nil devuelve ErrNilPet antes de mirar errs.
func (PetValidator) Validate(p *Pet, errs *validation.Errors) error {
	if p == nil {
		return ErrNilPet
	}
	if errs == nil {
		return ErrNilErrors
	}

	if strings.TrimSpace(p.Name) == "" {
		errs.Reject("name", validation.CodeRequired)
	}
	if p.IsNew() && p.Type == nil {
		errs.Reject("type", validation.CodeRequired)
	}
	if p.BirthDate == nil {
		errs.Reject("birthDate", validation.CodeRequired)
	}
	return nil
}

// VisitValidator exige fecha y descripción.
type VisitValidator struct{}

func (VisitValidator) Validate(v *Visit, errs *validation.Errors) error {
	if v == nil {
		return ErrNilVisit
	}
	if errs == nil {
		return ErrNilErrors
	}

	if v.Date == nil {
		errs.Reject("date", validation.CodeRequired)
	}
	if strings.TrimSpace(v.Description) == "" {
		errs.Reject("description", validation.CodeRequired)
	}
	return nil
}

// OwnerValidator exige todos los datos de contacto y un teléfono numérico
// de hasta 10 dígitos.
type OwnerValidator struct{}

func (OwnerValidator) Validate(o *Owner, errs *validation.Errors) error {
	if o == nil {
		return ErrNilOwner
	}
	if errs == nil {
		return ErrNilErrors
	}

	required := []struct {
		field string
		value string
	}{
		{"firstName", o.FirstName},
		{"lastName", o.LastName},
		{"address", o.Address},
		{"city", o.City},
		{"telephone", o.Telephone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs.Reject(r.field, validation.CodeRequired)
		}
	}

	if tel := strings.TrimSpace(o.Telephone); tel != "" && !isTelephone(tel) {
		errs.Reject("telephone", validation.CodePattern)
	}
	return nil
}

func isTelephone(s string) bool {
	if len(s) > maxTelephoneDigits {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
