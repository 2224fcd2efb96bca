package validation

// Códigos de error de campo que entienden las vistas.
const (
	CodeRequired  = "required"
	CodeDuplicate = "duplicate"
	CodePattern   = "pattern"
	CodeNotFound  = "notFound"
)

// TypeMismatch arma el código que se reporta cuando un valor del formulario
// no se pudo convertir al tipo del campo (p.ej. "typeMismatch.birthDate").
func TypeMismatch(field string) string {
	return "typeMismatch." + field
}

// Errors acumula códigos de error por campo para un objeto de formulario
// (p.ej. "pet"). El orden de los códigos dentro de un campo se conserva.
type Errors struct {
	object string
	fields map[string][]string
	order  []string
}

func New(object string) *Errors {
	return &Errors{
		object: object,
		fields: map[string][]string{},
	}
}

// Object devuelve el nombre del objeto al que pertenecen los errores.
func (e *Errors) Object() string {
	return e.object
}

// Reject registra code sobre field. Un mismo código no se repite en un campo.
func (e *Errors) Reject(field, code string) {
	codes, ok := e.fields[field]
	if !ok {
		e.order = append(e.order, field)
	}
	for _, c := range codes {
		if c == code {
			return
		}
	}
	e.fields[field] = append(codes, code)
}

func (e *Errors) HasErrors() bool {
	return len(e.fields) > 0
}

func (e *Errors) HasFieldErrors(field string) bool {
	return len(e.fields[field]) > 0
}

// FieldErrors devuelve una copia de los códigos registrados para field.
func (e *Errors) FieldErrors(field string) []string {
	codes := e.fields[field]
	if len(codes) == 0 {
		return nil
	}
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

func (e *Errors) HasFieldErrorCode(field, code string) bool {
	for _, c := range e.fields[field] {
		if c == code {
			return true
		}
	}
	return false
}

// Fields devuelve los campos con error en el orden en que se rechazaron.
func (e *Errors) Fields() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// ErrorCount cuenta todos los códigos de todos los campos.
func (e *Errors) ErrorCount() int {
	n := 0
	for _, codes := range e.fields {
		n += len(codes)
	}
	return n
}

// Map expone los errores como field -> codes, listo para serializar.
func (e *Errors) Map() map[string][]string {
	out := make(map[string][]string, len(e.fields))
	for k := range e.fields {
		out[k] = e.FieldErrors(k)
	}
	return out
}
