package owners

import "petclinic/internal/validation"

type OwnerResponse struct {
	ID        int           `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Address   string        `json:"address"`
	City      string        `json:"city"`
	Telephone string        `json:"telephone"`
	Pets      []PetResponse `json:"pets"`
}

type PetTypeResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type PetResponse struct {
	ID        int              `json:"id,omitempty"`
	Name      string           `json:"name"`
	BirthDate string           `json:"birth_date,omitempty"` // YYYY-MM-DD
	Type      *PetTypeResponse `json:"type,omitempty"`
	Visits    []VisitResponse  `json:"visits,omitempty"`
}

type VisitResponse struct {
	ID          int    `json:"id,omitempty"`
	Date        string `json:"date,omitempty"` // YYYY-MM-DD
	Description string `json:"description"`
}

func ToOwnerResponse(o *Owner) OwnerResponse {
	pets := o.Pets()
	out := OwnerResponse{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
		Pets:      make([]PetResponse, 0, len(pets)),
	}
	for _, p := range pets {
		out.Pets = append(out.Pets, ToPetResponse(p))
	}
	return out
}

func ToPetResponse(p *Pet) PetResponse {
	out := PetResponse{ID: p.ID, Name: p.Name}
	if p.BirthDate != nil {
		out.BirthDate = p.BirthDate.Format(DateLayout)
	}
	if p.Type != nil {
		t := ToPetTypeResponse(*p.Type)
		out.Type = &t
	}
	for _, v := range p.Visits() {
		out.Visits = append(out.Visits, ToVisitResponse(v))
	}
	return out
}

func ToPetTypeResponse(t PetType) PetTypeResponse {
	return PetTypeResponse{ID: t.ID, Name: t.Name}
}

func ToVisitResponse(v *Visit) VisitResponse {
	out := VisitResponse{ID: v.ID, Description: v.Description}
	if v.Date != nil {
		out.Date = v.Date.Format(DateLayout)
	}
	return out
}

// ErrorsModel arma la entrada "errors" del modelo: objeto -> campo -> códigos.
func ErrorsModel(errs *validation.Errors) map[string]map[string][]string {
	if errs == nil || !errs.HasErrors() {
		return map[string]map[string][]string{}
	}
	return map[string]map[string][]string{errs.Object(): errs.Map()}
}

// Model convierte un Outcome de vista en el modelo que recibe el Renderer.
func (o Outcome) Model() map[string]any {
	m := map[string]any{
		"errors": ErrorsModel(o.Errors),
	}
	if o.Owner != nil {
		m["owner"] = ToOwnerResponse(o.Owner)
	}
	if o.Owners != nil {
		list := make([]OwnerResponse, 0, len(o.Owners))
		for _, ow := range o.Owners {
			list = append(list, ToOwnerResponse(ow))
		}
		m["owners"] = list
	}
	if o.Pet != nil {
		m["pet"] = ToPetResponse(o.Pet)
	}
	if o.Visit != nil {
		m["visit"] = ToVisitResponse(o.Visit)
	}
	if o.Types != nil {
		types := make([]PetTypeResponse, 0, len(o.Types))
		for _, t := range o.Types {
			types = append(types, ToPetTypeResponse(t))
		}
		m["types"] = types
	}
	return m
}
