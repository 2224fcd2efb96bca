package owners

import (
	"context"
	"fmt"
	"strings"
	"time"

	"petclinic/internal/validation"
)

const (
	FlashOwnerCreated = "New Owner Created"
	FlashPetAdded     = "New Pet has been Added"
	FlashPetEdited    = "Pet details has been edited"
)

// PetFormProcessor es el contrato del handler de formularios de mascota:
// valida, agrega la mascota al owner y decide entre redirect o re-render.
type PetFormProcessor interface {
	ProcessPetCreation(ctx context.Context, ownerID int, form PetForm) (Outcome, error)
	ProcessPetUpdate(ctx context.Context, ownerID, petID int, form PetForm) (Outcome, error)
}

type Service struct {
	repo Repository
	now  func() time.Time

	pets   PetValidator
	owners OwnerValidator
}

var _ PetFormProcessor = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) ShowOwner(ctx context.Context, ownerID int) (*Owner, error) {
	o, err := s.repo.GetOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("show owner %d: %w", ownerID, err)
	}
	return o, nil
}

func (s *Service) PetTypes(ctx context.Context) ([]PetType, error) {
	return s.repo.ListPetTypes(ctx)
}

// FindOwners busca por prefijo de apellido (vacío = todos).
// Sin resultados vuelve al buscador, con uno solo redirige a su detalle.
func (s *Service) FindOwners(ctx context.Context, lastName string) (Outcome, error) {
	found, err := s.repo.FindOwners(ctx, strings.TrimSpace(lastName))
	if err != nil {
		return Outcome{}, fmt.Errorf("find owners: %w", err)
	}

	switch len(found) {
	case 0:
		errs := validation.New("owner")
		errs.Reject("lastName", validation.CodeNotFound)
		return Outcome{View: ViewFindOwners, Errors: errs}, nil
	case 1:
		return Outcome{Redirect: OwnerLocation(found[0].ID)}, nil
	default:
		return Outcome{View: ViewOwnersList, Owners: found}, nil
	}
}

func (s *Service) ProcessOwnerCreation(ctx context.Context, form OwnerForm) (Outcome, error) {
	o := &Owner{
		FirstName: strings.TrimSpace(form.FirstName),
		LastName:  strings.TrimSpace(form.LastName),
		Address:   strings.TrimSpace(form.Address),
		City:      strings.TrimSpace(form.City),
		Telephone: strings.TrimSpace(form.Telephone),
	}

	errs := validation.New("owner")
	if err := s.owners.Validate(o, errs); err != nil {
		return Outcome{}, err
	}
	if errs.HasErrors() {
		return Outcome{View: ViewOwnerForm, Errors: errs, Owner: o}, nil
	}

	if err := s.repo.CreateOwner(ctx, o); err != nil {
		return Outcome{}, fmt.Errorf("create owner: %w", err)
	}
	return Outcome{Redirect: OwnerLocation(o.ID), Flash: FlashOwnerCreated, Owner: o}, nil
}

// InitPetCreation prepara el formulario vacío de alta de mascota.
func (s *Service) InitPetCreation(ctx context.Context, ownerID int) (Outcome, error) {
	o, err := s.repo.GetOwner(ctx, ownerID)
	if err != nil {
		return Outcome{}, fmt.Errorf("init pet creation: %w", err)
	}
	types, err := s.repo.ListPetTypes(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("init pet creation: %w", err)
	}
	return Outcome{View: ViewPetForm, Owner: o, Pet: &Pet{}, Types: types}, nil
}

func (s *Service) ProcessPetCreation(ctx context.Context, ownerID int, form PetForm) (Outcome, error) {
	o, err := s.repo.GetOwner(ctx, ownerID)
	if err != nil {
		return Outcome{}, fmt.Errorf("process pet creation: %w", err)
	}

	errs := validation.New("pet")
	p, err := s.bindPet(ctx, form, errs)
	if err != nil {
		return Outcome{}, fmt.Errorf("process pet creation: %w", err)
	}

	if strings.TrimSpace(p.Name) != "" && p.IsNew() && o.PetByNameIgnoreNew(p.Name, true) != nil {
		errs.Reject("name", validation.CodeDuplicate)
	}
	s.rejectFutureBirthDate(p, errs)

	if err := s.pets.Validate(p, errs); err != nil {
		return Outcome{}, err
	}
	if errs.HasErrors() {
		return s.petForm(ctx, o, p, errs)
	}

	if err := o.AddPet(p); err != nil {
		return Outcome{}, err
	}
	if err := s.repo.SavePet(ctx, o.ID, p); err != nil {
		return Outcome{}, fmt.Errorf("save pet: %w", err)
	}
	return Outcome{Redirect: OwnerLocation(o.ID), Flash: FlashPetAdded, Owner: o, Pet: p}, nil
}

// InitPetUpdate prepara el formulario de edición con los datos actuales.
func (s *Service) InitPetUpdate(ctx context.Context, ownerID, petID int) (Outcome, error) {
	p, err := s.OwnedPet(ctx, ownerID, petID)
	if err != nil {
		return Outcome{}, fmt.Errorf("init pet update: %w", err)
	}
	types, err := s.repo.ListPetTypes(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("init pet update: %w", err)
	}
	return Outcome{View: ViewPetForm, Owner: p.Owner(), Pet: p, Types: types}, nil
}

func (s *Service) ProcessPetUpdate(ctx context.Context, ownerID, petID int, form PetForm) (Outcome, error) {
	current, err := s.OwnedPet(ctx, ownerID, petID)
	if err != nil {
		return Outcome{}, fmt.Errorf("process pet update: %w", err)
	}
	o := current.Owner()

	errs := validation.New("pet")
	candidate, err := s.bindPet(ctx, form, errs)
	if err != nil {
		return Outcome{}, fmt.Errorf("process pet update: %w", err)
	}
	candidate.ID = current.ID

	// El nombre no puede pertenecer a otra mascota del mismo owner.
	if name := strings.TrimSpace(candidate.Name); name != "" {
		if other := o.PetByName(name); other != nil && other.ID != candidate.ID {
			errs.Reject("name", validation.CodeDuplicate)
		}
	}
	s.rejectFutureBirthDate(candidate, errs)

	if err := s.pets.Validate(candidate, errs); err != nil {
		return Outcome{}, err
	}
	if errs.HasErrors() {
		return s.petForm(ctx, o, candidate, errs)
	}

	current.Name = candidate.Name
	current.BirthDate = candidate.BirthDate
	if candidate.Type != nil {
		current.Type = candidate.Type
	}
	if err := s.repo.SavePet(ctx, o.ID, current); err != nil {
		return Outcome{}, fmt.Errorf("save pet: %w", err)
	}
	return Outcome{Redirect: OwnerLocation(o.ID), Flash: FlashPetEdited, Owner: o, Pet: current}, nil
}

// OwnedPet carga la mascota petID y verifica que pertenezca a ownerID.
// El owner completo queda accesible vía Pet.Owner().
func (s *Service) OwnedPet(ctx context.Context, ownerID, petID int) (*Pet, error) {
	if _, err := s.repo.GetOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	p, err := s.repo.GetPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	if p.Owner() == nil || p.Owner().ID != ownerID {
		return nil, ErrPetNotFound
	}
	return p, nil
}

// bindPet arma una mascota nueva a partir del formulario. Los problemas de
// formato de fecha se reportan en errs; un type.id inexistente o no
// numérico es un error del request y se devuelve como ErrPetTypeNotFound.
func (s *Service) bindPet(ctx context.Context, form PetForm, errs *validation.Errors) (*Pet, error) {
	p := &Pet{Name: strings.TrimSpace(form.Name)}

	bd, ok := ParseDate(form.BirthDate)
	if !ok {
		errs.Reject("birthDate", validation.TypeMismatch("birthDate"))
	}
	p.BirthDate = bd

	if raw := strings.TrimSpace(form.TypeID); raw != "" {
		typeID, err := ParseID(raw)
		if err != nil {
			return nil, fmt.Errorf("type.id %q: %w", raw, ErrPetTypeNotFound)
		}
		pt, err := s.repo.GetPetType(ctx, typeID)
		if err != nil {
			return nil, fmt.Errorf("type.id %d: %w", typeID, err)
		}
		p.Type = &pt
	}
	return p, nil
}

func (s *Service) rejectFutureBirthDate(p *Pet, errs *validation.Errors) {
	if p.BirthDate == nil {
		return
	}
	if StartOfDay(*p.BirthDate).After(StartOfDay(s.now())) {
		errs.Reject("birthDate", validation.TypeMismatch("birthDate"))
	}
}

func (s *Service) petForm(ctx context.Context, o *Owner, p *Pet, errs *validation.Errors) (Outcome, error) {
	types, err := s.repo.ListPetTypes(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("list pet types: %w", err)
	}
	return Outcome{View: ViewPetForm, Errors: errs, Owner: o, Pet: p, Types: types}, nil
}
