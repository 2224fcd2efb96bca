package visits

import (
	"context"
	"fmt"
	"strings"
	"time"

	"petclinic/internal/domain/owners"
	"petclinic/internal/validation"
)

const (
	ViewVisitForm = "pets/createOrUpdateVisitForm"

	FlashVisitBooked = "Your visit has been booked"
)

// VisitForm son los parámetros crudos del formulario (date, description).
type VisitForm struct {
	Date        string
	Description string
}

// VisitFormProcessor es el contrato del handler de alta de visitas.
type VisitFormProcessor interface {
	ProcessNewVisit(ctx context.Context, ownerID, petID int, form VisitForm) (owners.Outcome, error)
}

// PetFinder resuelve la mascota de un owner; lo implementa owners.Service.
// Se usa para evitar que visits conozca cómo se cargan owners.
type PetFinder interface {
	OwnedPet(ctx context.Context, ownerID, petID int) (*owners.Pet, error)
}

// Repository es la parte del store que necesitan las visitas.
type Repository interface {
	AddVisit(ctx context.Context, petID int, v *owners.Visit) error
}

type Service struct {
	pets      PetFinder
	repo      Repository
	validator owners.VisitValidator
	now       func() time.Time
}

var _ VisitFormProcessor = (*Service)(nil)

func NewService(pets PetFinder, repo Repository) *Service {
	return &Service{
		pets: pets,
		repo: repo,
		now:  time.Now,
	}
}

// InitNewVisit prepara el formulario con la fecha de hoy precargada.
func (s *Service) InitNewVisit(ctx context.Context, ownerID, petID int) (owners.Outcome, error) {
	p, err := s.pets.OwnedPet(ctx, ownerID, petID)
	if err != nil {
		return owners.Outcome{}, fmt.Errorf("init new visit: %w", err)
	}
	today := owners.StartOfDay(s.now())
	return owners.Outcome{
		View:  ViewVisitForm,
		Owner: p.Owner(),
		Pet:   p,
		Visit: &owners.Visit{Date: &today},
	}, nil
}

func (s *Service) ProcessNewVisit(ctx context.Context, ownerID, petID int, form VisitForm) (owners.Outcome, error) {
	p, err := s.pets.OwnedPet(ctx, ownerID, petID)
	if err != nil {
		return owners.Outcome{}, fmt.Errorf("process new visit: %w", err)
	}

	errs := validation.New("visit")
	v := &owners.Visit{Description: strings.TrimSpace(form.Description)}

	date, ok := owners.ParseDate(form.Date)
	if !ok {
		errs.Reject("date", validation.TypeMismatch("date"))
	}
	v.Date = date

	if err := s.validator.Validate(v, errs); err != nil {
		return owners.Outcome{}, err
	}
	if errs.HasErrors() {
		return owners.Outcome{
			View:   ViewVisitForm,
			Errors: errs,
			Owner:  p.Owner(),
			Pet:    p,
			Visit:  v,
		}, nil
	}

	if err := p.AddVisit(v); err != nil {
		return owners.Outcome{}, err
	}
	if err := s.repo.AddVisit(ctx, p.ID, v); err != nil {
		return owners.Outcome{}, fmt.Errorf("add visit: %w", err)
	}

	return owners.Outcome{
		Redirect: owners.OwnerLocation(ownerID),
		Flash:    FlashVisitBooked,
		Owner:    p.Owner(),
		Pet:      p,
		Visit:    v,
	}, nil
}
