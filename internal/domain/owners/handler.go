package owners

import (
	"errors"
	"net/http"

	"petclinic/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, rs *web.Responder) {
	r.Route("/owners", func(or chi.Router) {
		or.Get("/", findOwnersHandler(svc, rs))
		or.Get("/new", initOwnerCreationHandler(rs))
		or.Post("/new", processOwnerCreationHandler(svc, rs))

		or.Get("/{ownerID}", showOwnerHandler(svc, rs))

		// Alta y edición de mascotas del owner
		or.Get("/{ownerID}/pets/new", initPetCreationHandler(svc, rs))
		or.Post("/{ownerID}/pets/new", processPetCreationHandler(svc, rs))
		or.Get("/{ownerID}/pets/{petID}/edit", initPetUpdateHandler(svc, rs))
		or.Post("/{ownerID}/pets/{petID}/edit", processPetUpdateHandler(svc, rs))
	})

	r.Get("/pettypes", listPetTypesHandler(svc, rs))
}

// findOwnersHandler godoc
// @Summary Buscar owners por apellido
// @Description Busca por prefijo de apellido. Sin resultados devuelve la vista `owners/findOwners` con error `notFound` en `lastName`; con un resultado redirige a su detalle; con varios devuelve `owners/ownersList`.
// @Tags owners
// @Produce json
// @Param lastName query string false "Prefijo del apellido (vacío = todos)"
// @Success 200 {object} web.View
// @Success 303 {string} string "redirect a /owners/{ownerID}"
// @Router /owners [get]
func findOwnersHandler(svc *Service, rs *web.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.FindOwners(r.Context(), r.URL.Query().Get("lastName"))
		if err != nil {
			rs.Error(w, r, statusFor(err), err)
			return
		}
		Respond(w, r, rs, out)
	}
}

func initOwnerCreationHandler(rs *web.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rs.View(w, r, web.View{Name: ViewOwnerForm, Model: Outcome{Owner: &Owner{}}.Model()})
	}
}

// processOwnerCreationHandler godoc
// @Summary Crear owner
// @Description Valida el formulario (todos los campos requeridos, teléfono de hasta 10 dígitos). Con errores devuelve `owners/createOrUpdateOwnerForm`; si no, redirige al detalle con flash.
// @Tags owners
// @Accept x-www-form-urlencoded
// @Produce json
// @Param firstName formData string true "Nombre"
// @Param lastName formData string true "Apellido"
// @Param address formData string true "Dirección"
// @Param city formData string true "Ciudad"
// @Param telephone formData string true "Teléfono (solo dígitos)"
// @Success 200 {object} web.View
// @Success 303 {string} string "redirect a /owners/{ownerID}"
// @Router /owners/new [post]
func processOwnerCreationHandler(svc *Service, rs *web.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			rs.Error(w, r, http.StatusBadRequest, err)
			return
		}

		out, err := svc.ProcessOwnerCreation(r.Context(), OwnerForm{
			FirstName: r.FormValue("firstName"),
			LastName:  r.FormValue("lastName"),
			Address:   r.FormValue("address"),
			City:      r.FormValue("city"),
			Telephone: r.FormValue("telephone"),
		})
		if err != nil {
			rs.Error(w, r, statusFor(err), err)
			return
		}
		Respond(w, r, rs, out)
	}
}

// showOwnerHandler godoc
// @Summary Detalle de owner
// @Description Devuelve la vista `owners/ownerDetails` con mascotas y visitas. Un id no numérico es 400; un owner inexistente es 500.
// @Tags owners
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Success 200 {object} web.View
// @Failure 400 {string} string "Bad Request"
// @Failure 500 {string} string "Internal Server Error"
// @Router /owners/{ownerID} [get]
func showOwnerHandler(svc *Service, rs *web.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ParseID(chi.URLParam(r, "ownerID"))
		if err != nil {
			rs.Error(w, r, http.StatusBadRequest, err)
			return
		}

		o, err := svc.ShowOwner(r.Context(), ownerID)
		if err != nil {
			rs.Error(w, r, statusFor(err), err)
			return
		}
		rs.View(w, r, web.View{Name: ViewOwnerDetails, Model: Outcome{Owner: o}.Model()})
	}
}

func initPetCreationHandler(svc *Service, rs *web.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ParseID(chi.URLParam(r, "ownerID"))
		if err != nil {
			rs.Error(w, r, http.StatusBadRequest, err)
			return
		}

		out, err := svc.InitPetCreation(r.Context(), ownerID)
		if err != nil {
			rs.Error(w, r, statusFor(err), err)
			return
		}
		Respond(w, r, rs, out)
	}
}

// processPetCreationHandler godoc
// @Summary Agregar mascota a un owner
// @Description Valida name, birthDate (YYYY-MM-DD, no futura) y type.id. Con errores devuelve `pets/createOrUpdatePetForm` con los códigos en `errors.pet`; si no, redirige a `/owners/{ownerID}` con flash. Owner o tipo inexistente es 500.
// @Tags pets
// @Accept x-www-form-urlencoded
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Param name formData string true "Nombre de la mascota"
// @Param birthDate formData string true "Fecha de nacimiento YYYY-MM-DD"
// @Param type.id formData int true "ID del tipo de mascota"
// @Success 200 {object} web.View
// @Success 303 {string} string "redirect a /owners/{ownerID}"
// @Failure 400 {string} string "Bad Request"
// @Failure 500 {string} string "Internal Server Error"
// @Router /owners/{ownerID}/pets/new [post]
func processPetCreationHandler(svc *Service, rs *web.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ParseID(chi.URLParam(r, "ownerID"))
		if err != nil {
			rs.Error(w, r, http.StatusBadRequest, err)
			return
		}
		if err := r.ParseForm(); err != nil {
			rs.Error(w, r, http.StatusBadRequest, err)
			return
		}

		out, err := svc.ProcessPetCreation(r.Context(), ownerID, petForm(r))
		if err != nil {
			rs.Error(w, r, statusFor(err), err)
			return
		}
		Respond(w, r, rs, out)
	}
}

func initPetUpdateHandler(svc *Service, rs *web.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, petID, err := ownerAndPetIDs(r)
		if err != nil {
			rs.Error(w, r, http.StatusBadRequest, err)
			return
		}

		out, err := svc.InitPetUpdate(r.Context(), ownerID, petID)
		if err != nil {
			rs.Error(w, r, statusFor(err), err)
			return
		}
		Respond(w, r, rs, out)
	}
}

// processPetUpdateHandler godoc
// @Summary Editar mascota
// @Description Mismas reglas que el alta; el nombre no puede repetir el de otra mascota del owner. Una mascota existente puede quedar sin tipo.
// @Tags pets
// @Accept x-www-form-urlencoded
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Param petID path int true "ID de la mascota"
// @Param name formData string true "Nombre de la mascota"
// @Param birthDate formData string true "Fecha de nacimiento YYYY-MM-DD"
// @Param type.id formData int false "ID del tipo de mascota"
// @Success 200 {object} web.View
// @Success 303 {string} string "redirect a /owners/{ownerID}"
// @Router /owners/{ownerID}/pets/{petID}/edit [post]
func processPetUpdateHandler(svc *Service, rs *web.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, petID, err := ownerAndPetIDs(r)
		if err != nil {
			rs.Error(w, r, http.StatusBadRequest, err)
			return
		}
		if err := r.ParseForm(); err != nil {
			rs.Error(w, r, http.StatusBadRequest, err)
			return
		}

		out, err := svc.ProcessPetUpdate(r.Context(), ownerID, petID, petForm(r))
		if err != nil {
			rs.Error(w, r, statusFor(err), err)
			return
		}
		Respond(w, r, rs, out)
	}
}

// listPetTypesHandler godoc
// @Summary Listar tipos de mascota
// @Tags pets
// @Produce json
// @Success 200 {array} PetTypeResponse
// @Router /pettypes [get]
func listPetTypesHandler(svc *Service, rs *web.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types, err := svc.PetTypes(r.Context())
		if err != nil {
			rs.Error(w, r, http.StatusInternalServerError, err)
			return
		}

		out := make([]PetTypeResponse, 0, len(types))
		for _, t := range types {
			out = append(out, ToPetTypeResponse(t))
		}
		rs.JSON(w, http.StatusOK, out)
	}
}

func petForm(r *http.Request) PetForm {
	return PetForm{
		Name:      r.FormValue("name"),
		BirthDate: r.FormValue("birthDate"),
		TypeID:    r.FormValue("type.id"),
	}
}

func ownerAndPetIDs(r *http.Request) (int, int, error) {
	ownerID, err := ParseID(chi.URLParam(r, "ownerID"))
	if err != nil {
		return 0, 0, err
	}
	petID, err := ParseID(chi.URLParam(r, "petID"))
	if err != nil {
		return 0, 0, err
	}
	return ownerID, petID, nil
}

// Respond traduce un Outcome en redirect o vista.
func Respond(w http.ResponseWriter, r *http.Request, rs *web.Responder, out Outcome) {
	if out.IsRedirect() {
		rs.Redirect(w, r, out.Redirect, out.Flash)
		return
	}
	rs.View(w, r, web.View{Name: out.View, Model: out.Model()})
}

// statusFor: los errores de input son 400; owner/pet/tipo inexistente y
// cualquier falla de storage se reportan como 500.
func statusFor(err error) int {
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
