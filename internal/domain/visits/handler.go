package visits

import (
	"errors"
	"net/http"

	"petclinic/internal/domain/owners"
	"petclinic/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, rs *web.Responder) {
	r.Route("/owners/{ownerID}/pets/{petID}/visits", func(vr chi.Router) {
		vr.Get("/new", initNewVisitHandler(svc, rs))
		vr.Post("/new", processNewVisitHandler(svc, rs))
	})
}

func initNewVisitHandler(svc *Service, rs *web.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, petID, err := pathIDs(r)
		if err != nil {
			rs.Error(w, r, http.StatusBadRequest, err)
			return
		}

		out, err := svc.InitNewVisit(r.Context(), ownerID, petID)
		if err != nil {
			rs.Error(w, r, statusFor(err), err)
			return
		}
		owners.Respond(w, r, rs, out)
	}
}

// processNewVisitHandler godoc
// @Summary Registrar visita
// @Description Valida date (YYYY-MM-DD) y description. Con errores devuelve `pets/createOrUpdateVisitForm` con los códigos en `errors.visit`; si no, redirige a `/owners/{ownerID}` con flash. Owner o mascota inexistente es 500.
// @Tags visits
// @Accept x-www-form-urlencoded
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Param petID path int true "ID de la mascota"
// @Param date formData string true "Fecha de la visita YYYY-MM-DD"
// @Param description formData string true "Motivo de la visita"
// @Success 200 {object} web.View
// @Success 303 {string} string "redirect a /owners/{ownerID}"
// @Failure 400 {string} string "Bad Request"
// @Failure 500 {string} string "Internal Server Error"
// @Router /owners/{ownerID}/pets/{petID}/visits/new [post]
func processNewVisitHandler(svc *Service, rs *web.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, petID, err := pathIDs(r)
		if err != nil {
			rs.Error(w, r, http.StatusBadRequest, err)
			return
		}
		if err := r.ParseForm(); err != nil {
			rs.Error(w, r, http.StatusBadRequest, err)
			return
		}

		out, err := svc.ProcessNewVisit(r.Context(), ownerID, petID, VisitForm{
			Date:        r.FormValue("date"),
			Description: r.FormValue("description"),
		})
		if err != nil {
			rs.Error(w, r, statusFor(err), err)
			return
		}
		owners.Respond(w, r, rs, out)
	}
}

func pathIDs(r *http.Request) (int, int, error) {
	ownerID, err := owners.ParseID(chi.URLParam(r, "ownerID"))
	if err != nil {
		return 0, 0, err
	}
	petID, err := owners.ParseID(chi.URLParam(r, "petID"))
	if err != nil {
		return 0, 0, err
	}
	return ownerID, petID, nil
}

// statusFor: mismo mapeo que owners (input inválido 400, el resto 500).
func statusFor(err error) int {
	if errors.Is(err, owners.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
